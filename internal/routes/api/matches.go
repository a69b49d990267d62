package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lk16/reversi/internal/match"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/othello"
)

// CreateMatch starts a new match.
func CreateMatch(c *fiber.Ctx) error {
	m := getMatches(c).Create()
	return c.Status(fiber.StatusCreated).JSON(m.State())
}

// GetMatch returns the state of a match.
func GetMatch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badMatchID(c)
	}

	state, err := getMatches(c).Snapshot(id)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(state)
}

// PlayTurn plays a move for the color to move.
func PlayTurn(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badMatchID(c)
	}

	var payload models.PlayTurnPayload
	if err = c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid request body",
		})
	}

	pos, err := othello.ParsePosition(payload.Position)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: err.Error(),
			Kind:  models.KindInvalidPosition,
		})
	}

	state, err := getMatches(c).Play(c.Context(), id, pos)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(state)
}

// RestartMatch replaces the game of a match with a new one.
func RestartMatch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badMatchID(c)
	}

	state, err := getMatches(c).Restart(id)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(state)
}

// DeleteMatch removes a match.
func DeleteMatch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badMatchID(c)
	}

	registry := getMatches(c)
	if _, err = registry.Get(id); err != nil {
		return errorResponse(c, err)
	}

	registry.Delete(id)
	return c.SendStatus(fiber.StatusNoContent)
}

func badMatchID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
		Error: "Invalid match id",
	})
}

func errorResponse(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	switch {
	case errors.Is(err, match.ErrMatchNotFound):
		status = fiber.StatusNotFound
	case models.ErrorKind(err) != "":
		status = fiber.StatusConflict
	}

	return c.Status(status).JSON(models.NewErrorResponse(err))
}
