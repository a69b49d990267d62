package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/repository"
)

// GetResults returns the most recently finished matches.
func GetResults(c *fiber.Ctx) error {
	repo := repository.NewResultRepository(c)

	results, err := repo.ListResults(c.Context(), c.QueryInt("limit"))
	if err != nil {
		return storageError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(results)
}

// GetStats returns counters over all finished matches.
func GetStats(c *fiber.Ctx) error {
	repo := repository.NewResultRepository(c)

	stats, err := repo.GetStats(c.Context())
	if err != nil {
		return storageError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}

func storageError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	if errors.Is(err, repository.ErrStorageDisabled) {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
