package version

import (
	"os/exec"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/models"
)

var (
	version     models.VersionResponse
	versionOnce sync.Once
)

func loadVersion() models.VersionResponse {
	versionOnce.Do(func() {
		output, err := exec.Command("git", "rev-parse", "HEAD").Output()
		if err != nil {
			version.Commit = "unknown"
			return
		}
		version.Commit = strings.TrimSpace(string(output))
	})
	return version
}

func SetupRoutes(app *fiber.App) {
	versionGroup := app.Group("/version")
	versionGroup.Get("/", versionHandler)
}

func versionHandler(c *fiber.Ctx) error {
	return c.JSON(loadVersion())
}
