package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "classplus/internal/log"
	"classplus/internal/services"
)

type LessonHandler struct {
	Catalog *services.CatalogService
}

func (h *LessonHandler) List(c *fiber.Ctx) error {
	lessons, err := h.Catalog.ListLessons()
	if err != nil {
		applog.Error(c, "lessons.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch lessons",
		})
	}
	return c.JSON(lessons)
}
