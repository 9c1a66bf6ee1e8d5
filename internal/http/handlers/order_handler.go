package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "classplus/internal/log"
	"classplus/internal/services"
)

type OrderHandler struct {
	Orders *services.OrderService
}

func (h *OrderHandler) List(c *fiber.Ctx) error {
	orders, err := h.Orders.List()
	if err != nil {
		applog.Error(c, "orders.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch orders",
		})
	}
	return c.JSON(orders)
}

// Place stores the submitted body and acknowledges with a message only;
// the assigned id is logged but not returned to the caller.
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	id, err := h.Orders.Place(c.Body())
	if err != nil {
		if errors.Is(err, services.ErrBadOrderBody) {
			applog.Warn(c, "order.body.invalid", nil)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "order body must be a JSON object",
			})
		}
		applog.Error(c, "order.place.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to place order",
		})
	}
	applog.Audit(c, "order.place", map[string]any{"order_id": id})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "order received",
	})
}
