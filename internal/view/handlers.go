package view

import (
	"time"

	"github.com/nishchayy07/ThaparRideShare/internal/ride"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *ride.Service, authMiddleware fiber.Handler) {
	r.Get("/", authMiddleware, func(c *fiber.Ctx) error {
		rides, err := svc.List(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		email, _ := c.Locals("email").(string)
		filtered := ride.Select(rides, c.Query("filter", ride.FilterAll), email)
		return c.JSON(Render(filtered, email, time.Now()))
	})
}
