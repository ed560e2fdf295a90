package ride

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Get("/", authMiddleware, func(c *fiber.Ctx) error {
		rides, err := svc.List(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		email, _ := c.Locals("email").(string)
		return c.JSON(Select(rides, c.Query("filter", FilterAll), email))
	})

	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		var form Form
		if err := c.BodyParser(&form); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		if err := form.Validate(); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		email, _ := c.Locals("email").(string)
		userID, _ := c.Locals("user_id").(string)
		posted, err := svc.Create(c.Context(), form.Build(email, userID))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(posted)
	})

	r.Post("/:id/join", authMiddleware, func(c *fiber.Ctx) error {
		joined, err := svc.Join(c.Context(), c.Params("id"))
		switch {
		case errors.Is(err, ErrNotFound):
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		case errors.Is(err, ErrSeatsFull):
			return fiber.NewError(fiber.StatusConflict, err.Error())
		case err != nil:
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(joined)
	})

	r.Delete("/:id", authMiddleware, func(c *fiber.Ctx) error {
		email, _ := c.Locals("email").(string)
		err := svc.Delete(c.Context(), c.Params("id"), email)
		switch {
		case errors.Is(err, ErrNotFound):
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		case errors.Is(err, ErrNotOwner):
			return fiber.NewError(fiber.StatusForbidden, err.Error())
		case err != nil:
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}
