package heist

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app fiber.Router, service *Service) {

	app.Post("/heist", func(c *fiber.Ctx) error {
		type Req struct {
			UID    string `json:"uid"`
			Target string `json:"target"`
		}
		var r Req
		if err := c.BodyParser(&r); err != nil {
			return c.SendStatus(400)
		}
		res, err := service.Attempt(r.UID, r.Target)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(res)
	})
}
