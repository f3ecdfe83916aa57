package reward

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app fiber.Router, service *Service) {

	app.Post("/reward/claim", func(c *fiber.Ctx) error {
		type Req struct {
			UID string `json:"uid"`
		}
		var r Req
		if err := c.BodyParser(&r); err != nil {
			return c.SendStatus(400)
		}
		amount, err := service.Claim(r.UID)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"claimed": amount})
	})
}
