package wallet

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app fiber.Router, service *Service) {

	app.Get("/wallet/balance/:uid", func(c *fiber.Ctx) error {
		wallet, bank, err := service.Balances(c.Params("uid"))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"wallet": wallet, "bank": bank})
	})

	app.Get("/wallet/top", func(c *fiber.Ctx) error {
		entries, err := service.Top(5)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(entries)
	})
}

func RegisterAdminRoutes(app fiber.Router, service *Service) {

	app.Post("/wallet/adjust", func(c *fiber.Ctx) error {
		type Req struct {
			UID     string `json:"uid"`
			Delta   int64  `json:"delta"`
			Account string `json:"account"`
		}
		var r Req
		if err := c.BodyParser(&r); err != nil {
			return c.SendStatus(400)
		}
		if r.Account == "" {
			r.Account = "wallet"
		}
		if err := service.Adjust(r.UID, r.Delta, r.Account); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"status": "adjusted"})
	})
}
