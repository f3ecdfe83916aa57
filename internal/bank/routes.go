package bank

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app fiber.Router, service *Service) {

	app.Post("/bank/deposit", func(c *fiber.Ctx) error {
		type Req struct {
			UID    string `json:"uid"`
			Amount int64  `json:"amount"`
		}
		var r Req
		if err := c.BodyParser(&r); err != nil {
			return c.SendStatus(400)
		}
		if err := service.Deposit(r.UID, r.Amount); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"status": "deposited"})
	})

	app.Post("/bank/withdraw", func(c *fiber.Ctx) error {
		type Req struct {
			UID    string `json:"uid"`
			Amount int64  `json:"amount"`
		}
		var r Req
		if err := c.BodyParser(&r); err != nil {
			return c.SendStatus(400)
		}
		if err := service.Withdraw(r.UID, r.Amount); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"status": "withdrawn"})
	})
}
