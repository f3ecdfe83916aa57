package market

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app fiber.Router, service *Service) {

	app.Get("/market", func(c *fiber.Ctx) error {
		quotes, err := service.Quotes()
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(quotes)
	})

	app.Get("/market/history/:symbol", func(c *fiber.Ctx) error {
		prices, err := service.History(c.Params("symbol"), 50)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(prices)
	})

	app.Get("/market/portfolio/:uid", func(c *fiber.Ctx) error {
		holdings, err := service.Portfolio(c.Params("uid"))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(holdings)
	})

	app.Post("/market/buy", func(c *fiber.Ctx) error {
		type Req struct {
			UID    string `json:"uid"`
			Symbol string `json:"symbol"`
			Shares int64  `json:"shares"`
		}
		var r Req
		if err := c.BodyParser(&r); err != nil {
			return c.SendStatus(400)
		}
		if err := service.Buy(r.UID, r.Symbol, r.Shares); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"status": "bought"})
	})

	app.Post("/market/sell", func(c *fiber.Ctx) error {
		type Req struct {
			UID    string `json:"uid"`
			Symbol string `json:"symbol"`
			Shares int64  `json:"shares"`
		}
		var r Req
		if err := c.BodyParser(&r); err != nil {
			return c.SendStatus(400)
		}
		if err := service.Sell(r.UID, r.Symbol, r.Shares); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"status": "sold"})
	})
}
