package blackjack

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, service *Service, lb *Leaderboard) {

	r.Get("/blackjack/leaderboard", func(c *fiber.Ctx) error {
		return c.JSON(lb.Top(10))
	})

	r.Post("/blackjack/pve", func(c *fiber.Ctx) error {
		type Req struct {
			PlayerID string `json:"player_id"`
			Bet      int64  `json:"bet"`
		}
		var body Req
		if err := c.BodyParser(&body); err != nil {
			return c.SendStatus(400)
		}

		g, err := service.StartPvE(body.PlayerID, body.Bet)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(render(g))
	})

	r.Post("/blackjack/pvp", func(c *fiber.Ctx) error {
		type Req struct {
			ChallengerID string `json:"challenger_id"`
			OpponentID   string `json:"opponent_id"`
			Bet          int64  `json:"bet"`
		}
		var body Req
		if err := c.BodyParser(&body); err != nil {
			return c.SendStatus(400)
		}

		g, err := service.StartPvP(body.ChallengerID, body.OpponentID, body.Bet)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(render(g))
	})

	r.Post("/blackjack/:key/hit", func(c *fiber.Ctx) error {
		return handleAction(c, service, service.Hit)
	})

	r.Post("/blackjack/:key/stand", func(c *fiber.Ctx) error {
		return handleAction(c, service, service.Stand)
	})

	r.Get("/blackjack/:key", func(c *fiber.Ctx) error {
		g, ok := service.Manager().Get(c.Params("key"))
		if !ok {
			return c.Status(404).JSON(fiber.Map{"error": ErrGameNotFound.Error()})
		}
		return c.JSON(render(g))
	})
}

func handleAction(c *fiber.Ctx, service *Service, action func(key, playerID string) (Game, error)) error {
	type Req struct {
		PlayerID string `json:"player_id"`
	}
	var body Req
	if err := c.BodyParser(&body); err != nil {
		return c.SendStatus(400)
	}
	key := c.Params("key")

	// Turn and participant checks happen here first so strangers never
	// reach the state machine; the game re-validates regardless.
	g, ok := service.Manager().Get(key)
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": ErrGameNotFound.Error()})
	}
	if !isParticipant(g, body.PlayerID) {
		return reject(c, g, ErrNotParticipant)
	}
	if snap := g.Snapshot(); !snap.Finished && snap.TurnOf != body.PlayerID {
		return reject(c, g, ErrNotYourTurn)
	}

	g, err := action(key, body.PlayerID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotParticipant), errors.Is(err, ErrNotYourTurn), errors.Is(err, ErrGameFinished):
			return reject(c, g, err)
		case errors.Is(err, ErrGameNotFound):
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(render(g))
}

// reject re-renders the current state to the offending caller; the game
// itself is untouched.
func reject(c *fiber.Ctx, g Game, err error) error {
	resp := render(g)
	resp["error"] = err.Error()
	return c.Status(409).JSON(resp)
}

func render(g Game) fiber.Map {
	snap := g.Snapshot()
	return fiber.Map{
		"state": snap,
		"text":  snap.Text(),
	}
}

func isParticipant(g Game, playerID string) bool {
	for _, id := range g.Participants() {
		if id == playerID {
			return true
		}
	}
	return false
}
