package app

import (
	"context"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"bj-platform/internal/audit"
	"bj-platform/internal/bank"
	"bj-platform/internal/blackjack"
	"bj-platform/internal/cache"
	"bj-platform/internal/config"
	"bj-platform/internal/db"
	"bj-platform/internal/event"
	"bj-platform/internal/heist"
	"bj-platform/internal/jobs"
	"bj-platform/internal/ledger"
	"bj-platform/internal/logger"
	"bj-platform/internal/market"
	"bj-platform/internal/monitoring"
	"bj-platform/internal/reward"
	"bj-platform/internal/security"
	"bj-platform/internal/transfer"
	"bj-platform/internal/wallet"
	"bj-platform/internal/ws"
)

type Server struct {
	app  *fiber.App
	jobs *jobs.Manager
}

func NewServer() *Server {
	logger.Init()
	monitoring.Init()

	cfg := config.Load()
	cache.Init(cfg.RedisAddr)

	database, err := db.Init(cfg.DBPath)
	if err != nil {
		log.Fatalf("db init: %v", err)
	}

	bus := event.NewBus()
	hub := ws.NewHub()

	ledgerService := ledger.New(database)
	auditService := audit.New(database)
	walletService := wallet.New(database, cfg.StartingBalance)
	bankService := bank.New(database)
	transferService := transfer.New(database, walletService, ledgerService, bus)
	rewardService := reward.New(database, walletService, bus, cfg.RewardAmount, cfg.RewardCooldown)
	heistService := heist.New(database, walletService, ledgerService, bus, cfg.VaultAccount, cfg.HeistCooldown)

	marketService, err := market.New(database, walletService, bus)
	if err != nil {
		log.Fatalf("market init: %v", err)
	}

	gameManager := blackjack.NewManager(cfg.GameTimeout)
	gameService := blackjack.NewService(walletService, ledgerService, gameManager, bus, cfg.VaultAccount)
	leaderboard := blackjack.NewLeaderboard()
	blackjack.RegisterConsumers(bus, auditService, leaderboard, hub)

	bus.Subscribe(event.EventMarketTick, func(payload interface{}) {
		hub.BroadcastJSON(payload)
	})

	jobManager := jobs.New()
	jobManager.Register(market.NewWalker(marketService, cfg.MarketInterval))
	jobManager.Register(blackjack.NewSweeper(gameService, cfg.SweepInterval))
	jobManager.Register(bank.NewEconomist(database, ledgerService, bus, cfg.VaultAccount,
		cfg.InterestRate, cfg.WealthTaxRate, cfg.EconomicInterval))

	app := fiber.New()

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", websocket.New(hub.Handler))

	api := app.Group("/api", security.APIKeyGuard())
	wallet.RegisterRoutes(api, walletService)
	bank.RegisterRoutes(api, bankService)
	transfer.RegisterRoutes(api, transferService)
	reward.RegisterRoutes(api, rewardService)
	heist.RegisterRoutes(api, heistService)
	market.RegisterRoutes(api, marketService)
	blackjack.RegisterRoutes(api, gameService, leaderboard)

	admin := app.Group("/admin", security.AdminGuard())
	wallet.RegisterAdminRoutes(admin, walletService)

	return &Server{app: app, jobs: jobManager}
}

func (s *Server) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.jobs.Start(ctx)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return s.app.Listen(":" + port)
}
