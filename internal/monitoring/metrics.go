package monitoring

import "github.com/prometheus/client_golang/prometheus"

var (
	GamesStarted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blackjack_games_started_total",
			Help: "Total blackjack games started",
		},
		[]string{"mode"},
	)

	GamesSettled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blackjack_games_settled_total",
			Help: "Total blackjack games settled",
		},
		[]string{"mode", "result"},
	)

	PayoutTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "blackjack_payout_total",
			Help: "Total amount paid out to players",
		},
	)

	WalletUpdates = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "wallet_balance_updates_total",
			Help: "Total wallet balance updates",
		},
	)

	MarketTicks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "market_ticks_total",
			Help: "Total market price updates",
		},
	)

	EconomicCycles = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "economy_cycles_total",
			Help: "Total interest-and-tax cycles run",
		},
	)

	HeistAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "heist_attempts_total",
			Help: "Total heist attempts",
		},
		[]string{"result"},
	)
)

func Init() {
	prometheus.MustRegister(GamesStarted)
	prometheus.MustRegister(GamesSettled)
	prometheus.MustRegister(PayoutTotal)
	prometheus.MustRegister(WalletUpdates)
	prometheus.MustRegister(MarketTicks)
	prometheus.MustRegister(EconomicCycles)
	prometheus.MustRegister(HeistAttempts)
}
