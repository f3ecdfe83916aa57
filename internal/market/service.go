package market

import (
	"database/sql"
	"errors"
	"math"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"bj-platform/internal/event"
	"bj-platform/internal/logger"
	"bj-platform/internal/monitoring"
)

var (
	ErrUnknownSymbol = errors.New("unknown symbol")
	ErrInvalidShares = errors.New("shares must be positive")
	ErrNotEnoughHeld = errors.New("not enough shares held")
)

type Wallet interface {
	Debit(tx *sql.Tx, uid string, amount int64) error
	Credit(tx *sql.Tx, uid string, amount int64) error
}

type Service struct {
	db     *sql.DB
	wallet Wallet
	bus    *event.Bus
	rng    *rand.Rand
}

func New(db *sql.DB, wallet Wallet, bus *event.Bus) (*Service, error) {
	s := &Service{
		db:     db,
		wallet: wallet,
		bus:    bus,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	if err := s.seed(); err != nil {
		return nil, err
	}
	return s, nil
}

// seed inserts the default symbols on first boot.
func (s *Service) seed() error {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM market_prices`).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	defaults := []Quote{
		{Symbol: "BANA", Price: 25.00, PrevPrice: 25.00, Trend: TrendFlat},
		{Symbol: "CAFE", Price: 80.00, PrevPrice: 80.00, Trend: TrendBull},
		{Symbol: "MINE", Price: 140.00, PrevPrice: 140.00, Trend: TrendFlat},
		{Symbol: "PETR", Price: 310.00, PrevPrice: 310.00, Trend: TrendBear},
		{Symbol: "TECH", Price: 555.00, PrevPrice: 555.00, Trend: TrendBull},
	}
	for _, q := range defaults {
		_, err := s.db.Exec(`
		INSERT INTO market_prices(symbol,price,prev_price,trend)
		VALUES (?,?,?,?)
		`, q.Symbol, q.Price, q.PrevPrice, string(q.Trend))
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) Quotes() ([]Quote, error) {
	rows, err := s.db.Query(`SELECT symbol, price, prev_price, trend FROM market_prices ORDER BY symbol`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quotes []Quote
	for rows.Next() {
		var q Quote
		var trend string
		if err := rows.Scan(&q.Symbol, &q.Price, &q.PrevPrice, &trend); err != nil {
			return nil, err
		}
		q.Trend = Trend(trend)
		quotes = append(quotes, q)
	}
	return quotes, rows.Err()
}

func (s *Service) quote(symbol string) (Quote, error) {
	var q Quote
	var trend string
	err := s.db.QueryRow(`
	SELECT symbol, price, prev_price, trend FROM market_prices WHERE symbol=?
	`, symbol).Scan(&q.Symbol, &q.Price, &q.PrevPrice, &trend)
	if err == sql.ErrNoRows {
		return q, ErrUnknownSymbol
	}
	if err != nil {
		return q, err
	}
	q.Trend = Trend(trend)
	return q, nil
}

// Tick advances every symbol one random-walk step and appends history.
func (s *Service) Tick() error {
	quotes, err := s.Quotes()
	if err != nil {
		return err
	}

	ts := time.Now().Unix()
	for i, q := range quotes {
		next := NextPrice(q, s.rng)
		quotes[i] = next

		_, err := s.db.Exec(`
		UPDATE market_prices SET price=?, prev_price=?, trend=? WHERE symbol=?
		`, next.Price, next.PrevPrice, string(next.Trend), next.Symbol)
		if err != nil {
			return err
		}

		_, err = s.db.Exec(`
		INSERT INTO market_history(symbol,price,ts) VALUES (?,?,?)
		`, next.Symbol, next.Price, ts)
		if err != nil {
			return err
		}
	}

	monitoring.MarketTicks.Inc()
	logger.Log.Debug("market tick", zap.Int("symbols", len(quotes)))
	s.bus.Publish(event.EventMarketTick, quotes)
	return nil
}

// Buy purchases shares at the current price, rounding the cost up.
func (s *Service) Buy(uid, symbol string, shares int64) error {
	if shares <= 0 {
		return ErrInvalidShares
	}

	q, err := s.quote(symbol)
	if err != nil {
		return err
	}
	cost := int64(math.Ceil(q.Price * float64(shares)))

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if err := s.wallet.Debit(tx, uid, cost); err != nil {
		tx.Rollback()
		return err
	}

	_, err = tx.Exec(`
	INSERT INTO holdings(uid,symbol,shares) VALUES (?,?,?)
	ON CONFLICT(uid,symbol) DO UPDATE SET shares = shares + ?
	`, uid, symbol, shares, shares)
	if err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

// Sell disposes of shares at the current price, rounding proceeds down.
func (s *Service) Sell(uid, symbol string, shares int64) error {
	if shares <= 0 {
		return ErrInvalidShares
	}

	q, err := s.quote(symbol)
	if err != nil {
		return err
	}
	proceeds := int64(math.Floor(q.Price * float64(shares)))

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	res, err := tx.Exec(`
	UPDATE holdings SET shares = shares - ?
	WHERE uid=? AND symbol=? AND shares >= ?
	`, shares, uid, symbol, shares)
	if err != nil {
		tx.Rollback()
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return err
	}
	if n == 0 {
		tx.Rollback()
		return ErrNotEnoughHeld
	}

	if err := s.wallet.Credit(tx, uid, proceeds); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

func (s *Service) Portfolio(uid string) ([]Holding, error) {
	rows, err := s.db.Query(`
	SELECT symbol, shares FROM holdings WHERE uid=? AND shares > 0 ORDER BY symbol
	`, uid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Holding
	for rows.Next() {
		var h Holding
		if err := rows.Scan(&h.Symbol, &h.Shares); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// History returns the most recent recorded prices, oldest first.
func (s *Service) History(symbol string, limit int) ([]float64, error) {
	rows, err := s.db.Query(`
	SELECT price FROM market_history WHERE symbol=? ORDER BY id DESC LIMIT ?
	`, symbol, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var prices []float64
	for rows.Next() {
		var p float64
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		prices = append(prices, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i, j := 0, len(prices)-1; i < j; i, j = i+1, j-1 {
		prices[i], prices[j] = prices[j], prices[i]
	}
	return prices, nil
}
