package market

type Trend string

const (
	TrendBull Trend = "bull"
	TrendBear Trend = "bear"
	TrendFlat Trend = "flat"
)

type Quote struct {
	Symbol    string  `json:"symbol"`
	Price     float64 `json:"price"`
	PrevPrice float64 `json:"prev_price"`
	Trend     Trend   `json:"trend"`
}

type Holding struct {
	Symbol string `json:"symbol"`
	Shares int64  `json:"shares"`
}
