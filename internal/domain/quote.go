package domain

// Quote represents the latest tradable price snapshot for a symbol.
type Quote struct {
	Symbol        string  // Trading symbol
	Last          float64 // Last traded price (0 when the market is closed)
	Bid           float64 // Best bid price
	Ask           float64 // Best ask price
	Volume        float64 // Traded volume over the reporting window
	Change        float64 // Absolute price change over the reporting window
	ChangePercent float64 // Relative price change over the reporting window
	High          float64 // Highest price over the reporting window
	Low           float64 // Lowest price over the reporting window
	Open          float64 // Opening price of the reporting window
	PrevClose     float64 // Previous session's closing price
}

// LastPrice returns the last traded price, falling back to the previous
// close when no last price is available (market closed).
func (q *Quote) LastPrice() float64 {
	if q.Last != 0 {
		return q.Last
	}
	return q.PrevClose
}
