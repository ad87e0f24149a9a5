package tick

import (
	"time"
)

// Tick represents a single price observation for a currency pair.
type Tick struct {
	Time   time.Time
	Symbol string
	Price  float64
}

// Message is the wire form of a tick as broadcast to subscribers and
// published on the Redis feed.
type Message struct {
	Time   string  `json:"time"`
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
}

// ToMessage converts the tick to its wire form.
func (t *Tick) ToMessage() Message {
	return Message{
		Time:   t.Time.UTC().Format(time.RFC3339),
		Symbol: t.Symbol,
		Price:  t.Price,
	}
}

// Filter represents the filter criteria for tick data.
type Filter struct {
	Symbol string
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}
