package ohlc

import (
	"time"
)

// OHLC represents a single aggregated bucket for a currency pair.
type OHLC struct {
	Bucket    time.Time
	Symbol    string
	Open      float64
	High      float64
	Low       float64
	Close     float64
	TickCount int64
}

// List is a list of OHLC buckets.
type List []*OHLC

// Message is the wire form of an OHLC bucket as broadcast to
// aggregate topic subscribers.
type Message struct {
	Time      string  `json:"time"`
	Symbol    string  `json:"symbol"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	TickCount int64   `json:"tick_count"`
}

// ToMessage converts the bucket to its wire form.
func (o *OHLC) ToMessage() Message {
	return Message{
		Time:      o.Bucket.UTC().Format(time.RFC3339),
		Symbol:    o.Symbol,
		Open:      o.Open,
		High:      o.High,
		Low:       o.Low,
		Close:     o.Close,
		TickCount: o.TickCount,
	}
}

// ToMessageList converts the bucket list to its wire form.
func (o List) ToMessageList() []Message {
	messages := make([]Message, len(o))
	for i, bucket := range o {
		messages[i] = bucket.ToMessage()
	}
	return messages
}
