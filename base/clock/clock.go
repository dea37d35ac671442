// Package clock supplies the time source every time-gated rule reads from,
// so tests can drive auctions through their windows deterministically.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

func New() Clock {
	return &systemClock{}
}

type systemClock struct{}

func (c *systemClock) Now() time.Time {
	return time.Now()
}
