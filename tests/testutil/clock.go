package testutil

import (
	"time"

	"github.com/light-bringer/pharmacy-pos/internal/pkg/clock"
)

// CheckoutTime is the instant fixed clocks start at unless told otherwise.
var CheckoutTime = time.Date(2024, time.March, 1, 10, 0, 0, 0, time.Local)

// NewFixedClock creates a mock clock fixed at the given time.
func NewFixedClock(t time.Time) *clock.MockClock {
	return clock.NewMockClock(t)
}

// NewMockClock creates a mock clock starting at CheckoutTime.
func NewMockClock() *clock.MockClock {
	return clock.NewMockClock(CheckoutTime)
}
