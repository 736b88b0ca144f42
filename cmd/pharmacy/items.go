package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/domain"
)

// errUsage marks malformed command-line input.
var errUsage = errors.New("usage")

const dateLayout = "2006-01-02"

// parseItems reads CODE=QTY pairs.
func parseItems(values []string) ([]domain.CartEntry, error) {
	entries := make([]domain.CartEntry, 0, len(values))
	for _, v := range values {
		code, qty, ok := strings.Cut(v, "=")
		code = strings.TrimSpace(code)
		if !ok || code == "" {
			return nil, fmt.Errorf("%w: invalid item %q, expected CODE=QTY", errUsage, v)
		}
		n, err := strconv.Atoi(strings.TrimSpace(qty))
		if err != nil {
			return nil, fmt.Errorf("%w: invalid quantity in %q", errUsage, v)
		}
		entries = append(entries, domain.CartEntry{Code: code, Quantity: n})
	}
	return entries, nil
}

// parseDay reads a YYYY-MM-DD date in local time. With endOfDay the last
// instant of that day is returned.
func parseDay(value string, endOfDay bool) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, value, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q, expected %s", errUsage, value, dateLayout)
	}
	if endOfDay {
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return &t, nil
}
