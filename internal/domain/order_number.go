package domain

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// NewOrderNumber returns a human-facing reference of the form YYMMDD-NNNN.
// Collisions are possible (1 in 10000 per day); it is not a primary key.
func NewOrderNumber(now time.Time) string {
	return formatOrderNumber(now, rand.IntN(10000))
}

func formatOrderNumber(now time.Time, n int) string {
	return fmt.Sprintf("%s-%04d", now.Format("060102"), n)
}
