package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Stock is not tracked.
type Product struct {
	ID          int
	Slug        string
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	ImageURL    string
	IsActive    bool
	IsDeleted   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p Product) Orderable() bool {
	return p.IsActive && !p.IsDeleted
}
