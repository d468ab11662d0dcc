package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is a single freezer-inventory entry. OwnerID is assigned from the
// authenticated caller at creation and is never reassigned afterwards.
type Item struct {
	ID               string          `json:"id"`
	Description      string          `json:"description"`
	Category         string          `json:"category"`
	Location         string          `json:"location"`
	Quantity         decimal.Decimal `json:"quantity"`
	MealsPerQuantity decimal.Decimal `json:"mealsPerQuantity"`
	Year             int             `json:"year"`
	Notes            string          `json:"notes,omitempty"`
	OwnerID          string          `json:"ownerId"`
	ImageURL         string          `json:"imageUrl"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// Meals returns how many meals the whole entry amounts to.
func (i Item) Meals() decimal.Decimal {
	return i.Quantity.Mul(i.MealsPerQuantity)
}
