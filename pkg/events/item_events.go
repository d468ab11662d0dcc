package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// Domain constants
const (
	ItemDomain   = "item"
	ItemExchange = "freezer.item"
)

// Event names
const (
	ItemCreatedEvent = "item.created"
	ItemUpdatedEvent = "item.updated"
	ItemDeletedEvent = "item.deleted"
)

// Event versions
const (
	EventVersionV1 = "v1"
)

// ItemCreatedPayload represents the payload for item.created event
type ItemCreatedPayload struct {
	ID               string          `json:"id"`
	Description      string          `json:"description"`
	Category         string          `json:"category"`
	Location         string          `json:"location"`
	Quantity         decimal.Decimal `json:"quantity"`
	MealsPerQuantity decimal.Decimal `json:"mealsPerQuantity"`
	Year             int             `json:"year"`
	OwnerID          string          `json:"ownerId"`
	ImageURL         string          `json:"imageUrl"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// ItemUpdatedPayload represents the payload for item.updated event
type ItemUpdatedPayload struct {
	ID               string          `json:"id"`
	Description      string          `json:"description"`
	Category         string          `json:"category"`
	Location         string          `json:"location"`
	Quantity         decimal.Decimal `json:"quantity"`
	MealsPerQuantity decimal.Decimal `json:"mealsPerQuantity"`
	Year             int             `json:"year"`
	OwnerID          string          `json:"ownerId"`
	ImageURL         string          `json:"imageUrl"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

type ItemDeletedPayload struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	DeletedAt time.Time `json:"deletedAt"`
}
