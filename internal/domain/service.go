package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is a bookable offering published by a provider. Price is in KES.
type Service struct {
	ID              int64           `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	CategoryID      int64           `json:"category"`
	ProviderID      int64           `json:"provider"`
	CategoryDetails *Category       `json:"category_details,omitempty"`
	ProviderDetails *User           `json:"provider_details,omitempty"`
	AverageRating   *float64        `json:"average_rating,omitempty"`
	ReviewCount     int             `json:"review_count"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
