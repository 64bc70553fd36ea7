package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Client represents a buyer. Sales lines reference clients by name.
type Client struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Document    *string         `json:"document"`
	Email       *string         `json:"email"`
	Phone       *string         `json:"phone"`
	SalesCount  int             `json:"salesCount"`  // Computed: sales lines for this client
	TotalSales  decimal.Decimal `json:"totalSales"`  // Computed: sum of sale values
	ValeBalance decimal.Decimal `json:"valeBalance"` // Computed: credits - debits
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ClientInput is used for creating/updating clients.
type ClientInput struct {
	Name     string  `json:"name"`
	Document *string `json:"document"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
}

func (c *ClientInput) Validate() string {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return "name is required"
	}
	return ""
}
