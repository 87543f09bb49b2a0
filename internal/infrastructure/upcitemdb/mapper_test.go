package upcitemdb

import (
	"testing"

	"github.com/scanlens/backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatItem(t *testing.T) {
	lowest := 0.99

	t.Run("complete item", func(t *testing.T) {
		got := FormatItem(Item{
			Title:               "Coca-Cola 12oz",
			Brand:               "Coca-Cola",
			UPC:                 "049000050103",
			EAN:                 "0049000050103",
			LowestRecordedPrice: &lowest,
			Offers: []Offer{
				{Merchant: "Walmart", Price: 1.25, Link: "https://walmart.example", UpdatedT: 1700000000},
			},
		})

		assert.Equal(t, "Coca-Cola 12oz", got.Title)
		assert.Equal(t, "049000050103", got.UPC)
		assert.Equal(t, &lowest, got.Price.Lowest)
		assert.Len(t, got.Offers, 1)
		assert.Equal(t, "Walmart", got.Offers[0].Merchant)
		assert.Equal(t, "1700000000", got.Offers[0].Updated)
	})

	t.Run("defaults for empty item", func(t *testing.T) {
		got := FormatItem(Item{})

		assert.Equal(t, domain.DefaultTitle, got.Title)
		assert.Equal(t, "Unknown Brand", got.Brand)
		assert.Equal(t, "USD", got.Price.Currency)
		assert.NotNil(t, got.Images)
		assert.NotNil(t, got.Offers)
	})

	t.Run("upc falls back to ean", func(t *testing.T) {
		got := FormatItem(Item{Title: "Widget", EAN: "4006381333931"})

		assert.Equal(t, "4006381333931", got.UPC)
		assert.Equal(t, "4006381333931", got.EAN)
	})

	t.Run("idempotent", func(t *testing.T) {
		item := Item{Title: "Coca-Cola", Offers: []Offer{{Merchant: "Target", UpdatedT: 42}}}

		assert.Equal(t, FormatItem(item), FormatItem(item))
	})
}
