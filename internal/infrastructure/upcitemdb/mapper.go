package upcitemdb

import (
	"strconv"

	"github.com/scanlens/backend/internal/domain"
)

// FormatItem converts a UPC Item DB record to the normalized shape. Pure and
// idempotent; absent fields default to empty values.
func FormatItem(item Item) *domain.NormalizedProduct {
	title := item.Title
	if title == "" {
		title = domain.DefaultTitle
	}

	brand := item.Brand
	if brand == "" {
		brand = "Unknown Brand"
	}

	upc := item.UPC
	if upc == "" {
		upc = item.EAN
	}

	currency := item.Currency
	if currency == "" {
		currency = "USD"
	}

	images := item.Images
	if images == nil {
		images = []string{}
	}

	offers := make([]domain.StoreOffer, 0, len(item.Offers))
	for _, o := range item.Offers {
		offer := domain.StoreOffer{
			Merchant:  o.Merchant,
			Title:     o.Title,
			Price:     o.Price,
			Currency:  o.Currency,
			Link:      o.Link,
			Condition: o.Condition,
		}
		if o.UpdatedT > 0 {
			offer.Updated = strconv.FormatInt(o.UpdatedT, 10)
		}
		offers = append(offers, offer)
	}

	return &domain.NormalizedProduct{
		Title:       title,
		Brand:       brand,
		Description: item.Description,
		Category:    item.Category,
		Model:       item.Model,
		UPC:         upc,
		EAN:         item.EAN,
		ASIN:        item.ASIN,
		Images:      images,
		Price: domain.PriceRange{
			Lowest:   item.LowestRecordedPrice,
			Highest:  item.HighestRecordedPrice,
			Currency: currency,
		},
		Details: domain.ProductDetails{
			Color:     item.Color,
			Size:      item.Size,
			Weight:    item.Weight,
			Dimension: item.Dimension,
			Model:     item.Model,
		},
		Offers: offers,
	}
}
