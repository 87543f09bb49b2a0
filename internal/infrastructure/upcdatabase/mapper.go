package upcdatabase

import "github.com/scanlens/backend/internal/domain"

// FormatProduct converts a UPCDatabase.org record to the normalized shape.
// This provider carries no price or offer data, so both come back empty with
// nil price bounds.
func FormatProduct(r Response) *domain.NormalizedProduct {
	title := r.Title
	if title == "" {
		title = r.Description
	}
	if title == "" {
		title = domain.DefaultTitle
	}

	upc := r.UPC
	if upc == "" {
		upc = r.EAN
	}

	images := r.Images
	if images == nil {
		images = []string{}
	}

	return &domain.NormalizedProduct{
		Title:         title,
		Brand:         r.Brand,
		Description:   r.Description,
		Category:      r.Category,
		UPC:           upc,
		EAN:           r.EAN,
		Images:        images,
		IssuerCountry: r.IssuerCountry,
		Price: domain.PriceRange{
			Currency: "USD",
		},
		Details: domain.ProductDetails{
			Color:  r.Color,
			Size:   r.Size,
			Weight: r.Weight,
			MPN:    r.MPN,
		},
		Offers: []domain.StoreOffer{},
	}
}
