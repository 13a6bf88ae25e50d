package store

import (
	"time"

	"pocketmart/internal/domain"
)

// SeedSellerID owns the demo catalog. No signup ever produces this id,
// so seeded items never show up on a real seller's dashboard.
const SeedSellerID = "seed-pocketmart"

func demoCatalog() []domain.Product {
	now := time.Now().UTC().Format(time.RFC3339)
	return []domain.Product{
		{
			ID:        "org-001",
			SellerID:  SeedSellerID,
			Title:     "Walnut Desk Organizer",
			Desc:      "Five-slot walnut caddy for pens, mail and the odd cable.",
			Price:     24.50,
			Category:  "Home",
			Image:     "https://picsum.photos/seed/org-001/400/300",
			Stock:     14,
			CreatedAt: now,
		},
		{
			ID:        "pour-001",
			SellerID:  SeedSellerID,
			Title:     "Ceramic Pour-Over Set",
			Desc:      "Matte ceramic dripper with a 600 ml carafe. Filters not included.",
			Price:     39.00,
			Category:  "Kitchen",
			Image:     "https://picsum.photos/seed/pour-001/400/300",
			Stock:     6,
			CreatedAt: now,
		},
		{
			ID:        "note-001",
			SellerID:  SeedSellerID,
			Title:     "Linen Notebook A5",
			Desc:      "Lay-flat A5 notebook, 192 dotted pages, linen cover.",
			Price:     12.25,
			Category:  "Stationery",
			Image:     "https://picsum.photos/seed/note-001/400/300",
			Stock:     30,
			CreatedAt: now,
		},
	}
}
