package domain

type Product struct {
	ID        string  `json:"id"`
	SellerID  string  `json:"sellerId"` // references a User id; not enforced
	Title     string  `json:"title"`
	Desc      string  `json:"desc"`
	Price     float64 `json:"price"` // non-negative
	Category  string  `json:"category"`
	Image     string  `json:"image,omitempty"` // optional URL
	Stock     int     `json:"stock"`
	CreatedAt string  `json:"createdAt"` // RFC3339
}

// CartLine is one basket entry: a product reference plus a quantity.
// The product may have been deleted since the line was added; readers
// skip such dangling lines.
type CartLine struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}
