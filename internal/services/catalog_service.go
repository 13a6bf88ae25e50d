package services

import (
	"sort"
	"strings"
	"time"

	"pocketmart/internal/domain"
	"pocketmart/internal/store"

	"github.com/google/uuid"
)

type CatalogService struct {
	Store *store.Store
}

func NewCatalogService(st *store.Store) *CatalogService {
	return &CatalogService{Store: st}
}

// NewProduct carries the validated form input for a listing.
type NewProduct struct {
	SellerID string
	Title    string
	Desc     string
	Price    float64
	Category string
	Image    string
	Stock    int
}

func (s *CatalogService) AddProduct(in NewProduct) (domain.Product, error) {
	p := domain.Product{
		ID:        uuid.NewString(),
		SellerID:  in.SellerID,
		Title:     strings.TrimSpace(in.Title),
		Desc:      strings.TrimSpace(in.Desc),
		Price:     in.Price,
		Category:  strings.TrimSpace(in.Category),
		Image:     strings.TrimSpace(in.Image),
		Stock:     in.Stock,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.Store.AddProduct(p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// DeleteProduct reports whether the id was present. Deleting an id that
// is already gone is not an error; the outcome is the same.
func (s *CatalogService) DeleteProduct(id string) (bool, error) {
	return s.Store.RemoveProduct(id)
}

func (s *CatalogService) Product(id string) (domain.Product, bool) {
	return s.Store.ProductByID(id)
}

func (s *CatalogService) SellerProducts(sellerID string) []domain.Product {
	var out []domain.Product
	for _, p := range s.Store.Products() {
		if p.SellerID == sellerID {
			out = append(out, p)
		}
	}
	return out
}

// Categories lists the distinct categories present in the catalog,
// sorted so dropdowns stay stable between renders.
func (s *CatalogService) Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range s.Store.Products() {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out
}

// Filter narrows the catalog by a free-text term and a category. The
// term matches case-insensitively against title, description and
// category, the category selector must match exactly, and both
// filters stack.
func (s *CatalogService) Filter(q, category string) []domain.Product {
	q = strings.ToLower(strings.TrimSpace(q))
	var out []domain.Product
	for _, p := range s.Store.Products() {
		if category != "" && p.Category != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(p.Desc), q) &&
			!strings.Contains(strings.ToLower(p.Category), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}
