package services

import (
	"errors"

	"pocketmart/internal/domain"
	"pocketmart/internal/store"
)

var ErrEmptyCart = errors.New("cart is empty")

type CartService struct {
	Store *store.Store
}

func NewCartService(st *store.Store) *CartService {
	return &CartService{Store: st}
}

func (s *CartService) Add(productID string) error {
	return s.Store.UpsertLine(productID)
}

func (s *CartService) Remove(productID string) error {
	return s.Store.RemoveLine(productID)
}

type CartRow struct {
	Product  domain.Product
	Qty      int
	Subtotal float64
}

type CartView struct {
	Rows  []CartRow
	Total float64
}

// View resolves cart lines against the live catalog. A line whose
// product has been deleted since it was added is skipped, so it is
// neither shown nor billed.
func (s *CartService) View() CartView {
	var v CartView
	for _, l := range s.Store.Cart() {
		p, ok := s.Store.ProductByID(l.ProductID)
		if !ok {
			continue
		}
		row := CartRow{Product: p, Qty: l.Qty, Subtotal: p.Price * float64(l.Qty)}
		v.Rows = append(v.Rows, row)
		v.Total += row.Subtotal
	}
	return v
}

func (s *CartService) Total() float64 {
	return s.View().Total
}

// Checkout empties the cart and reports how many lines it settled.
// There is no payment step. An empty cart is the only failure, so the
// page can say so instead of confirming an order of nothing.
func (s *CartService) Checkout() (int, error) {
	n, err := s.Store.ClearCart()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, ErrEmptyCart
	}
	return n, nil
}
