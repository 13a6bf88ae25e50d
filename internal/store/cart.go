package store

import "pocketmart/internal/domain"

// UpsertLine bumps the quantity of an existing cart line or appends a
// fresh one at qty 1, then persists the cart record. The product id is
// not checked against the catalog here; a line whose product has since
// been deleted is simply skipped by readers.
func (s *Store) UpsertLine(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ProductID == productID {
			s.cart[i].Qty++
			return s.saveCartLocked()
		}
	}
	s.cart = append(s.cart, domain.CartLine{ProductID: productID, Qty: 1})
	return s.saveCartLocked()
}

// RemoveLine drops the whole line for the product, whatever its
// quantity. Removing an absent line is a no-op.
func (s *Store) RemoveLine(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.cart[:0]
	removed := false
	for _, l := range s.cart {
		if l.ProductID == productID {
			removed = true
			continue
		}
		kept = append(kept, l)
	}
	if !removed {
		return nil
	}
	s.cart = kept
	return s.saveCartLocked()
}

// ClearCart empties the basket and reports how many lines it held. An
// already-empty cart stays untouched and nothing is re-persisted.
func (s *Store) ClearCart() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.cart)
	if n == 0 {
		return 0, nil
	}
	s.cart = nil
	return n, s.saveCartLocked()
}

func (s *Store) Cart() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.CartLine, len(s.cart))
	copy(out, s.cart)
	return out
}
