package store

import "pocketmart/internal/domain"

func (s *Store) AddProduct(p domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append(s.products, p)
	return s.saveProductsLocked()
}

// RemoveProduct drops the product with the given id and reports whether
// anything was removed. A miss leaves the record untouched.
func (s *Store) RemoveProduct(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.products[:0]
	removed := false
	for _, p := range s.products {
		if p.ID == id {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	if !removed {
		return false, nil
	}
	s.products = kept
	return true, s.saveProductsLocked()
}

func (s *Store) ProductByID(id string) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func (s *Store) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}
