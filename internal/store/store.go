// Package store owns every piece of marketplace state. Four named
// records back the whole app: users, products, cart and session. Each
// is kept in memory as the working copy and written back to its record
// as one JSON document after every mutation, so a restart resumes
// exactly where the last request left off.
package store

import (
	"encoding/json"
	"sync"

	"pocketmart/internal/domain"
	applog "pocketmart/internal/log"

	"github.com/jmoiron/sqlx"
)

const (
	recUsers    = "users"
	recProducts = "products"
	recCart     = "cart"
	recSession  = "session"
)

// Store is the single owner of persisted state. All mutators take the
// lock, change the in-memory copy, then persist the touched record, so
// concurrent requests never interleave a read-modify-write.
type Store struct {
	db *sqlx.DB

	mu       sync.Mutex
	users    []domain.User
	products []domain.Product
	cart     []domain.CartLine
	session  *domain.Session
}

func New(db *sqlx.DB) *Store { return &Store{db: db} }

// Load hydrates the in-memory state from the records table. A record
// that fails to parse means someone edited the file by hand or a write
// was cut short; recovery is to wipe everything and reseed the demo
// catalog rather than limp along with half a state. The caller only
// sees an error for real I/O failures.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		users    []domain.User
		products []domain.Product
		cart     []domain.CartLine
		session  *domain.Session
	)

	raw, found, err := s.getRecord(recUsers)
	if err != nil {
		return err
	}
	if found {
		if err := json.Unmarshal(raw, &users); err != nil {
			return s.recoverLocked(recUsers, err)
		}
	}

	raw, found, err = s.getRecord(recProducts)
	if err != nil {
		return err
	}
	firstRun := !found
	if found {
		if err := json.Unmarshal(raw, &products); err != nil {
			return s.recoverLocked(recProducts, err)
		}
	}

	raw, found, err = s.getRecord(recCart)
	if err != nil {
		return err
	}
	if found {
		if err := json.Unmarshal(raw, &cart); err != nil {
			return s.recoverLocked(recCart, err)
		}
	}

	raw, found, err = s.getRecord(recSession)
	if err != nil {
		return err
	}
	if found {
		var sess domain.Session
		if err := json.Unmarshal(raw, &sess); err != nil {
			return s.recoverLocked(recSession, err)
		}
		session = &sess
	}

	s.users, s.products, s.cart, s.session = users, products, cart, session

	// A database that has never held a products record gets the demo
	// catalog so the shop is browsable out of the box.
	if firstRun {
		s.products = demoCatalog()
		applog.Info(nil, "store.seed", map[string]any{"products": len(s.products)})
		return s.saveProductsLocked()
	}
	return nil
}

// recoverLocked throws away all records and restarts from an empty
// state plus the seeded catalog. Corruption is logged and absorbed,
// never shown to the user.
func (s *Store) recoverLocked(record string, cause error) error {
	applog.Error(nil, "store.corrupt", cause, map[string]any{"record": record})

	if err := s.dropAllRecords(); err != nil {
		return err
	}
	s.users, s.cart, s.session = nil, nil, nil
	s.products = demoCatalog()
	applog.Info(nil, "store.seed", map[string]any{"products": len(s.products)})
	return s.saveProductsLocked()
}

func (s *Store) saveUsersLocked() error {
	b, err := json.Marshal(s.users)
	if err != nil {
		return err
	}
	return s.putRecord(recUsers, b)
}

func (s *Store) saveProductsLocked() error {
	b, err := json.Marshal(s.products)
	if err != nil {
		return err
	}
	return s.putRecord(recProducts, b)
}

func (s *Store) saveCartLocked() error {
	b, err := json.Marshal(s.cart)
	if err != nil {
		return err
	}
	return s.putRecord(recCart, b)
}
