// Package cart implements the in-memory cart for a single browsing session.
package cart

import "sync"

// Item is a snapshot of a product at the moment it was added. It is not a
// live reference, so later product changes do not touch carts.
type Item struct {
	ProductID  string  `json:"productId"`
	Name       string  `json:"name"`
	PriceCents int64   `json:"priceCents"`
	ImageURL   *string `json:"imageUrl"`
}

// Store holds cart line items for one session. Duplicate entries for the
// same product are permitted. Nothing is persisted; a restart loses all
// carts.
type Store struct {
	mu    sync.Mutex
	items []Item
}

// New creates an empty cart store.
func New() *Store {
	return &Store{}
}

// Add appends a line item unconditionally.
func (s *Store) Add(item Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
}

// Remove drops every line item whose product id matches, duplicates included.
func (s *Store) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	for _, item := range s.items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	s.items = kept
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Items returns a copy of the current line items.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Count returns the number of line items.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// TotalCents returns the sum of line item prices.
func (s *Store) TotalCents() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, item := range s.items {
		total += item.PriceCents
	}
	return total
}
