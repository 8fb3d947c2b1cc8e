package storefront

import (
	"log"
	"sync"

	"github.com/shophub-store/shophub-api/models"
)

const cartStorageKey = "cart"

// CartLine is a snapshot of a product's sale-relevant fields plus the chosen
// quantity. Quantity is always >= 1; a line reduced to zero is removed.
type CartLine struct {
	ProductID uint    `json:"productId"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Typed cart actions. Every mutation flows through apply so the full set of
// possible state changes is enumerable and testable in isolation.
type cartAction interface {
	isCartAction()
}

type addItem struct {
	line CartLine
}

type removeItem struct {
	productID uint
}

type setQuantity struct {
	productID uint
	quantity  int
}

type clearCart struct{}

func (addItem) isCartAction()     {}
func (removeItem) isCartAction()  {}
func (setQuantity) isCartAction() {}
func (clearCart) isCartAction()   {}

// CartStore holds the session-local cart: an ordered set of lines, unique by
// product id, persisted to Storage after every change. It is scoped to the
// local session, not to a user account.
type CartStore struct {
	mu      sync.Mutex
	lines   []CartLine
	storage Storage
}

// NewCartStore restores the previously saved cart snapshot, if any.
func NewCartStore(storage Storage) *CartStore {
	store := &CartStore{storage: storage}
	if _, err := storage.Load(cartStorageKey, &store.lines); err != nil {
		log.Println("Could not restore cart snapshot:", err)
		store.lines = nil
	}
	return store
}

// apply is the single reducer. It mutates the line set and persists the full
// snapshot. Callers must hold the lock.
func (s *CartStore) apply(action cartAction) {
	switch a := action.(type) {
	case addItem:
		merged := false
		for i := range s.lines {
			if s.lines[i].ProductID == a.line.ProductID {
				s.lines[i].Quantity += a.line.Quantity
				merged = true
				break
			}
		}
		if !merged {
			s.lines = append(s.lines, a.line)
		}
	case removeItem:
		for i := range s.lines {
			if s.lines[i].ProductID == a.productID {
				s.lines = append(s.lines[:i], s.lines[i+1:]...)
				break
			}
		}
	case setQuantity:
		for i := range s.lines {
			if s.lines[i].ProductID == a.productID {
				s.lines[i].Quantity = a.quantity
				break
			}
		}
	case clearCart:
		s.lines = nil
	}

	if err := s.storage.Save(cartStorageKey, s.lines); err != nil {
		log.Println("Could not persist cart snapshot:", err)
	}
}

// AddItem puts qty units of the product in the cart, merging into an existing
// line for the same product. Stock is advisory only and is not checked here.
func (s *CartStore) AddItem(product models.Product, qty int) {
	if qty < 1 {
		qty = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(addItem{line: CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		Image:     product.Image,
		Price:     product.Price,
		Quantity:  qty,
	}})
}

// RemoveItem deletes the line for the product. No-op if absent.
func (s *CartStore) RemoveItem(productID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(removeItem{productID: productID})
}

// SetQuantity replaces the line's quantity. A quantity of zero or less
// removes the line.
func (s *CartStore) SetQuantity(productID uint, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if qty <= 0 {
		s.apply(removeItem{productID: productID})
		return
	}
	s.apply(setQuantity{productID: productID, quantity: qty})
}

// Clear empties the cart. Called once, after a successful order submission.
func (s *CartStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(clearCart{})
}

// Lines returns a copy of the cart lines in insertion order.
func (s *CartStore) Lines() []CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := make([]CartLine, len(s.lines))
	copy(lines, s.lines)
	return lines
}

// Subtotal is the sum of price x quantity over all lines.
func (s *CartStore) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var sum float64
	for _, line := range s.lines {
		sum += line.Price * float64(line.Quantity)
	}
	return sum
}

func (s *CartStore) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines) == 0
}
