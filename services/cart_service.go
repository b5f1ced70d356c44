package services

import (
	"sync"

	"github.com/itsmelouis/kiosko/entity"
	"github.com/itsmelouis/kiosko/pkg/feedback"
)

// CartService owns one in-memory cart per kiosk session. Carts never touch
// the database; only the order produced at checkout is persisted. The mutex
// guards the registry and the aggregate boundary — gin serves sessions
// concurrently, but within one session operations arrive sequentially.
type CartService struct {
	mu       sync.Mutex
	carts    map[string]*entity.Cart
	Feedback feedback.Emitter
}

func NewCartService(fb feedback.Emitter) *CartService {
	if fb == nil {
		fb = feedback.NopEmitter{}
	}
	return &CartService{carts: make(map[string]*entity.Cart), Feedback: fb}
}

// cart returns the session's aggregate, creating it on first use.
// Callers must hold the lock.
func (s *CartService) cart(sessionID string) *entity.Cart {
	c, ok := s.carts[sessionID]
	if !ok {
		c = entity.NewCart()
		s.carts[sessionID] = c
	}
	return c
}

func (s *CartService) AddItem(sessionID string, p entity.ProductSnapshot, quantity int, opts []entity.SelectedOption) entity.CartItem {
	s.mu.Lock()
	item := s.cart(sessionID).AddItem(p, quantity, opts)
	s.mu.Unlock()

	s.Feedback.Success()
	return item
}

func (s *CartService) RemoveItem(sessionID, itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(sessionID).RemoveItem(itemID)
}

func (s *CartService) UpdateQuantity(sessionID, itemID string, quantity int) {
	s.mu.Lock()
	s.cart(sessionID).UpdateQuantity(itemID, quantity)
	s.mu.Unlock()

	if quantity > 0 {
		s.Feedback.Selection()
	}
}

func (s *CartService) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(sessionID).Clear()
}

func (s *CartService) SetUser(sessionID string, u *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(sessionID).SetUser(u)
}

func (s *CartService) SetDineMode(sessionID string, mode entity.DineMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(sessionID).SetDineMode(mode)
}

func (s *CartService) SetCartOpen(sessionID string, open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(sessionID).SetCartOpen(open)
}

func (s *CartService) ItemCount(sessionID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(sessionID).ItemCount()
}

func (s *CartService) Total(sessionID string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(sessionID).Total()
}

// Snapshot returns a copy of the session's cart safe to read outside the
// lock. Line slices are copied; option snapshots are immutable after add.
func (s *CartService) Snapshot(sessionID string) entity.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sessionID)
	out := *c
	out.Items = append([]entity.CartItem(nil), c.Items...)
	return out
}

// ResetSession drops the whole aggregate — used between customers at the
// kiosk, unlike Clear which keeps user and dine mode.
func (s *CartService) ResetSession(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

// ToggleOption applies the selection semantics of option kinds: exclusive
// kinds (size, cooking) replace any previous pick of the same kind, multi
// kinds (extra, sauce, side) toggle membership. productOpts is the
// product's full option list, needed to resolve the kind of an already
// selected option.
func ToggleOption(productOpts []entity.ProductOption, selected []entity.SelectedOption, optionID uint) []entity.SelectedOption {
	var picked *entity.ProductOption
	kinds := make(map[uint]entity.OptionKind, len(productOpts))
	for i := range productOpts {
		kinds[productOpts[i].ID] = productOpts[i].Kind
		if productOpts[i].ID == optionID {
			picked = &productOpts[i]
		}
	}
	if picked == nil {
		return selected
	}

	out := make([]entity.SelectedOption, 0, len(selected)+1)
	already := false
	for _, sel := range selected {
		if sel.OptionID == optionID {
			already = true
			continue
		}
		if picked.Kind.Exclusive() && kinds[sel.OptionID] == picked.Kind {
			continue
		}
		out = append(out, sel)
	}
	if already && !picked.Kind.Exclusive() {
		// multi-choice toggle off
		return out
	}
	return append(out, entity.SelectedOption{
		OptionID:   picked.ID,
		Label:      picked.Label,
		PriceDelta: picked.PriceDelta,
	})
}

// DefaultSelections pre-selects the options flagged as defaults.
func DefaultSelections(productOpts []entity.ProductOption) []entity.SelectedOption {
	var out []entity.SelectedOption
	for _, opt := range productOpts {
		if opt.IsDefault {
			out = append(out, entity.SelectedOption{
				OptionID:   opt.ID,
				Label:      opt.Label,
				PriceDelta: opt.PriceDelta,
			})
		}
	}
	return out
}
