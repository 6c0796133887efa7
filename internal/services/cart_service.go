package services

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/google/uuid"

	"gnstore/internal/domain"
	"gnstore/internal/format"
	applog "gnstore/internal/log"
	"gnstore/internal/repos"
)

const cartSlotKey = "electronics_store_cart"

// CartService owns the ordered list of cart lines and mirrors it into its
// durable slot after every mutation. Mutators return the updated list,
// which callers must adopt as the only cart truth. Storage failures are
// logged and degrade to the in-memory list, never propagated.
type CartService struct {
	slots *repos.SlotRepo

	mu    sync.Mutex
	items []domain.CartItem
}

func NewCartService(slots *repos.SlotRepo) *CartService {
	s := &CartService{slots: slots}
	s.load()
	return s
}

func (s *CartService) load() {
	value, ok, err := s.slots.Get(cartSlotKey)
	if err != nil {
		applog.Error(nil, "cart.slot.read", err, nil)
		return
	}
	if !ok {
		return
	}
	var items []domain.CartItem
	if err := json.Unmarshal([]byte(value), &items); err != nil {
		applog.Error(nil, "cart.slot.decode", err, nil)
		return
	}
	s.items = items
}

// persist is called with the mutex held.
func (s *CartService) persist() {
	b, err := json.Marshal(s.items)
	if err != nil {
		applog.Error(nil, "cart.slot.encode", err, nil)
		return
	}
	if err := s.slots.Set(cartSlotKey, string(b)); err != nil {
		applog.Error(nil, "cart.slot.write", err, nil)
	}
}

// snapshot is called with the mutex held.
func (s *CartService) snapshot() []domain.CartItem {
	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Add increments the existing line for the product or appends a new one,
// copying the denormalized product fields at add time.
func (s *CartService) Add(p domain.Product, quantity int) []domain.CartItem {
	if quantity < 1 {
		quantity = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items[i].Quantity += quantity
			s.persist()
			return s.snapshot()
		}
	}
	s.items = append(s.items, domain.CartItem{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		ImageURL: p.ImageURL,
		Category: p.Category,
		Quantity: quantity,
	})
	s.persist()
	return s.snapshot()
}

func (s *CartService) Remove(productID int) []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLocked(productID)
}

func (s *CartService) removeLocked(productID int) []domain.CartItem {
	kept := s.items[:0]
	for _, it := range s.items {
		if it.ID != productID {
			kept = append(kept, it)
		}
	}
	s.items = kept
	s.persist()
	return s.snapshot()
}

// SetQuantity replaces the line's quantity. Zero or negative removes the
// line; an unknown product id is a no-op.
func (s *CartService) SetQuantity(productID, quantity int) []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		return s.removeLocked(productID)
	}
	for i := range s.items {
		if s.items[i].ID == productID {
			s.items[i].Quantity = quantity
			s.persist()
			break
		}
	}
	return s.snapshot()
}

func (s *CartService) Clear() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = []domain.CartItem{}
	s.persist()
	return s.snapshot()
}

func (s *CartService) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// ItemsCount is the sum of all line quantities.
func (s *CartService) ItemsCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

// Total sums price×quantity over the stored (denormalized) prices.
func (s *CartService) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, it := range s.items {
		total += it.Price * it.Quantity
	}
	return total
}

func (s *CartService) IsInCart(productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.ID == productID {
			return true
		}
	}
	return false
}

func (s *CartService) ProductQuantity(productID int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.ID == productID {
			return it.Quantity
		}
	}
	return 0
}

// OrderMessage renders the cart as the WhatsApp order text: numbered
// items with category, unit price, quantity and subtotal, then the grand
// total, item count, an order reference and a closing call-to-action.
func (s *CartService) OrderMessage() string {
	s.mu.Lock()
	items := s.snapshot()
	s.mu.Unlock()

	if len(items) == 0 {
		return "السلة فارغة"
	}

	var b strings.Builder
	b.WriteString("🛒 *طلب جديد من Gn store*\n\n")
	total := 0
	count := 0
	for i, it := range items {
		fmt.Fprintf(&b, "%d. *%s*\n", i+1, it.Name)
		fmt.Fprintf(&b, "   القسم: %s\n", it.Category)
		fmt.Fprintf(&b, "   السعر: %s\n", format.Price(it.Price))
		fmt.Fprintf(&b, "   الكمية: %d\n", it.Quantity)
		fmt.Fprintf(&b, "   المجموع: %s\n\n", format.Price(it.Price*it.Quantity))
		total += it.Price * it.Quantity
		count += it.Quantity
	}
	fmt.Fprintf(&b, "💰 *إجمالي الطلب: %s*\n", format.Price(total))
	fmt.Fprintf(&b, "📦 *عدد العناصر: %d*\n", count)
	fmt.Fprintf(&b, "🔖 *رقم الطلب: %s*\n\n", orderReference())
	b.WriteString("📞 يرجى التواصل معي لتأكيد الطلب وتحديد طريقة التسليم والدفع.")
	return b.String()
}

func orderReference() string {
	return strings.ToUpper(uuid.NewString()[:8])
}

// OrderLink builds the wa.me deep link carrying the order message.
func (s *CartService) OrderLink(phone string) string {
	digits := strings.TrimPrefix(phone, "+")
	u := url.URL{
		Scheme:   "https",
		Host:     "wa.me",
		Path:     "/" + digits,
		RawQuery: url.Values{"text": {s.OrderMessage()}}.Encode(),
	}
	return u.String()
}
