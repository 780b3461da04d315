package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem is one row of a user's cart. A (UserID, ProductID) pair appears at most once.
type CartItem struct {
	ID        int64
	UserID    uuid.UUID
	ProductID int64
	Quantity  int
	CreatedAt time.Time
}

// CartLine is a cart row joined with the product it references.
type CartLine struct {
	ItemID     int64
	ProductID  int64
	Title      string
	Price      decimal.Decimal
	CoverURL   string
	ContentURL string
	Quantity   int
}

// Subtotal adds the unit price of every line. Quantity is not multiplied in:
// adding a book is idempotent and every line holds exactly one copy.
func Subtotal(lines []CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Price)
	}

	return total.Round(2)
}

// CartProductIDs returns the distinct product ids of lines in cart order.
func CartProductIDs(lines []CartLine) []int64 {
	seen := make(map[int64]struct{}, len(lines))
	ids := make([]int64, 0, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.ProductID]; ok {
			continue
		}
		seen[line.ProductID] = struct{}{}
		ids = append(ids, line.ProductID)
	}

	return ids
}

// SplitOwned separates lines for books the user still has to buy from lines already covered by owned.
func SplitOwned(lines []CartLine, owned Entitlements) (payable []CartLine, stale []int64) {
	payable = make([]CartLine, 0, len(lines))
	for _, line := range lines {
		if owned.Has(line.ProductID) {
			stale = append(stale, line.ProductID)

			continue
		}
		payable = append(payable, line)
	}

	return payable, stale
}
