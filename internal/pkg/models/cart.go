package models

import (
	"time"
)

// CartItem is one line of a cart: a catalog item reference and a quantity
type CartItem struct {
	ItemRef  string `json:"item_ref" db:"item_ref"`
	Quantity int    `json:"quantity" db:"quantity"`
}

// Cart holds an ordered list of items. Guest carts are keyed by an
// anonymous session id and live in Redis; user carts are keyed by
// subject id and persist in PostgreSQL across logins.
type Cart struct {
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Merge folds another cart into this one: quantities are summed for
// matching item refs, disjoint items are appended in order.
func (c *Cart) Merge(other *Cart) {
	if other == nil {
		return
	}
	index := make(map[string]int, len(c.Items))
	for i, item := range c.Items {
		index[item.ItemRef] = i
	}
	for _, item := range other.Items {
		if i, ok := index[item.ItemRef]; ok {
			c.Items[i].Quantity += item.Quantity
			continue
		}
		c.Items = append(c.Items, item)
		index[item.ItemRef] = len(c.Items) - 1
	}
}

// AddItemRequest appends or bumps one guest-cart line
type AddItemRequest struct {
	ItemRef  string `json:"item_ref" validate:"required"`
	Quantity int    `json:"quantity" validate:"required"`
}

// MergeCartRequest triggers a guest-to-user cart merge
type MergeCartRequest struct {
	GuestSessionID string `json:"guest_session_id" validate:"required"`
}

// UserRegisteredEvent is published on first sighting of a subject id
type UserRegisteredEvent struct {
	SubjectID string    `json:"subject_id"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CartMergedEvent is published after a successful guest-cart merge
type CartMergedEvent struct {
	SubjectID      string    `json:"subject_id"`
	GuestSessionID string    `json:"guest_session_id"`
	ItemCount      int       `json:"item_count"`
	MergedAt       time.Time `json:"merged_at"`
}
