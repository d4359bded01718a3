package model

import "time"

// DefaultCategoryColor is the color the service assigns when a category is
// created without one.
const DefaultCategoryColor = "#3B82F6"

// Category groups transactions and budgets. Its type is fixed at creation:
// an expense category may only back expense transactions and budgets, and
// vice versa.
type Category struct {
	CreatedAt time.Time       `json:"created_at"`
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Color     string          `json:"color"`
	Type      TransactionType `json:"type"`
}

// CategoryRequest is the shape POSTed to create a category. An empty color
// lets the service pick its default.
type CategoryRequest struct {
	Name  string          `json:"name"`
	Color string          `json:"color,omitempty"`
	Type  TransactionType `json:"type"`
}

// FilterCategories returns the categories matching the given type, in input
// order. Forms use this so that an expense form only offers expense
// categories.
func FilterCategories(categories []Category, t TransactionType) []Category {
	var out []Category
	for _, c := range categories {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}
