package entity

import "time"

// Category representa una categoría de productos. El nombre es único.
type Category struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
