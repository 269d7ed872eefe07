package domain

import "time"

// Customer owns zero or more accounts.
type Customer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"` // Unique
	CreatedAt time.Time `json:"createdAt"`
}
