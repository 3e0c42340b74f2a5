package entity

import "time"

// Customer cliente registrado para ventas POS.
type Customer struct {
	ID        int64     `json:"id"`
	Document  string    `json:"document"` // cédula o NIT
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}
