package dto

// CreateCustomerRequest body para registrar un cliente.
type CreateCustomerRequest struct {
	Document string `json:"document" validate:"required"`
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
}

// CustomerResponse cliente expuesto al front.
type CustomerResponse struct {
	ID       int64  `json:"id"`
	Document string `json:"document"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}
