package models

import "time"

// EmployeeResponse is the outward-facing representation of an employee.
// The hashedPassword field mirrors the upstream API contract; it only ever
// carries the one-way hash, never the original password.
type EmployeeResponse struct {
	ID             int64     `json:"id"`
	FullName       string    `json:"fullName"`
	Email          string    `json:"email"`
	DateOfBirth    *string   `json:"dateOfBirth"` // YYYY-MM-DD
	Gender         *string   `json:"gender"`
	PhoneNumber    *string   `json:"phoneNumber"`
	Active         bool      `json:"active"`
	HashedPassword string    `json:"hashedPassword"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
