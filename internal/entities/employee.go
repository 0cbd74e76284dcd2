package entities

import "time"

// Gender is the closed set of gender values an employee can have
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// Employee represents an employee entity in the database
type Employee struct {
	ID             int64      `json:"id"`
	FullName       string     `json:"fullName"`
	Email          string     `json:"email"`
	DateOfBirth    *time.Time `json:"dateOfBirth,omitempty"` // Pointer allows nil (date not provided)
	Gender         *Gender    `json:"gender,omitempty"`
	PhoneNumber    *string    `json:"phoneNumber,omitempty"`
	Active         bool       `json:"active"`
	HashedPassword string     `json:"-"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}
