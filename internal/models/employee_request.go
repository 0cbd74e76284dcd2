package models

// CreateEmployeeRequest represents the request body for creating an employee
type CreateEmployeeRequest struct {
	FullName    string  `json:"fullName" binding:"required,notblank,min=4,max=160"`
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required,notblank,min=6,max=100"`
	DateOfBirth *string `json:"dateOfBirth" binding:"omitempty,datetime=2006-01-02"`
	Gender      *string `json:"gender" binding:"omitempty,oneof=MALE FEMALE OTHER"`
	PhoneNumber *string `json:"phoneNumber" binding:"omitempty,phone"`
	Active      *bool   `json:"active"` // Pointer allows nil; defaults to true when omitted
}

// UpdateEmployeeRequest represents the request body for updating an employee.
// Email and password are immutable through this path. Mutable fields are
// replaced wholesale: an omitted optional field clears the stored value, and
// an omitted active flag means false.
type UpdateEmployeeRequest struct {
	FullName    string  `json:"fullName" binding:"required,notblank,min=4,max=160"`
	DateOfBirth *string `json:"dateOfBirth" binding:"omitempty,datetime=2006-01-02"`
	Gender      *string `json:"gender" binding:"omitempty,oneof=MALE FEMALE OTHER"`
	PhoneNumber *string `json:"phoneNumber" binding:"omitempty,phone"`
	Active      bool    `json:"active"`
}
