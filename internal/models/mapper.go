package models

import "employee-api/internal/entities"

// ToEmployeeResponse converts a persisted employee to its outward
// representation. Returns nil when given nil.
func ToEmployeeResponse(e *entities.Employee) *EmployeeResponse {
	if e == nil {
		return nil
	}

	var dateOfBirth *string
	if e.DateOfBirth != nil {
		formatted := e.DateOfBirth.Format("2006-01-02")
		dateOfBirth = &formatted
	}

	var gender *string
	if e.Gender != nil {
		g := string(*e.Gender)
		gender = &g
	}

	return &EmployeeResponse{
		ID:             e.ID,
		FullName:       e.FullName,
		Email:          e.Email,
		DateOfBirth:    dateOfBirth,
		Gender:         gender,
		PhoneNumber:    e.PhoneNumber,
		Active:         e.Active,
		HashedPassword: e.HashedPassword,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
