package validation_test

import (
	"errors"
	"os"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"employee-api/internal/models"
	"employee-api/internal/validation"
)

func TestMain(m *testing.M) {
	if err := validation.Register(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func engine(t *testing.T) *validator.Validate {
	t.Helper()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		t.Fatalf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return v
}

func strPtr(s string) *string { return &s }

func TestPhoneRule(t *testing.T) {
	type payload struct {
		PhoneNumber *string `json:"phoneNumber" binding:"omitempty,phone"`
	}

	tests := []struct {
		name  string
		phone *string
		valid bool
	}{
		{"omitted", nil, true},
		{"international", strPtr("+1 (555) 123-4567"), true},
		{"dotted", strPtr("555.123.4567"), true},
		{"minimum length", strPtr("1234567"), true},
		{"too short", strPtr("12345"), false},
		{"letters", strPtr("call-me-maybe"), false},
		{"too long", strPtr("+12345678901234567890123456"), false},
	}

	v := engine(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(payload{PhoneNumber: tt.phone})
			if tt.valid && err != nil {
				t.Errorf("expected %v to be valid, got %v", tt.phone, err)
			}
			if !tt.valid && err == nil {
				t.Errorf("expected %v to be rejected", *tt.phone)
			}
		})
	}
}

func TestCreateRequestRules(t *testing.T) {
	tests := []struct {
		name      string
		req       models.CreateEmployeeRequest
		badFields []string
	}{
		{
			name: "valid minimal",
			req:  models.CreateEmployeeRequest{FullName: "Jane Doe", Email: "jane@x.com", Password: "secret1"},
		},
		{
			name:      "short full name",
			req:       models.CreateEmployeeRequest{FullName: "Bob", Email: "bob@x.com", Password: "secret1"},
			badFields: []string{"fullName"},
		},
		{
			name:      "blank full name",
			req:       models.CreateEmployeeRequest{FullName: "      ", Email: "jane@x.com", Password: "secret1"},
			badFields: []string{"fullName"},
		},
		{
			name:      "bad email",
			req:       models.CreateEmployeeRequest{FullName: "Jane Doe", Email: "not-an-email", Password: "secret1"},
			badFields: []string{"email"},
		},
		{
			name:      "short password",
			req:       models.CreateEmployeeRequest{FullName: "Jane Doe", Email: "jane@x.com", Password: "short"},
			badFields: []string{"password"},
		},
		{
			name:      "bad date of birth",
			req:       models.CreateEmployeeRequest{FullName: "Jane Doe", Email: "jane@x.com", Password: "secret1", DateOfBirth: strPtr("15/01/1990")},
			badFields: []string{"dateOfBirth"},
		},
		{
			name:      "unknown gender",
			req:       models.CreateEmployeeRequest{FullName: "Jane Doe", Email: "jane@x.com", Password: "secret1", Gender: strPtr("UNKNOWN")},
			badFields: []string{"gender"},
		},
		{
			name:      "everything missing",
			req:       models.CreateEmployeeRequest{},
			badFields: []string{"fullName", "email", "password"},
		},
	}

	v := engine(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.req)
			if len(tt.badFields) == 0 {
				if err != nil {
					t.Fatalf("expected valid request, got %v", err)
				}
				return
			}

			if err == nil {
				t.Fatal("expected validation to fail")
			}

			details := validation.FieldErrors(err)
			for _, field := range tt.badFields {
				if _, ok := details[field]; !ok {
					t.Errorf("expected a field-level error for %s, got %v", field, details)
				}
			}
			if len(details) != len(tt.badFields) {
				t.Errorf("expected %d field errors, got %v", len(tt.badFields), details)
			}
		})
	}
}

func TestFieldErrors_NonValidationError(t *testing.T) {
	details := validation.FieldErrors(errors.New("unexpected EOF"))
	if _, ok := details["body"]; !ok {
		t.Errorf("expected a body-level error, got %v", details)
	}
}
