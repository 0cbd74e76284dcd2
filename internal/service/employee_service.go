package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"employee-api/internal/cache"
	"employee-api/internal/entities"
	"employee-api/internal/models"
	"employee-api/internal/repository"
)

const employeeCacheTTL = 1 * time.Hour

// EmployeeService defines the interface for employee business logic
type EmployeeService interface {
	Create(ctx context.Context, req *models.CreateEmployeeRequest) (*models.EmployeeResponse, error)
	GetAll(ctx context.Context) ([]*models.EmployeeResponse, error)
	GetByID(ctx context.Context, id int64) (*models.EmployeeResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateEmployeeRequest) (*models.EmployeeResponse, error)
	Delete(ctx context.Context, id int64) error
}

type employeeService struct {
	repo  repository.EmployeeRepository
	cache cache.Cache
}

// NewEmployeeService creates a new employee service. The cache is optional;
// passing nil disables read-through caching.
func NewEmployeeService(repo repository.EmployeeRepository, cacheClient cache.Cache) EmployeeService {
	return &employeeService{
		repo:  repo,
		cache: cacheClient,
	}
}

// Create registers a new employee with a hashed password
func (s *employeeService) Create(ctx context.Context, req *models.CreateEmployeeRequest) (*models.EmployeeResponse, error) {
	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, entities.ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	dateOfBirth, err := parseDateOfBirth(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	// Omitted active flag defaults to true
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	now := time.Now().UTC()
	employee := &entities.Employee{
		FullName:       req.FullName,
		Email:          req.Email,
		DateOfBirth:    dateOfBirth,
		Gender:         genderFrom(req.Gender),
		PhoneNumber:    req.PhoneNumber,
		Active:         active,
		HashedPassword: string(hashedPassword),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.repo.Create(ctx, employee)
	if err != nil {
		return nil, err
	}

	response := models.ToEmployeeResponse(created)
	s.cacheSet(ctx, created.ID, response)
	return response, nil
}

// GetAll retrieves every employee
func (s *employeeService) GetAll(ctx context.Context) ([]*models.EmployeeResponse, error) {
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.EmployeeResponse, len(employees))
	for i, employee := range employees {
		responses[i] = models.ToEmployeeResponse(employee)
	}
	return responses, nil
}

// GetByID retrieves a single employee, serving from cache when possible
func (s *employeeService) GetByID(ctx context.Context, id int64) (*models.EmployeeResponse, error) {
	if s.cache != nil {
		var cached models.EmployeeResponse
		if err := s.cache.GetJSON(ctx, employeeCacheKey(id), &cached); err == nil {
			return &cached, nil
		}
	}

	employee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := models.ToEmployeeResponse(employee)
	s.cacheSet(ctx, id, response)
	return response, nil
}

// Update replaces the mutable fields of an employee. Email and the stored
// password hash are never touched by this path.
func (s *employeeService) Update(ctx context.Context, id int64, req *models.UpdateEmployeeRequest) (*models.EmployeeResponse, error) {
	employee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dateOfBirth, err := parseDateOfBirth(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	employee.FullName = req.FullName
	employee.DateOfBirth = dateOfBirth
	employee.Gender = genderFrom(req.Gender)
	employee.PhoneNumber = req.PhoneNumber
	employee.Active = req.Active
	employee.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, employee)
	if err != nil {
		return nil, err
	}

	s.cacheDelete(ctx, id)
	return models.ToEmployeeResponse(updated), nil
}

// Delete permanently removes an employee
func (s *employeeService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.cacheDelete(ctx, id)
	return nil
}

func (s *employeeService) cacheSet(ctx context.Context, id int64, response *models.EmployeeResponse) {
	if s.cache == nil {
		return
	}
	// Cache failures never fail the request
	_ = s.cache.SetJSON(ctx, employeeCacheKey(id), response, employeeCacheTTL)
}

func (s *employeeService) cacheDelete(ctx context.Context, id int64) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Delete(ctx, employeeCacheKey(id))
}

func employeeCacheKey(id int64) string {
	return fmt.Sprintf("employee:%d", id)
}

func parseDateOfBirth(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return nil, fmt.Errorf("invalid date of birth: %w", err)
	}
	return &parsed, nil
}

func genderFrom(raw *string) *entities.Gender {
	if raw == nil || *raw == "" {
		return nil
	}
	g := entities.Gender(*raw)
	return &g
}
