package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"employee-api/internal/entities"
	"employee-api/internal/models"
	"employee-api/internal/service"
	"employee-api/internal/validation"

	"github.com/gin-gonic/gin"
)

type EmployeeController struct {
	employeeService service.EmployeeService
}

func NewEmployeeController(employeeService service.EmployeeService) *EmployeeController {
	return &EmployeeController{
		employeeService: employeeService,
	}
}

// CreateEmployee handles POST /api/employees
func (ec *EmployeeController) CreateEmployee(c *gin.Context) {
	var req models.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Failure(models.CodeValidation, "Validation failed", validation.FieldErrors(err)))
		return
	}

	response, err := ec.employeeService.Create(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/employees/%d", response.ID))
	c.JSON(http.StatusCreated, models.Ok(response))
}

// GetAllEmployees handles GET /api/employees
func (ec *EmployeeController) GetAllEmployees(c *gin.Context) {
	responses, err := ec.employeeService.GetAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	if responses == nil {
		responses = []*models.EmployeeResponse{}
	}
	c.JSON(http.StatusOK, models.Ok(responses))
}

// GetEmployeeByID handles GET /api/employees/:id
func (ec *EmployeeController) GetEmployeeByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	response, err := ec.employeeService.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Ok(response))
}

// UpdateEmployee handles PUT /api/employees/:id
func (ec *EmployeeController) UpdateEmployee(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Failure(models.CodeValidation, "Validation failed", validation.FieldErrors(err)))
		return
	}

	response, err := ec.employeeService.Update(c.Request.Context(), id, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Ok(response))
}

// DeleteEmployee handles DELETE /api/employees/:id
func (ec *EmployeeController) DeleteEmployee(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ec.employeeService.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.Failure(models.CodeValidation, "Validation failed", map[string]any{
			"id": "must be an integer",
		}))
		return 0, false
	}
	return id, true
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entities.ErrEmailExists):
		c.JSON(http.StatusBadRequest, models.Failure(models.CodeConflict, "Email already exists", nil))
	case errors.Is(err, entities.ErrEmployeeNotFound):
		c.JSON(http.StatusNotFound, models.Failure(models.CodeNotFound, "Employee not found", nil))
	default:
		log.Printf("ERROR: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, models.Failure(models.CodeInternal, "An unexpected error occurred", nil))
	}
}
