package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"employee-api/internal/controllers"
	"employee-api/internal/entities"
	"employee-api/internal/mocks"
	"employee-api/internal/models"
	"employee-api/internal/service"
	"employee-api/internal/validation"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := validation.Register(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Message string         `json:"message"`
		Code    string         `json:"code"`
		Details map[string]any `json:"details"`
	} `json:"error"`
	Timestamp time.Time `json:"timestamp"`
}

func setupRouter(employeeService service.EmployeeService) *gin.Engine {
	router := gin.New()
	employeeController := controllers.NewEmployeeController(employeeService)

	api := router.Group("/api")
	{
		api.POST("/employees", employeeController.CreateEmployee)
		api.GET("/employees", employeeController.GetAllEmployees)
		api.GET("/employees/:id", employeeController.GetEmployeeByID)
		api.PUT("/employees/:id", employeeController.UpdateEmployee)
		api.DELETE("/employees/:id", employeeController.DeleteEmployee)
	}
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode envelope from %q: %v", w.Body.String(), err)
	}
	return env
}

func TestCreateEmployee_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockEmployeeService(ctrl)

	now := time.Now().UTC()
	svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&models.EmployeeResponse{
		ID:             1,
		FullName:       "Jane Doe",
		Email:          "jane@x.com",
		Active:         true,
		HashedPassword: "$2a$10$somebcrypthash",
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil)

	router := setupRouter(svc)
	w := doRequest(t, router, http.MethodPost, "/api/employees",
		`{"fullName":"Jane Doe","email":"jane@x.com","password":"secret1"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != "/api/employees/1" {
		t.Errorf("expected Location /api/employees/1, got %q", loc)
	}

	env := decodeEnvelope(t, w)
	if !env.Success {
		t.Error("expected success envelope")
	}

	var data struct {
		ID             int64  `json:"id"`
		Active         bool   `json:"active"`
		HashedPassword string `json:"hashedPassword"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("failed to decode data: %v", err)
	}
	if data.ID != 1 {
		t.Errorf("expected data.id 1, got %d", data.ID)
	}
	if !data.Active {
		t.Error("expected data.active true")
	}
	if data.HashedPassword == "secret1" {
		t.Error("response carried the plain password")
	}
}

func TestCreateEmployee_ValidationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockEmployeeService(ctrl) // no calls expected

	router := setupRouter(svc)
	w := doRequest(t, router, http.MethodPost, "/api/employees",
		`{"fullName":"Bob","email":"bob@x.com","password":"secret1"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}

	env := decodeEnvelope(t, w)
	if env.Success {
		t.Error("expected failure envelope")
	}
	if env.Error == nil || env.Error.Code != models.CodeValidation {
		t.Fatalf("expected %s error, got %+v", models.CodeValidation, env.Error)
	}
	if _, ok := env.Error.Details["fullName"]; !ok {
		t.Errorf("expected a field-level error for fullName, got %v", env.Error.Details)
	}
}

func TestCreateEmployee_ReportsEveryInvalidField(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockEmployeeService(ctrl)

	router := setupRouter(svc)
	w := doRequest(t, router, http.MethodPost, "/api/employees",
		`{"fullName":"Bob","email":"not-an-email","password":"short","phoneNumber":"123"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	env := decodeEnvelope(t, w)
	for _, field := range []string{"fullName", "email", "password", "phoneNumber"} {
		if _, ok := env.Error.Details[field]; !ok {
			t.Errorf("expected a field-level error for %s, got %v", field, env.Error.Details)
		}
	}
}

func TestCreateEmployee_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockEmployeeService(ctrl)

	svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, entities.ErrEmailExists)

	router := setupRouter(svc)
	w := doRequest(t, router, http.MethodPost, "/api/employees",
		`{"fullName":"Jane Doe","email":"jane@x.com","password":"secret1"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	env := decodeEnvelope(t, w)
	if env.Error == nil || env.Error.Code != models.CodeConflict {
		t.Fatalf("expected %s error, got %+v", models.CodeConflict, env.Error)
	}
}

func TestGetAllEmployees(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockEmployeeService(ctrl)

	now := time.Now().UTC()
	svc.EXPECT().GetAll(gomock.Any()).Return([]*models.EmployeeResponse{
		{ID: 1, FullName: "Jane Doe", Email: "jane@x.com", Active: true, CreatedAt: now, UpdatedAt: now},
		{ID: 2, FullName: "John Roe", Email: "john@x.com", Active: true, CreatedAt: now, UpdatedAt: now},
	}, nil)

	router := setupRouter(svc)
	w := doRequest(t, router, http.MethodGet, "/api/employees", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	env := decodeEnvelope(t, w)
	var data []json.RawMessage
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("failed to decode data: %v", err)
	}
	if len(data) != 2 {
		t.Errorf("expected 2 employees, got %d", len(data))
	}
}

func TestGetAllEmployees_EmptyListIsNotNull(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockEmployeeService(ctrl)

	svc.EXPECT().GetAll(gomock.Any()).Return(nil, nil)

	router := setupRouter(svc)
	w := doRequest(t, router, http.MethodGet, "/api/employees", "")

	env := decodeEnvelope(t, w)
	if string(env.Data) != "[]" {
		t.Errorf("expected empty array, got %s", env.Data)
	}
}

func TestGetEmployeeByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockEmployeeService(ctrl)

	svc.EXPECT().GetByID(gomock.Any(), int64(42)).Return(nil, entities.ErrEmployeeNotFound)

	router := setupRouter(svc)
	w := doRequest(t, router, http.MethodGet, "/api/employees/42", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	env := decodeEnvelope(t, w)
	if env.Error == nil || env.Error.Code != models.CodeNotFound {
		t.Fatalf("expected %s error, got %+v", models.CodeNotFound, env.Error)
	}
}

func TestGetEmployeeByID_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockEmployeeService(ctrl) // no calls expected

	router := setupRouter(svc)
	w := doRequest(t, router, http.MethodGet, "/api/employees/abc", "")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	env := decodeEnvelope(t, w)
	if env.Error == nil || env.Error.Code != models.CodeValidation {
		t.Fatalf("expected %s error, got %+v", models.CodeValidation, env.Error)
	}
	if _, ok := env.Error.Details["id"]; !ok {
		t.Errorf("expected a field-level error for id, got %v", env.Error.Details)
	}
}

func TestUpdateEmployee_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockEmployeeService(ctrl)

	now := time.Now().UTC()
	svc.EXPECT().Update(gomock.Any(), int64(9), gomock.Any()).Return(&models.EmployeeResponse{
		ID:        9,
		FullName:  "Jane Q. Doe",
		Email:     "jane@x.com",
		Active:    true,
		CreatedAt: now.Add(-time.Hour),
		UpdatedAt: now,
	}, nil)

	router := setupRouter(svc)
	w := doRequest(t, router, http.MethodPut, "/api/employees/9",
		`{"fullName":"Jane Q. Doe","active":true}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	env := decodeEnvelope(t, w)
	if !env.Success {
		t.Error("expected success envelope")
	}
}

func TestUpdateEmployee_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockEmployeeService(ctrl)

	svc.EXPECT().Update(gomock.Any(), int64(404), gomock.Any()).Return(nil, entities.ErrEmployeeNotFound)

	router := setupRouter(svc)
	w := doRequest(t, router, http.MethodPut, "/api/employees/404",
		`{"fullName":"Jane Doe","active":true}`)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestDeleteEmployee_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockEmployeeService(ctrl)

	svc.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil)

	router := setupRouter(svc)
	w := doRequest(t, router, http.MethodDelete, "/api/employees/3", "")

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", w.Body.String())
	}
}

func TestDeleteEmployee_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockEmployeeService(ctrl)

	svc.EXPECT().Delete(gomock.Any(), int64(999999)).Return(entities.ErrEmployeeNotFound)

	router := setupRouter(svc)
	w := doRequest(t, router, http.MethodDelete, "/api/employees/999999", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
