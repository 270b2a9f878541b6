package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/dotwatch/dotwatch-api/internal/core/domain"
	"github.com/dotwatch/dotwatch-api/internal/core/ports"
)

type stubUserService struct {
	createFn func(ctx context.Context, input ports.CreateUserInput) (*ports.CreateResult, error)
	listFn   func(ctx context.Context) ([]domain.User, error)
	checkFn  func(ctx context.Context, email string) (*domain.User, error)
	updateFn func(ctx context.Context, email string, upd ports.UserUpdate) error
	deleteFn func(ctx context.Context, email string) error
}

func (s *stubUserService) Create(ctx context.Context, input ports.CreateUserInput) (*ports.CreateResult, error) {
	return s.createFn(ctx, input)
}

func (s *stubUserService) List(ctx context.Context) ([]domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) CheckEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.checkFn(ctx, email)
}

func (s *stubUserService) UpdateByEmail(ctx context.Context, email string, upd ports.UserUpdate) error {
	return s.updateFn(ctx, email, upd)
}

func (s *stubUserService) DeleteByEmail(ctx context.Context, email string) error {
	return s.deleteFn(ctx, email)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return resp
}

func TestUserHandler_Create_Success(t *testing.T) {
	stub := &stubUserService{
		createFn: func(_ context.Context, input ports.CreateUserInput) (*ports.CreateResult, error) {
			if input.Name != "Ann" || input.Email != "ann@x.com" || input.CompanyName != "Acme" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.CreateResult{ID: "abc123"}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/users",
		`{"name":"Ann","email":"ann@x.com","companyName":"Acme"}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeBody(t, rec)
	if resp["id"] != "abc123" || resp["message"] != "User added" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestUserHandler_Create_Duplicate(t *testing.T) {
	stub := &stubUserService{
		createFn: func(_ context.Context, _ ports.CreateUserInput) (*ports.CreateResult, error) {
			return nil, domain.ErrUserExists
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/users", `{"email":"ann@x.com"}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	resp := decodeBody(t, rec)
	if resp["error"] != "User already exists" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestUserHandler_Check_Found(t *testing.T) {
	stub := &stubUserService{
		checkFn: func(_ context.Context, email string) (*domain.User, error) {
			if email != "ann@x.com" {
				t.Fatalf("unexpected email: %q", email)
			}
			return &domain.User{ID: "abc123", Email: email, Name: "Ann"}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/users/check/ann@x.com", "")
	c.SetParamNames("email")
	c.SetParamValues("ann@x.com")

	if err := h.Check(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeBody(t, rec)
	if resp["exists"] != true {
		t.Fatalf("expected exists=true: %+v", resp)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["email"] != "ann@x.com" {
		t.Fatalf("expected user payload: %+v", resp)
	}
}

func TestUserHandler_Check_NotFound(t *testing.T) {
	stub := &stubUserService{
		checkFn: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/users/check/ghost@x.com", "")
	c.SetParamNames("email")
	c.SetParamValues("ghost@x.com")

	if err := h.Check(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	resp := decodeBody(t, rec)
	if resp["exists"] != false || resp["message"] != "User not found" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, present := resp["user"]; present {
		t.Fatalf("user must be omitted on miss: %+v", resp)
	}
}

func TestUserHandler_Update_PassesOnlyProvidedFields(t *testing.T) {
	stub := &stubUserService{
		updateFn: func(_ context.Context, email string, upd ports.UserUpdate) error {
			if email != "ann@x.com" {
				t.Fatalf("unexpected email: %q", email)
			}
			if upd.Name == nil || *upd.Name != "Anna" {
				t.Fatalf("expected name pointer: %+v", upd)
			}
			if upd.CompanyName != nil || upd.Age != nil {
				t.Fatalf("absent fields must arrive as nil: %+v", upd)
			}
			return nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/users/ann@x.com", `{"name":"Anna"}`)
	c.SetParamNames("email")
	c.SetParamValues("ann@x.com")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if resp := decodeBody(t, rec); resp["message"] != "User updated" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestUserHandler_Update_NotFound(t *testing.T) {
	stub := &stubUserService{
		updateFn: func(_ context.Context, _ string, _ ports.UserUpdate) error {
			return domain.ErrUserNotFound
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/users/ghost@x.com", `{"name":"X"}`)
	c.SetParamNames("email")
	c.SetParamValues("ghost@x.com")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if resp := decodeBody(t, rec); resp["message"] != "User not found" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestUserHandler_Delete_Success(t *testing.T) {
	stub := &stubUserService{
		deleteFn: func(_ context.Context, email string) error {
			if email != "ann@x.com" {
				t.Fatalf("unexpected email: %q", email)
			}
			return nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/users/ann@x.com", "")
	c.SetParamNames("email")
	c.SetParamValues("ann@x.com")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if resp := decodeBody(t, rec); resp["message"] != "User deleted" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestUserHandler_List(t *testing.T) {
	stub := &stubUserService{
		listFn: func(_ context.Context) ([]domain.User, error) {
			return []domain.User{
				{ID: "u1", Name: "Ann", Email: "ann@x.com", CompanyName: "Acme"},
				{ID: "u2", Name: "Ben", Email: "ben@x.com", CompanyName: "Acme"},
			}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/users", "")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 || resp[0]["id"] != "u1" || resp[1]["email"] != "ben@x.com" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}
