package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/dotwatch/dotwatch-api/internal/core/domain"
	"github.com/dotwatch/dotwatch-api/internal/core/ports"
)

type stubMachineService struct {
	addFn    func(ctx context.Context, input ports.AddMachineInput) (*ports.CreateResult, error)
	listFn   func(ctx context.Context, email string) (*ports.MachineListResult, error)
	deleteFn func(ctx context.Context, email, machineID string) error
}

func (s *stubMachineService) Add(ctx context.Context, input ports.AddMachineInput) (*ports.CreateResult, error) {
	return s.addFn(ctx, input)
}

func (s *stubMachineService) ListForUser(ctx context.Context, email string) (*ports.MachineListResult, error) {
	return s.listFn(ctx, email)
}

func (s *stubMachineService) Delete(ctx context.Context, email, machineID string) error {
	return s.deleteFn(ctx, email, machineID)
}

func TestMachineHandler_Add_Success(t *testing.T) {
	stub := &stubMachineService{
		addFn: func(_ context.Context, input ports.AddMachineInput) (*ports.CreateResult, error) {
			if input.MachineID != "M-1" || input.Location != "Rack 4" || input.UserEmail != "ann@x.com" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.CreateResult{ID: "m1"}, nil
		},
	}
	h := NewMachineHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/users/machine",
		`{"machineId":"M-1","location":"Rack 4","userEmail":"ann@x.com"}`)

	if err := h.Add(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	resp := decodeBody(t, rec)
	if resp["id"] != "m1" || resp["message"] != "Machine added" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestMachineHandler_Add_MissingFields(t *testing.T) {
	h := NewMachineHandler(&stubMachineService{
		addFn: func(_ context.Context, _ ports.AddMachineInput) (*ports.CreateResult, error) {
			t.Fatal("service must not be reached on a validation failure")
			return nil, nil
		},
	})

	cases := []string{
		`{}`,
		`{"machineId":"M-1"}`,
		`{"machineId":"M-1","location":"Rack 4"}`,
		`{"location":"Rack 4","userEmail":"ann@x.com"}`,
	}
	for _, body := range cases {
		c, rec := newTestContext(t, http.MethodPost, "/users/machine", body)
		if err := h.Add(c); err != nil {
			t.Fatalf("body %s: handler error: %v", body, err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, rec.Code)
		}
		if resp := decodeBody(t, rec); resp["message"] != "machineId, location, and userEmail are required" {
			t.Fatalf("body %s: unexpected payload: %+v", body, resp)
		}
	}
}

func TestMachineHandler_Add_UserMissing(t *testing.T) {
	stub := &stubMachineService{
		addFn: func(_ context.Context, _ ports.AddMachineInput) (*ports.CreateResult, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewMachineHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/users/machine",
		`{"machineId":"M-1","location":"Rack 4","userEmail":"ghost@x.com"}`)

	if err := h.Add(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if resp := decodeBody(t, rec); resp["message"] != "User not found" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestMachineHandler_Add_Duplicate(t *testing.T) {
	stub := &stubMachineService{
		addFn: func(_ context.Context, _ ports.AddMachineInput) (*ports.CreateResult, error) {
			return nil, domain.ErrMachineExists
		},
	}
	h := NewMachineHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/users/machine",
		`{"machineId":"M-1","location":"Rack 4","userEmail":"ann@x.com"}`)

	if err := h.Add(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if resp := decodeBody(t, rec); resp["error"] != "Machine already exists" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestMachineHandler_List_Success(t *testing.T) {
	stub := &stubMachineService{
		listFn: func(_ context.Context, email string) (*ports.MachineListResult, error) {
			return &ports.MachineListResult{
				Email: email,
				Machines: []domain.Machine{
					{ID: "m1", MachineID: "M-1", Location: "Rack 4", UserID: "u1"},
					{ID: "m2", MachineID: "M-2", Location: "Rack 5", UserID: "u1"},
				},
			}, nil
		},
	}
	h := NewMachineHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/users/machine/ann@x.com", "")
	c.SetParamNames("email")
	c.SetParamValues("ann@x.com")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeBody(t, rec)
	if resp["email"] != "ann@x.com" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	machines, ok := resp["machines"].([]any)
	if !ok || len(machines) != 2 {
		t.Fatalf("expected two machines: %+v", resp)
	}
	first, _ := machines[0].(map[string]any)
	if first["machineId"] != "M-1" || first["location"] != "Rack 4" {
		t.Fatalf("unexpected machine item: %+v", first)
	}
	// The store id stays internal.
	if _, present := first["id"]; present {
		t.Fatalf("machine items must not expose the store id: %+v", first)
	}
}

func TestMachineHandler_List_Empty(t *testing.T) {
	stub := &stubMachineService{
		listFn: func(_ context.Context, email string) (*ports.MachineListResult, error) {
			return &ports.MachineListResult{Email: email, Machines: []domain.Machine{}}, nil
		},
	}
	h := NewMachineHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/users/machine/ann@x.com", "")
	c.SetParamNames("email")
	c.SetParamValues("ann@x.com")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("a user with no machines is a 200, got %d", rec.Code)
	}
	resp := decodeBody(t, rec)
	machines, ok := resp["machines"].([]any)
	if !ok {
		t.Fatalf("machines must serialize as an array, not null: %s", rec.Body.String())
	}
	if len(machines) != 0 {
		t.Fatalf("expected empty machines array: %+v", machines)
	}
}

func TestMachineHandler_List_UserMissing(t *testing.T) {
	stub := &stubMachineService{
		listFn: func(_ context.Context, _ string) (*ports.MachineListResult, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewMachineHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/users/machine/ghost@x.com", "")
	c.SetParamNames("email")
	c.SetParamValues("ghost@x.com")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if resp := decodeBody(t, rec); resp["message"] != "User not found" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestMachineHandler_Delete_Success(t *testing.T) {
	stub := &stubMachineService{
		deleteFn: func(_ context.Context, email, machineID string) error {
			if email != "ann@x.com" || machineID != "M-1" {
				t.Fatalf("unexpected pair: %q %q", email, machineID)
			}
			return nil
		},
	}
	h := NewMachineHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/users/machine/ann@x.com/M-1", "")
	c.SetParamNames("email", "machineId")
	c.SetParamValues("ann@x.com", "M-1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if resp := decodeBody(t, rec); resp["message"] != "Machine deleted" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestMachineHandler_Delete_MachineMissing(t *testing.T) {
	stub := &stubMachineService{
		deleteFn: func(_ context.Context, _, _ string) error {
			return domain.ErrMachineNotFound
		},
	}
	h := NewMachineHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/users/machine/ann@x.com/M-404", "")
	c.SetParamNames("email", "machineId")
	c.SetParamValues("ann@x.com", "M-404")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if resp := decodeBody(t, rec); resp["message"] != "Machine not found for this user" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestMachineHandler_Delete_UserMissing(t *testing.T) {
	stub := &stubMachineService{
		deleteFn: func(_ context.Context, _, _ string) error {
			return domain.ErrUserNotFound
		},
	}
	h := NewMachineHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/users/machine/ghost@x.com/M-1", "")
	c.SetParamNames("email", "machineId")
	c.SetParamValues("ghost@x.com", "M-1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if resp := decodeBody(t, rec); resp["message"] != "User not found" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}
