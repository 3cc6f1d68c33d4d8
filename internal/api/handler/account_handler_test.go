package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jobboard/jobboard-api/internal/core/domain"
	"github.com/jobboard/jobboard-api/internal/core/ports"
)

type stubAccountService struct {
	registerFn     func(ctx context.Context, in ports.RegisterInput) (string, error)
	loginFn        func(ctx context.Context, email, password string) (string, *domain.User, error)
	updateFn       func(ctx context.Context, id string, in ports.UpdateUserInput) (bool, error)
	bulkRegisterFn func(ctx context.Context, entries []ports.RegisterInput) ([]string, error)
}

func (s *stubAccountService) ListUsers(context.Context) ([]*domain.User, error) { return nil, nil }
func (s *stubAccountService) GetUser(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}
func (s *stubAccountService) Register(ctx context.Context, in ports.RegisterInput) (string, error) {
	return s.registerFn(ctx, in)
}
func (s *stubAccountService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}
func (s *stubAccountService) UpdateUser(ctx context.Context, id string, in ports.UpdateUserInput) (bool, error) {
	return s.updateFn(ctx, id, in)
}
func (s *stubAccountService) DeleteUser(context.Context, string) error { return nil }
func (s *stubAccountService) BulkRegister(ctx context.Context, entries []ports.RegisterInput) ([]string, error) {
	return s.bulkRegisterFn(ctx, entries)
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

func TestAccountHandler_Register_Success(t *testing.T) {
	stub := &stubAccountService{
		registerFn: func(_ context.Context, in ports.RegisterInput) (string, error) {
			if in.Email != "alice@example.com" || in.Role != "candidate" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return "id-1", nil
		},
	}
	h := NewAccountHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/register",
		`{"email":"alice@example.com","full_name":"Alice A","password":"secret","role":"candidate"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "id-1" {
		t.Fatalf("expected id in response, got %+v", resp)
	}
}

func TestAccountHandler_Register_EmailTaken(t *testing.T) {
	stub := &stubAccountService{
		registerFn: func(context.Context, ports.RegisterInput) (string, error) {
			return "", domain.ErrEmailTaken
		},
	}
	h := NewAccountHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/register",
		`{"email":"alice@example.com","full_name":"Alice A","password":"secret","role":"candidate"}`)

	err := h.Register(c)
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken to propagate, got %v", err)
	}
}

func TestAccountHandler_Register_InvalidPayload(t *testing.T) {
	stub := &stubAccountService{
		registerFn: func(context.Context, ports.RegisterInput) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	h := NewAccountHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/register", "not-json")

	err := h.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAccountHandler_Register_MissingRole(t *testing.T) {
	stub := &stubAccountService{
		registerFn: func(context.Context, ports.RegisterInput) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	h := NewAccountHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/register",
		`{"email":"alice@example.com","full_name":"Alice A","password":"secret"}`)

	err := h.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAccountHandler_Login_Success(t *testing.T) {
	stub := &stubAccountService{
		loginFn: func(_ context.Context, email, password string) (string, *domain.User, error) {
			if email != "alice@example.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token123", &domain.User{
				ID:        "id-1",
				Email:     email,
				FullName:  "Alice A",
				Role:      "candidate",
				CreatedAt: time.Now().UTC(),
			}, nil
		},
	}
	h := NewAccountHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"secret"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["email"] != "alice@example.com" || user["role"] != "candidate" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
}

func TestAccountHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAccountService{
		loginFn: func(context.Context, string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAccountHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"bad"}`)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestAccountHandler_Update_MissingUserIs404(t *testing.T) {
	stub := &stubAccountService{
		updateFn: func(context.Context, string, ports.UpdateUserInput) (bool, error) {
			return false, nil
		},
	}
	h := NewAccountHandler(stub)

	c, _ := newTestContext(t, http.MethodPut, "/v1/users/nope",
		`{"email":"alice@example.com","full_name":"Alice A","role":"candidate"}`)
	c.SetParamNames("id")
	c.SetParamValues("nope")

	err := h.Update(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
}

func TestAccountHandler_BulkRegister_EmptyBatch(t *testing.T) {
	stub := &stubAccountService{
		bulkRegisterFn: func(context.Context, []ports.RegisterInput) ([]string, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAccountHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/register/bulk", `[]`)

	err := h.BulkRegister(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAccountHandler_BulkRegister_Success(t *testing.T) {
	stub := &stubAccountService{
		bulkRegisterFn: func(_ context.Context, entries []ports.RegisterInput) ([]string, error) {
			if len(entries) != 2 {
				t.Fatalf("expected 2 entries, got %d", len(entries))
			}
			return []string{"id-1", "id-2"}, nil
		},
	}
	h := NewAccountHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/register/bulk",
		`[{"email":"a@x.com","full_name":"A","password":"p","role":"candidate"},
		  {"email":"b@x.com","full_name":"B","password":"p","role":"employer"}]`)

	if err := h.BulkRegister(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp bulkRegisterResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Count != 2 || len(resp.IDs) != 2 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
