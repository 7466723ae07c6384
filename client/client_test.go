package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"stayhub-backend/client"
)

func newSession(t *testing.T) *client.Session {
	t.Helper()
	s, err := client.NewSession(t.TempDir())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

type recordingNotifier struct {
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *recordingNotifier) Error(msg string)   { n.errors = append(n.errors, msg) }

func authBody() map[string]any {
	return map[string]any{
		"success": true,
		"data": map[string]any{
			"token": "tok-123",
			"user": map[string]any{
				"id":         1,
				"email":      "m@example.com",
				"role":       "merchant",
				"created_at": "2024-01-01T00:00:00Z",
			},
		},
	}
}

func TestLogin_SendsNoAuthHeaderAndStoresSession(t *testing.T) {
	var sawAuth atomic.Bool
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			sawAuth.Store(true)
		}
		_ = json.NewEncoder(w).Encode(authBody())
	}))
	defer ts.Close()

	s := newSession(t)
	c := client.New(ts.URL, s)

	out, err := c.Login(context.Background(), client.LoginRequest{
		Email:    "m@example.com",
		Password: "secret1a",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if sawAuth.Load() {
		t.Fatal("pre-login request must not carry an Authorization header")
	}
	if out.Token != "tok-123" {
		t.Fatalf("unexpected token %q", out.Token)
	}
	if out.User.Role != client.RoleMerchant {
		t.Fatalf("unexpected role %q", out.User.Role)
	}
	if !s.IsAuthenticated() || s.Token() != "tok-123" {
		t.Fatal("session not persisted after login")
	}
}

func TestLogin_InvalidResponseShape(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// token missing, role outside the enum
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"user": map[string]any{"id": 1, "email": "m@example.com", "role": "superuser"},
			},
		})
	}))
	defer ts.Close()

	c := client.New(ts.URL, newSession(t))
	_, err := c.Login(context.Background(), client.LoginRequest{Email: "m@example.com", Password: "secret1a"})

	var shapeErr *client.ResponseShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("expected ResponseShapeError, got %v", err)
	}
	if c.Session().IsAuthenticated() {
		t.Fatal("session must stay empty when the response shape is invalid")
	}
}

func TestBusinessFailure_RejectsWithPayloadMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "email already registered"})
	}))
	defer ts.Close()

	n := &recordingNotifier{}
	c := client.New(ts.URL, newSession(t), client.WithNotifier(n))

	_, err := c.Register(context.Background(), client.RegisterRequest{Email: "m@example.com", Password: "secret1a"})
	var bizErr *client.BusinessError
	if !errors.As(err, &bizErr) {
		t.Fatalf("expected BusinessError, got %v", err)
	}
	if bizErr.Message != "email already registered" {
		t.Fatalf("unexpected message %q", bizErr.Message)
	}
	if len(n.errors) != 1 || n.errors[0] != "email already registered" {
		t.Fatalf("failure must be surfaced once, got %v", n.errors)
	}
}

func TestBusinessFailure_FallbackMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false})
	}))
	defer ts.Close()

	c := client.New(ts.URL, newSession(t))
	err := c.DeleteHotel(context.Background(), 7)

	var bizErr *client.BusinessError
	if !errors.As(err, &bizErr) {
		t.Fatalf("expected BusinessError, got %v", err)
	}
	if bizErr.Message != "request failed" {
		t.Fatalf("expected fallback message, got %q", bizErr.Message)
	}
}

func TestUnauthorized_ClearsSessionFromEitherPath(t *testing.T) {
	cases := map[string]func(w http.ResponseWriter){
		"envelope": func(w http.ResponseWriter) {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "token expired"})
		},
		"bare": func(w http.ResponseWriter) {
			w.WriteHeader(http.StatusUnauthorized)
		},
	}

	for name, respond := range cases {
		t.Run(name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				respond(w)
			}))
			defer ts.Close()

			dir := t.TempDir()
			s, err := client.NewSession(dir)
			if err != nil {
				t.Fatalf("NewSession: %v", err)
			}
			s.Login("stale-token", client.User{ID: 1, Email: "m@example.com", Role: "merchant"})

			var expired atomic.Int32
			c := client.New(ts.URL, s, client.WithAuthExpiredHook(func() { expired.Add(1) }))

			_, err = c.Profile(context.Background())
			var authErr *client.AuthError
			if !errors.As(err, &authErr) {
				t.Fatalf("expected AuthError, got %v", err)
			}
			if s.IsAuthenticated() || s.Token() != "" || s.User() != nil {
				t.Fatal("session must be cleared immediately after a 401")
			}
			if got := expired.Load(); got != 1 {
				t.Fatalf("auth-expired hook fired %d times, want 1", got)
			}

			// durable state cleared too
			reloaded, err := client.NewSession(dir)
			if err != nil {
				t.Fatalf("NewSession reload: %v", err)
			}
			if reloaded.IsAuthenticated() {
				t.Fatal("persisted session must be empty after a 401")
			}
		})
	}
}

func TestTransportFailure_SurfacesBodyMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "database down"})
	}))
	defer ts.Close()

	c := client.New(ts.URL, newSession(t))
	_, err := c.AdminStatistics(context.Background())

	var terr *client.TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if terr.Status != http.StatusInternalServerError || terr.Message != "database down" {
		t.Fatalf("unexpected transport error %+v", terr)
	}
}

func TestAuthenticatedRequest_CarriesBearerToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-9" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"total_hotels": 3, "pending_hotels": 1, "approved_hotels": 2, "total_merchants": 5},
		})
	}))
	defer ts.Close()

	s := newSession(t)
	s.Login("tok-9", client.User{ID: 2, Email: "a@example.com", Role: "admin"})
	c := client.New(ts.URL, s)

	stats, err := c.AdminStatistics(context.Background())
	if err != nil {
		t.Fatalf("AdminStatistics: %v", err)
	}
	if stats.TotalHotels != 3 || stats.TotalMerchants != 5 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestUpdateHotel_SendsOnlyProvidedFields(t *testing.T) {
	var body map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&body)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"hotel": map[string]any{"id": 5, "name": "Renamed Hotel", "status": "pending"},
			},
		})
	}))
	defer ts.Close()

	s := newSession(t)
	s.Login("tok", client.User{ID: 1, Email: "m@example.com", Role: "merchant"})
	c := client.New(ts.URL, s)

	name := "Renamed Hotel"
	hotel, err := c.UpdateHotel(context.Background(), 5, client.UpdateHotelRequest{Name: &name})
	if err != nil {
		t.Fatalf("UpdateHotel: %v", err)
	}
	if hotel.Name != "Renamed Hotel" || hotel.Status != "pending" {
		t.Fatalf("unexpected hotel %+v", hotel)
	}

	if len(body) != 1 {
		t.Fatalf("partial edit must only send the provided fields, got %v", body)
	}
	if body["name"] != "Renamed Hotel" {
		t.Fatalf("name missing from body: %v", body)
	}
}

func TestSuccessNotification_EmittedOnce(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "hotel deleted"})
	}))
	defer ts.Close()

	n := &recordingNotifier{}
	s := newSession(t)
	s.Login("tok", client.User{ID: 1, Email: "m@example.com", Role: "merchant"})
	c := client.New(ts.URL, s, client.WithNotifier(n))

	if err := c.DeleteHotel(context.Background(), 3); err != nil {
		t.Fatalf("DeleteHotel: %v", err)
	}
	if len(n.successes) != 1 {
		t.Fatalf("expected exactly one success notification, got %v", n.successes)
	}
}
