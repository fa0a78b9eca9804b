package veilapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type tokenFunc func(ctx context.Context) (string, error)

func (f tokenFunc) Token(ctx context.Context) (string, error) { return f(ctx) }

func staticToken(tok string) TokenSource {
	return tokenFunc(func(context.Context) (string, error) { return tok, nil })
}

func TestAuthHeaderAttachment(t *testing.T) {
	cases := []struct {
		name   string
		path   string
		token  string
		expect string
	}{
		{"login skipped", "/api/auth/login", "tok123", ""},
		{"register skipped", "/api/auth/register", "tok123", ""},
		{"player attached", "/api/players/me", "tok123", "Bearer tok123"},
		{"friends attached", "/api/friends", "tok123", "Bearer tok123"},
		{"empty token omitted", "/api/friends", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = r.Header.Get("Authorization")
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{}`))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, WithTokenSource(staticToken(tc.token)))
			var out map[string]any
			if err := c.doJSON(context.Background(), http.MethodGet, tc.path, nil, &out); err != nil {
				t.Fatalf("doJSON: %v", err)
			}
			if got != tc.expect {
				t.Fatalf("Authorization = %q, want %q", got, tc.expect)
			}
		})
	}
}

func TestTokenLookupFailureSendsAnonymous(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	failing := tokenFunc(func(context.Context) (string, error) {
		return "", errors.New("store unavailable")
	})
	c := NewClient(srv.URL, WithTokenSource(failing))
	var out map[string]any
	if err := c.doJSON(context.Background(), http.MethodGet, "/api/friends", nil, &out); err != nil {
		t.Fatalf("request should not fail on token lookup error: %v", err)
	}
	if got != "" {
		t.Fatalf("expected no Authorization header, got %q", got)
	}
}

func TestRequestIDHeader(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("X-Request-Id")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	var out map[string]any
	if err := c.doJSON(context.Background(), http.MethodGet, "/api/friends", nil, &out); err != nil {
		t.Fatalf("doJSON: %v", err)
	}
	if got == "" {
		t.Fatalf("expected X-Request-Id header on outgoing request")
	}
}

func TestStatusErrorCarriesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("player not found"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.doJSON(context.Background(), http.MethodGet, "/api/players/me", nil, nil)
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if se.Status != http.StatusNotFound || se.Message != "player not found" {
		t.Fatalf("unexpected StatusError: %+v", se)
	}
}

func TestStatusErrorEmptyBodyUsesStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.doJSON(context.Background(), http.MethodGet, "/api/players/me", nil, nil)
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if se.Message != "Internal Server Error" {
		t.Fatalf("unexpected message: %q", se.Message)
	}
}

func TestEmptyBodyWhereExpectedIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if _, err := c.CurrentPlayer(context.Background()); err == nil {
		t.Fatalf("expected error for 200 with no body")
	}
}

func TestLoginDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"jwt-1","email":"a@example.com","nickname":"alice"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	resp, err := c.Login(context.Background(), "a@example.com", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token != "jwt-1" || resp.Email != "a@example.com" || resp.Nickname != "alice" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestSendFriendRequestDecodesID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"requestId":42}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	id, err := c.SendFriendRequest(context.Background(), CreateFriendRequestDTO{PlayerID: "b@example.com"})
	if err != nil {
		t.Fatalf("SendFriendRequest: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected id 42, got %d", id)
	}
}

func TestRemoveFriendEscapesEmail(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if err := c.RemoveFriend(context.Background(), "b@example.com"); err != nil {
		t.Fatalf("RemoveFriend: %v", err)
	}
	if gotPath != "/api/friends/b@example.com" && gotPath != "/api/friends/b%40example.com" {
		t.Fatalf("unexpected path: %q", gotPath)
	}
}
