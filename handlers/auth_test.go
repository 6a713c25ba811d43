package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/resumeinsight/backend/auth"
	"github.com/resumeinsight/backend/models"
)

func postJSON(ts *testServer, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return ts.do(req)
}

func decodeAuth(t *testing.T, w *httptest.ResponseRecorder) models.AuthResponse {
	t.Helper()
	var resp models.AuthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid auth body %s: %v", w.Body.String(), err)
	}
	return resp
}

func TestRegisterAndLogin(t *testing.T) {
	ts := newTestServer(t)

	w := postJSON(ts, "/api/auth/register", `{"email":"Jane@Example.com","password":"secret123","name":"Jane"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("register status = %d (%s)", w.Code, w.Body.String())
	}
	if resp := decodeAuth(t, w); resp.Token == "" || resp.User.Email != "jane@example.com" {
		t.Errorf("register response = %+v", resp)
	}
	if strings.Contains(w.Body.String(), "secret123") {
		t.Error("password leaked in response")
	}

	if w := postJSON(ts, "/api/auth/register", `{"email":"jane@example.com","password":"secret123","name":"Jane"}`); w.Code != http.StatusConflict {
		t.Errorf("duplicate register status = %d, want 409", w.Code)
	}

	tests := []struct {
		name string
		body string
		want int
	}{
		{"correct password", `{"email":"jane@example.com","password":"secret123"}`, http.StatusOK},
		{"wrong password", `{"email":"jane@example.com","password":"nope"}`, http.StatusUnauthorized},
		{"unknown user", `{"email":"bob@example.com","password":"secret123"}`, http.StatusUnauthorized},
		{"invalid email", `{"email":"jane","password":"secret123"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := postJSON(ts, "/api/auth/login", tt.body); w.Code != tt.want {
				t.Errorf("login status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestProfile(t *testing.T) {
	ts := newTestServer(t)
	w := postJSON(ts, "/api/auth/register", `{"email":"jane@example.com","password":"secret123","name":"Jane"}`)
	token := "Bearer " + decodeAuth(t, w).Token

	req := httptest.NewRequest(http.MethodPut, "/api/auth/profile", strings.NewReader(`{"name":"Jane Smith"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token)
	if w := ts.do(req); w.Code != http.StatusOK {
		t.Fatalf("update status = %d (%s)", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req.Header.Set("Authorization", token)
	w = ts.do(req)
	var profile models.ProfileResponse
	if err := json.Unmarshal(w.Body.Bytes(), &profile); err != nil {
		t.Fatal(err)
	}
	if profile.User == nil || profile.User.Name != "Jane Smith" {
		t.Errorf("profile = %+v", profile.User)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
	req.Header.Set("Authorization", token)
	w = ts.do(req)
	if resp := decodeAuth(t, w); w.Code != http.StatusOK || resp.Token == "" {
		t.Errorf("refresh = %d %+v", w.Code, resp)
	}

	if w := ts.do(httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)); w.Code != http.StatusUnauthorized {
		t.Errorf("anonymous profile status = %d, want 401", w.Code)
	}
}

func TestGoogleLogin(t *testing.T) {
	ts := newTestServer(t)

	if w := postJSON(ts, "/api/auth/google", `{"idToken":"bad"}`); w.Code != http.StatusUnauthorized {
		t.Errorf("invalid token status = %d, want 401", w.Code)
	}

	ts.google.err = auth.ErrGoogleNotConfigured
	if w := postJSON(ts, "/api/auth/google", `{"idToken":"any"}`); w.Code != http.StatusServiceUnavailable {
		t.Errorf("unconfigured status = %d, want 503", w.Code)
	}

	ts.google.err = nil
	ts.google.info = &auth.GoogleUserInfo{GoogleID: "g-1", Email: "jane@example.com", Name: "Jane"}

	// existing email account gets linked, not replaced
	postJSON(ts, "/api/auth/register", `{"email":"jane@example.com","password":"secret123","name":"Jane"}`)
	w := postJSON(ts, "/api/auth/google", `{"idToken":"good"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("google status = %d (%s)", w.Code, w.Body.String())
	}
	stored := ts.users.users["jane@example.com"]
	if stored.GoogleID != "g-1" || stored.Provider != models.ProviderEmail {
		t.Errorf("stored user = %+v", stored)
	}
	if w := postJSON(ts, "/api/auth/login", `{"email":"jane@example.com","password":"secret123"}`); w.Code != http.StatusOK {
		t.Errorf("password login after linking = %d", w.Code)
	}

	ts.google.info = &auth.GoogleUserInfo{GoogleID: "g-2", Email: "new@example.com", Name: "New"}
	w = postJSON(ts, "/api/auth/google", `{"idToken":"good"}`)
	if resp := decodeAuth(t, w); resp.User == nil || resp.User.Provider != models.ProviderGoogle {
		t.Errorf("new google user = %+v", resp.User)
	}
}
