// ABOUTME: Tests for the users service API client
// ABOUTME: Uses httptest to mock backend responses

package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

type item struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestDo_BuildsURLAndHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/3" {
			t.Errorf("expected path /users/3, got %s", r.URL.Path)
		}
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT, got %s", r.Method)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("expected JSON content type, got %q", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer abc" {
			t.Errorf("expected bearer header, got %q", got)
		}
		var body item
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("expected JSON body: %v", err)
		}
		if body.Name != "Ann" {
			t.Errorf("expected name Ann in body, got %q", body.Name)
		}
		json.NewEncoder(w).Encode(item{ID: 3, Name: "Ann"})
	}))
	defer server.Close()

	c := New(server.URL+"/", WithTokenSource(staticToken("abc")))
	got, err := Request[item](context.Background(), c, http.MethodPut, "/users/3", item{Name: "Ann"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != 3 || got.Name != "Ann" {
		t.Errorf("unexpected result: %+v", got)
	}
}

func TestDo_NoTokenNoAuthorizationHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Header["Authorization"]; ok {
			t.Error("expected no Authorization header without a token")
		}
		if r.ContentLength > 0 {
			t.Error("expected no body for nil payload")
		}
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	for _, c := range []*Client{New(server.URL), New(server.URL, WithTokenSource(staticToken("")))} {
		if _, err := Request[[]item](context.Background(), c, http.MethodGet, "/users", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
}

func TestDo_EmptyBodyReturnsZeroValue(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	got, err := Request[*item](context.Background(), New(server.URL), http.MethodDelete, "/users/1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil result for empty body, got %+v", got)
	}
}

func TestDo_ErrorMessageSelection(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected string
	}{
		{"error field", http.StatusBadRequest, `{"error":"email taken","message":"ignored"}`, "email taken"},
		{"message field", http.StatusUnauthorized, `{"message":"Invalid credentials"}`, "Invalid credentials"},
		{"empty error falls through", http.StatusUnauthorized, `{"error":"","message":"bad password"}`, "bad password"},
		{"status text", http.StatusNotFound, `{}`, "Not Found"},
		{"empty body status text", http.StatusInternalServerError, ``, "Internal Server Error"},
		{"array body status text", http.StatusConflict, `[1,2]`, "Conflict"},
		{"unknown status generic", 599, ``, DefaultErrorMessage},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				io.WriteString(w, tc.body)
			}))
			defer server.Close()

			err := New(server.URL).Do(context.Background(), http.MethodGet, "/x", nil, nil)
			var reqErr *RequestError
			if !errors.As(err, &reqErr) {
				t.Fatalf("expected *RequestError, got %T (%v)", err, err)
			}
			if reqErr.Message != tc.expected {
				t.Errorf("expected message %q, got %q", tc.expected, reqErr.Message)
			}
			if reqErr.Status != tc.status {
				t.Errorf("expected status %d, got %d", tc.status, reqErr.Status)
			}
		})
	}
}

func TestDo_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "<html>oops</html>")
	}))
	defer server.Close()

	_, err := Request[item](context.Background(), New(server.URL), http.MethodGet, "/users/1", nil)
	var malformed *MalformedResponseError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected *MalformedResponseError, got %T (%v)", err, err)
	}
}

func TestDo_ShapeMismatchIsMalformed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"id":"not-a-number"}`)
	}))
	defer server.Close()

	_, err := Request[item](context.Background(), New(server.URL), http.MethodGet, "/users/1", nil)
	var malformed *MalformedResponseError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected *MalformedResponseError, got %T (%v)", err, err)
	}
}

func TestDo_ConnectionError(t *testing.T) {
	c := New("http://localhost:99999")
	err := c.Do(context.Background(), http.MethodGet, "/users", nil, nil)
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected *NetworkError, got %T (%v)", err, err)
	}
}

func TestDo_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	err := New(server.URL).Do(ctx, http.MethodGet, "/users", nil, nil)
	if err == nil || err.Error() != "request canceled" {
		t.Errorf("expected request canceled error, got %v", err)
	}
}

func TestDo_ContextTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := New(server.URL).Do(ctx, http.MethodGet, "/users", nil, nil)
	if err == nil || err.Error() != "request timed out" {
		t.Errorf("expected request timed out error, got %v", err)
	}
}

func TestRequestError_Helpers(t *testing.T) {
	if !(&RequestError{Status: http.StatusNotFound}).NotFound() {
		t.Error("expected NotFound for 404")
	}
	if !(&RequestError{Status: http.StatusForbidden}).Unauthorized() {
		t.Error("expected Unauthorized for 403")
	}
	if (&RequestError{Status: http.StatusBadRequest}).Unauthorized() {
		t.Error("expected 400 not to be Unauthorized")
	}
}
