package notice

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func carry(t *testing.T, w *httptest.ResponseRecorder, path string) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range w.Result().Cookies() {
		if c.MaxAge >= 0 {
			r.AddCookie(c)
		}
	}
	return r
}

func TestSetAndPop(t *testing.T) {
	w := httptest.NewRecorder()
	Set(w, Success, "Welcome, User1!")

	r := carry(t, w, "/dashboard")
	w2 := httptest.NewRecorder()
	n := Pop(w2, r)
	if n == nil {
		t.Fatal("Pop() = nil, want the queued notice")
	}
	if n.Category != Success || n.Message != "Welcome, User1!" {
		t.Errorf("Pop() = %+v, want success/Welcome, User1!", n)
	}

	// the pop response must clear the cookie
	var cleared bool
	for _, c := range w2.Result().Cookies() {
		if c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("Pop() did not clear the notice cookie")
	}
}

func TestPop_None(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	if n := Pop(httptest.NewRecorder(), r); n != nil {
		t.Errorf("Pop() without cookie = %+v, want nil", n)
	}
}

func TestPop_UnknownCategory(t *testing.T) {
	w := httptest.NewRecorder()
	Set(w, "weird", "message")

	n := Pop(httptest.NewRecorder(), carry(t, w, "/"))
	if n == nil {
		t.Fatal("Pop() = nil, want a notice")
	}
	if n.Category != Error {
		t.Errorf("Pop() category = %q, want %q for unknown input", n.Category, Error)
	}
}
