package ez

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"employee-api/internal/domain"
)

func init() { gin.SetMode(gin.TestMode) }

type echoIn struct {
	Name *string `json:"name" binding:"required"`
	Age  int     `json:"age"`
}

func newEngine() *gin.Engine {
	r := gin.New()
	Register(r, Action[echoIn, gin.H]{
		Method: http.MethodPost,
		Path:   "/echo",
		Binder: BindJSON,
		Status: http.StatusCreated,
		Handler: func(_ *gin.Context, in *echoIn) (gin.H, error) {
			if *in.Name == "missing" {
				return nil, domain.ErrEmployeeNotFound
			}
			if *in.Name == "boom" {
				return nil, errors.New("boom")
			}
			return gin.H{"name": *in.Name}, nil
		},
	})
	Register(r, Action[struct{}, struct{}]{
		Method: http.MethodDelete,
		Path:   "/things/:id/",
		Binder: BindNone,
		Status: http.StatusNoContent,
		Handler: func(c *gin.Context, _ *struct{}) (struct{}, error) {
			_, err := ParamID(c, domain.ErrEmployeeNotFound)
			return struct{}{}, err
		},
	})
	return r
}

func post(r http.Handler, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegister_JSON(t *testing.T) {
	r := newEngine()
	cases := []struct {
		body   string
		status int
		detail string
	}{
		{`{"name":"x"}`, http.StatusCreated, ""},
		{`{"name":`, http.StatusBadRequest, "Invalid JSON body"},
		{``, http.StatusBadRequest, "Invalid JSON body"},
		{`{"age":1}`, http.StatusBadRequest, "Missing or invalid field: name"},
		{`{"name":"x","age":"old"}`, http.StatusBadRequest, "Invalid type for field: age"},
		{`{"name":"missing"}`, http.StatusNotFound, "Employee not found"},
		{`{"name":"boom"}`, http.StatusInternalServerError, "Internal Server Error"},
	}
	for _, tc := range cases {
		w := post(r, tc.body)
		if w.Code != tc.status {
			t.Errorf("body %q: status %d, want %d (%s)", tc.body, w.Code, tc.status, w.Body.String())
			continue
		}
		if tc.detail != "" && !strings.Contains(w.Body.String(), `"detail":"`+tc.detail+`"`) {
			t.Errorf("body %q: expected detail %q, got %s", tc.body, tc.detail, w.Body.String())
		}
	}
}

func TestRegister_NoContentAndParamID(t *testing.T) {
	r := newEngine()
	for path, want := range map[string]int{
		"/things/7/":   http.StatusNoContent,
		"/things/abc/": http.StatusNotFound,
		"/things/0/":   http.StatusNotFound,
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, path, nil))
		if w.Code != want {
			t.Errorf("%s: status %d, want %d", path, w.Code, want)
		}
		if want == http.StatusNoContent && w.Body.Len() != 0 {
			t.Errorf("204 must have empty body, got %q", w.Body.String())
		}
	}
}

func TestAtoiDefault(t *testing.T) {
	for in, want := range map[string]int{"": 1, "abc": 1, "0": 1, "-3": 1, "2": 2} {
		if got := AtoiDefault(in, 1); got != want {
			t.Errorf("AtoiDefault(%q) = %d, want %d", in, got, want)
		}
	}
}
