package middleware

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/avolkou/crmdesk/internal/domain/errors"
	testhelpers "github.com/avolkou/crmdesk/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func runMiddleware(mw gin.HandlerFunc, req *http.Request, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	router := gin.New()
	router.Use(mw)
	if handler == nil {
		handler = func(c *gin.Context) { c.String(http.StatusOK, "ok") }
	}
	router.Handle(req.Method, req.URL.Path, handler)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthRequiredMissingToken(t *testing.T) {
	verifier := testhelpers.VerifierStub{
		VerifyFn: func(context.Context, string) error {
			t.Fatal("verifier must not run without a token")
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	resp := runMiddleware(AuthRequired(verifier), req, nil)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "no token provided") {
		t.Fatalf("unexpected body %q", resp.Body.String())
	}
}

func TestAuthRequiredNonBearerScheme(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	resp := runMiddleware(AuthRequired(testhelpers.VerifierStub{}), req, nil)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}
}

func TestAuthRequiredInvalidToken(t *testing.T) {
	verifier := testhelpers.VerifierStub{
		VerifyFn: func(context.Context, string) error { return domainErrors.ErrInvalidToken },
	}

	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	resp := runMiddleware(AuthRequired(verifier), req, nil)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", resp.Code)
	}
}

func TestAuthRequiredVerifierFault(t *testing.T) {
	verifier := testhelpers.VerifierStub{
		VerifyFn: func(context.Context, string) error { return errors.New("identity provider unreachable") },
	}

	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp := runMiddleware(AuthRequired(verifier), req, nil)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.Code)
	}
}

func TestAuthRequiredValidToken(t *testing.T) {
	var gotToken string
	verifier := testhelpers.VerifierStub{
		VerifyFn: func(_ context.Context, token string) error {
			gotToken = token
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	resp := runMiddleware(AuthRequired(verifier), req, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if gotToken != "good-token" {
		t.Fatalf("verifier saw %q, want good-token", gotToken)
	}
}

func TestAuthRequiredCaseInsensitiveScheme(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	req.Header.Set("Authorization", "BEARER token")
	resp := runMiddleware(AuthRequired(testhelpers.VerifierStub{}), req, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

func TestDecompressRequest(t *testing.T) {
	t.Run("plain body passes through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader("plain"))
		resp := runMiddleware(DecompressRequest(), req, func(c *gin.Context) {
			body, _ := io.ReadAll(c.Request.Body)
			c.String(http.StatusOK, string(body))
		})
		if resp.Code != http.StatusOK || resp.Body.String() != "plain" {
			t.Fatalf("unexpected response %d %q", resp.Code, resp.Body.String())
		}
	})

	t.Run("gzip body is inflated", func(t *testing.T) {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		zw.Write([]byte(`{"first_name":"Ada"}`))
		zw.Close()

		req := httptest.NewRequest(http.MethodPost, "/clients", &buf)
		req.Header.Set("Content-Encoding", "gzip")
		resp := runMiddleware(DecompressRequest(), req, func(c *gin.Context) {
			body, _ := io.ReadAll(c.Request.Body)
			if c.GetHeader("Content-Encoding") != "" {
				t.Fatal("encoding header must be dropped after inflation")
			}
			c.String(http.StatusOK, string(body))
		})
		if resp.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", resp.Code)
		}
		if resp.Body.String() != `{"first_name":"Ada"}` {
			t.Fatalf("unexpected body %q", resp.Body.String())
		}
	})

	t.Run("corrupt gzip body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader("not gzip"))
		req.Header.Set("Content-Encoding", "gzip")
		resp := runMiddleware(DecompressRequest(), req, nil)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", resp.Code)
		}
	})
}

func TestCORSWithoutOrigins(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	req.Header.Set("Origin", "https://app.example.com")
	resp := runMiddleware(CORS(nil), req, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no CORS headers, got %q", got)
	}
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	mw := CORS([]string{"https://app.example.com"})

	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	req.Header.Set("Origin", "https://app.example.com")
	resp := runMiddleware(mw, req, nil)
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Fatalf("allow-origin %q, want the configured origin", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/clients", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	resp = runMiddleware(mw, req, nil)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected status 403 for a foreign origin, got %d", resp.Code)
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	resp := runMiddleware(RequestLogger(logger), req, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	logged := buf.String()
	for _, want := range []string{`"method":"GET"`, `"path":"/ping"`, `"status":200`} {
		if !strings.Contains(logged, want) {
			t.Fatalf("log line %q missing %q", logged, want)
		}
	}
}
