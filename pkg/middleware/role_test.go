package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/adityapratama/gymflow/pkg/constant"
	"github.com/adityapratama/gymflow/pkg/jwt"
)

// adminGate chains the JWT middleware and the admin role gate in front of a
// handler that records whether it ran and what identity it saw.
func adminGate(jwtService *jwt.Service, reached *bool, seenUser, seenRole *string) echo.HandlerFunc {
	handler := func(c echo.Context) error {
		*reached = true
		if v, ok := c.Get(string(constant.CtxKeyUserExtID)).(string); ok {
			*seenUser = v
		}
		if v, ok := c.Get(string(constant.CtxKeyUserRole)).(string); ok {
			*seenRole = v
		}
		return c.NoContent(http.StatusOK)
	}
	return jwtService.Middleware()(RequireRole(constant.RoleAdmin)(handler))
}

func doRequest(t *testing.T, h echo.HandlerFunc, authorization string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	if err := h(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestAuthGate(t *testing.T) {
	jwtService := jwt.NewService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)

	var reached bool
	var seenUser, seenRole string
	gate := adminGate(jwtService, &reached, &seenUser, &seenRole)

	t.Run("missing header", func(t *testing.T) {
		reached = false
		rec := doRequest(t, gate, "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		if reached {
			t.Fatal("handler ran without a token")
		}
		body := decodeEnvelope(t, rec)
		if body["message"] != "Unauthorized access." {
			t.Fatalf("unexpected message %v", body["message"])
		}
	})

	t.Run("malformed scheme", func(t *testing.T) {
		reached = false
		rec := doRequest(t, gate, "Token abc")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		reached = false
		rec := doRequest(t, gate, "Bearer not-a-token")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		if reached {
			t.Fatal("handler ran with an invalid token")
		}
	})

	t.Run("valid token wrong role", func(t *testing.T) {
		reached = false
		token, err := jwtService.GenerateAccessToken("user_t1", constant.RoleTrainer)
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}

		rec := doRequest(t, gate, "Bearer "+token)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
		if reached {
			t.Fatal("handler ran for a non-admin")
		}
		body := decodeEnvelope(t, rec)
		if body["errorDetails"] != "You must be a(n) admin to perform this action." {
			t.Fatalf("unexpected detail %v", body["errorDetails"])
		}
	})

	t.Run("admin token passes", func(t *testing.T) {
		reached = false
		token, err := jwtService.GenerateAccessToken("user_a1", constant.RoleAdmin)
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}

		rec := doRequest(t, gate, "Bearer "+token)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !reached {
			t.Fatal("handler never ran")
		}
		if seenUser != "user_a1" || seenRole != constant.RoleAdmin {
			t.Fatalf("context keys not set: user=%q role=%q", seenUser, seenRole)
		}
	})
}
