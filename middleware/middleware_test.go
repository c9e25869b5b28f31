package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"monetizr/config"
	"monetizr/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func init() {
	zap.ReplaceGlobals(zap.NewNop())
}

func useTestConfig(t *testing.T) {
	t.Helper()
	previous := config.AppConfig
	config.AppConfig = &config.Config{JWTKey: testSecret, JWTTTL: time.Hour}
	t.Cleanup(func() { config.AppConfig = previous })
}

func newApp(handlers ...fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/protected", handlers...)
	return app
}

func decode(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	body := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(raw, &body), string(raw))
	return body
}

func mustIssue(t *testing.T, role models.Role) string {
	t.Helper()
	token, err := IssueToken([]byte(testSecret), "user-1", "user@example.com", role, time.Hour)
	require.NoError(t, err)
	return token
}

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	token := mustIssue(t, models.RoleCreator)

	claims, err := VerifyToken([]byte(testSecret), token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, "user@example.com", claims.Email)
	require.Equal(t, models.RoleCreator, claims.Role)
	require.NotNil(t, claims.ExpiresAt)
}

func TestVerifyFailsOnceTTLElapses(t *testing.T) {
	token := mustIssue(t, models.RolePromoter)

	original := jwt.TimeFunc
	t.Cleanup(func() { jwt.TimeFunc = original })

	jwt.TimeFunc = func() time.Time { return time.Now().Add(59 * time.Minute) }
	_, err := VerifyToken([]byte(testSecret), token)
	require.NoError(t, err)

	jwt.TimeFunc = func() time.Time { return time.Now().Add(61 * time.Minute) }
	_, err = VerifyToken([]byte(testSecret), token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyFailsClosed(t *testing.T) {
	valid := mustIssue(t, models.RoleCreator)
	parts := strings.Split(valid, ".")
	flipped := "A"
	if strings.HasPrefix(parts[2], "A") {
		flipped = "B"
	}
	tampered := parts[0] + "." + parts[1] + "." + flipped + parts[2][1:]

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: "user-1", Email: "user@example.com", Role: models.RoleCreator,
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		UserID: "user-1", Role: models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	unknownRole, err := IssueToken([]byte(testSecret), "user-1", "user@example.com", models.Role("root"), time.Hour)
	require.NoError(t, err)

	cases := map[string]struct {
		secret string
		token  string
	}{
		"wrong secret": {secret: "other-secret", token: valid},
		"tampered":     {secret: testSecret, token: tampered},
		"malformed":    {secret: testSecret, token: "not-a-token"},
		"no expiry":    {secret: testSecret, token: noExpiry},
		"alg none":     {secret: testSecret, token: unsigned},
		"unknown role": {secret: testSecret, token: unknownRole},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			claims, err := VerifyToken([]byte(tc.secret), tc.token)
			require.ErrorIs(t, err, ErrInvalidToken)
			require.Nil(t, claims)
		})
	}
}

func TestJWTMiddlewareTransports(t *testing.T) {
	useTestConfig(t)

	app := newApp(JWTMiddleware, func(c *fiber.Ctx) error {
		claims, ok := CurrentClaims(c)
		if !ok {
			return c.SendStatus(fiber.StatusTeapot)
		}
		return JsonResponse(c, fiber.StatusOK, true, "ok", claims.Role)
	})
	token := mustIssue(t, models.RolePromoter)

	t.Run("bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "promoter", decode(t, resp)["data"])
	})

	t.Run("session cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: token})
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestJWTMiddlewareRejectsWithoutCallingHandler(t *testing.T) {
	useTestConfig(t)

	called := false
	app := newApp(JWTMiddleware, func(c *fiber.Ctx) error {
		called = true
		return c.SendStatus(fiber.StatusOK)
	})

	cases := map[string]struct {
		header string
		code   string
	}{
		"missing":      {header: "", code: "TOKEN_MISSING"},
		"empty bearer": {header: "Bearer ", code: "TOKEN_MISSING"},
		"bare scheme":  {header: "bearer", code: "TOKEN_MISSING"},
		"wrong scheme": {header: "Basic abc", code: "TOKEN_INVALID"},
		"garbage":      {header: "Bearer garbage", code: "TOKEN_INVALID"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

			body := decode(t, resp)
			require.Equal(t, false, body["status"])
			require.Equal(t, tc.code, body["code"])
		})
	}
	require.False(t, called)
}

func TestJWTMiddlewareSchemeIsCaseInsensitive(t *testing.T) {
	useTestConfig(t)

	app := newApp(JWTMiddleware, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	token := mustIssue(t, models.RolePromoter)

	for _, scheme := range []string{"Bearer", "bearer", "BEARER"} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", scheme+" "+token)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, scheme)
	}
}

func TestRequireRolesChecksAuthenticationFirst(t *testing.T) {
	useTestConfig(t)

	app := newApp(JWTMiddleware, RequireRoles(models.RoleCreator, models.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	send := func(token string) int {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		return resp.StatusCode
	}

	require.Equal(t, http.StatusUnauthorized, send(""))
	require.Equal(t, http.StatusForbidden, send(mustIssue(t, models.RolePromoter)))
	require.Equal(t, http.StatusOK, send(mustIssue(t, models.RoleCreator)))
	require.Equal(t, http.StatusOK, send(mustIssue(t, models.RoleAdmin)))
}

func TestRequireRolesWithoutJWTMiddlewareIsUnauthorized(t *testing.T) {
	app := newApp(RequireRoles(models.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestErrorHandlerHidesInternalErrors(t *testing.T) {
	app := newApp(func(c *fiber.Ctx) error {
		return errors.New("pq: connection refused to 10.0.0.3")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body := decode(t, resp)
	require.Equal(t, "INTERNAL", body["code"])
	require.Equal(t, "Internal Server Error", body["message"])
}

func TestErrorHandlerMapsFiberErrors(t *testing.T) {
	app := newApp(func(c *fiber.Ctx) error { return nil })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/nowhere", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "NOT_FOUND", decode(t, resp)["code"])
}
