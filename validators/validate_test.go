package validators

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"monetizr/errutil"
	"monetizr/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name   string          `json:"name" validate:"required,min=3"`
	Email  string          `json:"email" validate:"required,email"`
	Amount decimal.Decimal `json:"amount" validate:"required,min=100"`
	Link   string          `json:"link" validate:"omitempty,url"`
}

func (r *sampleRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func TestStructReportsMessagesByJSONName(t *testing.T) {
	err := Struct(&sampleRequest{
		Name:   "  ab  ",
		Email:  "not-an-email",
		Amount: decimal.NewFromInt(99),
		Link:   "nope",
	})

	base, ok := errutil.As(err)
	require.True(t, ok)
	require.Equal(t, errutil.StatusValidationFailed, base.Code)
	require.Equal(t, "name must be at least 3 characters long!", base.Details["name"])
	require.Equal(t, "Invalid email!", base.Details["email"])
	require.Equal(t, "amount must be at least 100!", base.Details["amount"])
	require.Equal(t, "Invalid URL!", base.Details["link"])
}

func TestStructRejectsBlankAfterNormalize(t *testing.T) {
	err := Struct(&sampleRequest{Name: "   ", Email: "a@b.co", Amount: decimal.NewFromInt(100)})

	base, ok := errutil.As(err)
	require.True(t, ok)
	require.Equal(t, "name is required!", base.Details["name"])
	require.Len(t, base.Details, 1)
}

func TestStructAcceptsValidRequest(t *testing.T) {
	require.NoError(t, Struct(&sampleRequest{
		Name:   "Alice",
		Email:  "alice@example.com",
		Amount: decimal.RequireFromString("100.50"),
		Link:   "https://example.com/brief.pdf",
	}))
}

func TestPageQueryDefaultsAndBounds(t *testing.T) {
	q := &PageQuery{}
	require.NoError(t, Struct(q))
	require.Equal(t, 1, q.Page)
	require.Equal(t, 20, q.Limit)

	require.Error(t, Struct(&PageQuery{Page: 1, Limit: 500}))
	require.Error(t, Struct(&PageQuery{Page: -1, Limit: 10}))
}

func TestBodyMiddleware(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
	app.Post("/sample", Body[sampleRequest](), func(c *fiber.Ctx) error {
		req, err := Validated[sampleRequest](c)
		if err != nil {
			return err
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "ok", req.Name)
	})

	send := func(body string) (int, map[string]interface{}) {
		req := httptest.NewRequest(http.MethodPost, "/sample", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		decoded := map[string]interface{}{}
		require.NoError(t, json.Unmarshal(raw, &decoded), string(raw))
		return resp.StatusCode, decoded
	}

	status, body := send(`{"name":"  Alice ","email":"alice@example.com","amount":150}`)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Alice", body["data"])

	status, body = send(`{"name":`)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "BAD_REQUEST", body["code"])

	status, body = send(`{"name":"Al","email":"alice@example.com","amount":150}`)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "VALIDATION_FAILED", body["code"])
	require.Contains(t, body["data"], "name")
}

func TestValidatedWithoutMiddleware(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
	app.Get("/", func(c *fiber.Ctx) error {
		_, err := Validated[sampleRequest](c)
		return err
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
