package campaignValidator

import (
	"testing"
	"time"

	"monetizr/errutil"
	"monetizr/models"
	"monetizr/validators"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func validCampaign() *CreateCampaignRequest {
	return &CreateCampaignRequest{
		Title:        "Skincare launch",
		Description:  "Promote our new skincare line",
		Budget:       decimal.NewFromInt(500000),
		PricePerView: decimal.NewFromInt(150),
		MaterialURL:  "https://cdn.example.com/brief.pdf",
	}
}

func details(t *testing.T, err error) map[string]string {
	t.Helper()
	base, ok := errutil.As(err)
	require.True(t, ok)
	return base.Details
}

func TestCreateCampaignAcceptsMinimums(t *testing.T) {
	req := validCampaign()
	req.Budget = decimal.NewFromInt(10000)
	req.PricePerView = decimal.NewFromInt(100)
	req.MaterialURL = ""

	require.NoError(t, validators.Struct(req))
}

func TestCreateCampaignRejectsBelowMinimums(t *testing.T) {
	req := validCampaign()
	req.Budget = decimal.NewFromInt(9999)
	req.PricePerView = decimal.RequireFromString("99.99")
	req.Description = "too short"
	req.MaterialURL = "not a url"

	got := details(t, validators.Struct(req))
	require.Contains(t, got, "budget")
	require.Contains(t, got, "price_per_view")
	require.Contains(t, got, "description")
	require.Contains(t, got, "material_url")
}

func TestCreateCampaignRequiresMoney(t *testing.T) {
	req := validCampaign()
	req.Budget = decimal.Decimal{}
	req.PricePerView = decimal.NewFromInt(-5)

	got := details(t, validators.Struct(req))
	require.Equal(t, "budget is required!", got["budget"])
	require.Contains(t, got, "price_per_view")
}

func TestCreateCampaignExpiryMustBeFuture(t *testing.T) {
	req := validCampaign()
	past := time.Now().Add(-time.Minute)
	req.ExpiresAt = &past
	require.Contains(t, details(t, validators.Struct(req)), "expires_at")

	future := time.Now().Add(24 * time.Hour)
	req.ExpiresAt = &future
	require.NoError(t, validators.Struct(req))
}

func TestCreateCampaignStoresExpiryInUTC(t *testing.T) {
	jakarta := time.FixedZone("UTC+7", 7*60*60)
	expires := time.Now().Add(48 * time.Hour).In(jakarta)
	req := validCampaign()
	req.ExpiresAt = &expires

	require.NoError(t, validators.Struct(req))
	require.Equal(t, time.UTC, req.ExpiresAt.Location())
	require.True(t, req.ExpiresAt.Equal(expires))
}

func TestCreateCampaignRejectsAmountsAboveColumnPrecision(t *testing.T) {
	req := validCampaign()
	req.Budget = decimal.RequireFromString("1000000000000000000")
	req.PricePerView = models.MaxMoney.Add(decimal.RequireFromString("0.01"))

	got := details(t, validators.Struct(req))
	require.Contains(t, got, "budget")
	require.Contains(t, got, "price_per_view")

	req.Budget = models.MaxMoney
	req.PricePerView = models.MaxMoney
	require.NoError(t, validators.Struct(req))
}

func TestUpdateStatusAcceptsKnownStatuses(t *testing.T) {
	for _, status := range []string{"draft", "active", "paused", "completed"} {
		require.NoError(t, validators.Struct(&UpdateStatusRequest{Status: models.CampaignStatus(status)}))
	}
	require.Error(t, validators.Struct(&UpdateStatusRequest{Status: models.CampaignStatus("archived")}))
	require.Error(t, validators.Struct(&UpdateStatusRequest{}))
}
