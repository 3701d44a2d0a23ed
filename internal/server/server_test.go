package server

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/raymondkneipp/cash-money/internal/calculation"
	"github.com/raymondkneipp/cash-money/internal/domain"
)

func doRequest(t *testing.T, method, path, body string) *fasthttp.RequestCtx {
	t.Helper()
	s := New(calculation.NewEngine(), nil)
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(path)
	if body != "" {
		ctx.Request.SetBodyString(body)
	}
	s.Handler(ctx)
	return ctx
}

func TestHealthz(t *testing.T) {
	ctx := doRequest(t, fasthttp.MethodGet, "/healthz", "")
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
}

func TestUnknownPath(t *testing.T) {
	ctx := doRequest(t, fasthttp.MethodGet, "/nope", "")
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
}

func TestProjectionRequiresPost(t *testing.T) {
	ctx := doRequest(t, fasthttp.MethodGet, "/v1/projection", "")
	assert.Equal(t, fasthttp.StatusMethodNotAllowed, ctx.Response.StatusCode())
}

func TestProjectionBadBody(t *testing.T) {
	ctx := doRequest(t, fasthttp.MethodPost, "/v1/projection", "{not json")
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &errResp))
	assert.Equal(t, fasthttp.StatusBadRequest, errResp.Status)
}

func TestProjectionValidationFailure(t *testing.T) {
	// Age missing.
	ctx := doRequest(t, fasthttp.MethodPost, "/v1/projection", `{"name":"s"}`)
	assert.Equal(t, fasthttp.StatusUnprocessableEntity, ctx.Response.StatusCode())
}

func TestProjectionSuccess(t *testing.T) {
	body := `{
		"name": "baseline",
		"age": 30,
		"endAge": 35,
		"incomes": [{"id":1,"name":"salary","amount":"4000","frequency":"monthly"}],
		"expenses": [{"id":1,"name":"rent","amount":"1500","frequency":"monthly"}],
		"debts": [],
		"assets": [{"id":1,"name":"401k","principal":"15000","rate":"7","contribution":"400","contributionFrequency":"monthly"}]
	}`
	ctx := doRequest(t, fasthttp.MethodPost, "/v1/projection", body)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode(), string(ctx.Response.Body()))

	var report domain.ScenarioReport
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &report))
	assert.Equal(t, "baseline", report.ScenarioName)
	assert.Len(t, report.Projection, 6)
	assert.True(t, report.AnnualCashFlow.Equal(decimal.NewFromInt(30000)))
}
