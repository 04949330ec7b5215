package calculator

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"energylab/internal/observability"
	"energylab/internal/report"
	"energylab/internal/runner"
	"energylab/internal/testutil"
)

func TestMain(m *testing.M) {
	if err := InitMetrics(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newTestRouter() http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r)
	return r
}

type outcomeBody struct {
	Calculator string         `json:"calculator"`
	Result     map[string]any `json:"result"`
	Report     string         `json:"report"`
	LossReport string         `json:"loss_report"`
}

func TestLabEndpointsReturnReports(t *testing.T) {
	tests := []struct {
		path       string
		body       string
		calculator string
		report     string
	}{
		{
			path:       "/labs/solar-profit",
			body:       `{"power":"100","performance":5,"sunny_days":"300","tariff":"2","efficiency":"90"}`,
			calculator: runner.SolarProfit,
			report:     "Щорічний прибуток: 270000.00 грн",
		},
		{
			path:       "/labs/fault-current",
			body:       `{"voltage_fault":"10","impedance":"5","current_type":"singlePhase"}`,
			calculator: runner.FaultCurrent,
			report:     "Розрахунковий струм короткого замикання: 2000.00 А",
		},
		{
			path:       "/labs/emission/coal",
			body:       `{"mass":100}`,
			calculator: runner.EmissionCoal,
			report:     "Coal Emission Index: 149.978\nCoal Gross Solid Particles: 0.307",
		},
		{
			path:       "/labs/emission/mazut",
			body:       `{}`,
			calculator: runner.EmissionFuelOil,
			report:     "Fuel Oil Emission Index: 0.570\nFuel Oil Gross Solid Particles: 0.000",
		},
	}

	router := newTestRouter()

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := testutil.ExecuteRequest(testutil.NewJSONRequest(http.MethodPost, tt.path, tt.body), router)

			testutil.CheckResponseCode(t, http.StatusOK, w.Code)

			var body outcomeBody
			testutil.DecodeJSONBody(t, w.Body, &body)
			assert.Equal(t, tt.calculator, body.Calculator)
			assert.Equal(t, tt.report, body.Report)
			assert.NotEmpty(t, body.Result)
		})
	}
}

func TestLabEndpointAcceptsFormPost(t *testing.T) {
	form := url.Values{}
	form.Set("voltage_fault", "10")
	form.Set("impedance", "5")

	req := httptest.NewRequest(http.MethodPost, "/labs/fault-current", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := testutil.ExecuteRequest(req, newTestRouter())

	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var body outcomeBody
	testutil.DecodeJSONBody(t, w.Body, &body)
	assert.Equal(t, "Розрахунковий струм короткого замикання: 1154.70 А", body.Report)
	assert.Equal(t, "three-phase", body.Result["type"])
}

func TestLabEndpointRejections(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		body   string
		status int
		kind   string
		error  string
	}{
		{
			name:   "malformed body",
			path:   "/labs/solar-profit",
			body:   `{"power":`,
			status: http.StatusBadRequest,
			kind:   "malformed_body",
			error:  "invalid request body",
		},
		{
			name:   "invalid range",
			path:   "/labs/solar-profit",
			body:   `{"power":"-1","performance":"5","sunny_days":"300","tariff":"2","efficiency":"90"}`,
			status: http.StatusUnprocessableEntity,
			kind:   "invalid_range",
			error:  report.InvalidInput,
		},
		{
			name:   "missing fuel components",
			path:   "/labs/fuel-composition",
			body:   `{"carbon":"60"}`,
			status: http.StatusUnprocessableEntity,
			kind:   "missing_input",
			error:  report.MissingComponents,
		},
		{
			name:   "missing reliability input",
			path:   "/labs/reliability",
			body:   `{}`,
			status: http.StatusUnprocessableEntity,
			kind:   "missing_input",
			error:  report.InvalidInput,
		},
		{
			name:   "unknown fuel",
			path:   "/labs/emission/peat",
			body:   `{"mass":"1"}`,
			status: http.StatusNotFound,
			kind:   "unknown_fuel",
			error:  `unknown fuel "peat"`,
		},
	}

	router := newTestRouter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body))
			w := testutil.ExecuteRequest(req, router)

			testutil.CheckResponseCode(t, tt.status, w.Code)

			var body map[string]string
			testutil.DecodeJSONBody(t, w.Body, &body)
			assert.Equal(t, tt.kind, body["kind"])
			assert.Equal(t, tt.error, body["error"])
		})
	}
}

func TestRejectionIsLoggedAtWarn(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	old := observability.Logger
	observability.Logger = zap.New(core)
	t.Cleanup(func() { observability.Logger = old })

	req := httptest.NewRequest(http.MethodPost, "/labs/fault-current", strings.NewReader(`{"voltage_fault":"0","impedance":"5"}`))
	w := testutil.ExecuteRequest(req, newTestRouter())
	testutil.CheckResponseCode(t, http.StatusUnprocessableEntity, w.Code)

	entries := logs.FilterMessage("request rejected").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zap.WarnLevel, entries[0].Level)
	assert.Equal(t, runner.FaultCurrent, entries[0].ContextMap()["calculator"])
}

func TestCatalogue(t *testing.T) {
	w := testutil.ExecuteRequest(httptest.NewRequest(http.MethodGet, "/labs", nil), newTestRouter())
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var body struct {
		Calculators []struct {
			Name   string   `json:"name"`
			Fields []string `json:"fields"`
		} `json:"calculators"`
	}
	testutil.DecodeJSONBody(t, w.Body, &body)

	names := make([]string, 0, len(body.Calculators))
	for _, c := range body.Calculators {
		names = append(names, c.Name)
		assert.NotEmpty(t, c.Fields, c.Name)
	}
	assert.Equal(t, runner.Names(), names)
}

func TestBatch(t *testing.T) {
	body := `{"steps":[
		{"calculator":"solar-profit","values":{"power":"100","performance":"5","sunny_days":"300","tariff":"2","efficiency":"90"}},
		{"calculator":"fault-current","values":{"voltage_fault":"0","impedance":"5"}},
		{"calculator":"emission-gas","values":{"mass":"1"}}
	]}`

	req := httptest.NewRequest(http.MethodPost, "/labs/batch", strings.NewReader(body))
	w := testutil.ExecuteRequest(req, newTestRouter())
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var resp struct {
		Steps []struct {
			Calculator string `json:"calculator"`
			Report     string `json:"report"`
			Error      string `json:"error"`
			Kind       string `json:"kind"`
		} `json:"steps"`
		Rejected int `json:"rejected"`
	}
	testutil.DecodeJSONBody(t, w.Body, &resp)

	require.Len(t, resp.Steps, 3)
	assert.Equal(t, 1, resp.Rejected)

	assert.Equal(t, "Щорічний прибуток: 270000.00 грн", resp.Steps[0].Report)
	assert.Empty(t, resp.Steps[0].Kind)

	assert.Equal(t, runner.FaultCurrent, resp.Steps[1].Calculator)
	assert.Equal(t, "invalid_range", resp.Steps[1].Kind)
	assert.Equal(t, report.InvalidInput, resp.Steps[1].Error)

	assert.Equal(t, runner.EmissionGas, resp.Steps[2].Calculator)
	assert.Empty(t, resp.Steps[2].Error)
}

func TestBatchAbortsOnUnknownCalculator(t *testing.T) {
	tests := []struct {
		name string
		body string
		kind string
	}{
		{
			name: "unknown calculator",
			body: `{"steps":[{"calculator":"solar-profit","values":{}},{"calculator":"wind","values":{}}]}`,
			kind: "unknown_calculator",
		},
		{
			name: "empty",
			body: `{"steps":[]}`,
			kind: "empty_batch",
		},
		{
			name: "malformed",
			body: `[`,
			kind: "malformed_body",
		},
	}

	router := newTestRouter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/labs/batch", strings.NewReader(tt.body))
			w := testutil.ExecuteRequest(req, router)
			testutil.CheckResponseCode(t, http.StatusBadRequest, w.Code)

			var body map[string]string
			testutil.DecodeJSONBody(t, w.Body, &body)
			assert.Equal(t, tt.kind, body["kind"])
		})
	}
}

const zeroFailureRateReliability = `{"failure_rate_single":"0","repair_time_single":"10",` +
	`"failure_rate_double":"0.02","repair_time_double":"5","power_loss":"100","outage_cost":"3"}`

func TestReliabilityWithZeroFailureRateEncodesInfinity(t *testing.T) {
	w := testutil.ExecuteRequest(
		testutil.NewJSONRequest(http.MethodPost, "/labs/reliability", zeroFailureRateReliability),
		newTestRouter(),
	)

	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var body outcomeBody
	testutil.DecodeJSONBody(t, w.Body, &body)

	single, ok := body.Result["single"].(map[string]any)
	require.True(t, ok, "result.single: %#v", body.Result["single"])
	assert.Equal(t, "Infinity", single["reliability"])
	assert.Equal(t, 3000.0, single["loss"])
	assert.Contains(t, body.Report, "Надійність одноколової системи: Infinity (безвідмовні години)")
	assert.Contains(t, body.LossReport, "Збитки одноколової системи: 3000.00 грн")
}

func TestBatchWithInfiniteResult(t *testing.T) {
	body := `{"steps":[{"calculator":"reliability","values":` + zeroFailureRateReliability + `}]}`

	w := testutil.ExecuteRequest(testutil.NewJSONRequest(http.MethodPost, "/labs/batch", body), newTestRouter())
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var resp struct {
		Steps []struct {
			Result struct {
				Single map[string]any `json:"single"`
			} `json:"result"`
		} `json:"steps"`
	}
	testutil.DecodeJSONBody(t, w.Body, &resp)

	require.Len(t, resp.Steps, 1)
	assert.Equal(t, "Infinity", resp.Steps[0].Result.Single["reliability"])
}
