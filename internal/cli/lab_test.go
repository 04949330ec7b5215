package cli

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"energylab/internal/observability"
	"energylab/internal/report"
	"energylab/internal/runner"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	old := observability.Logger
	t.Cleanup(func() { observability.Logger = old })

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestLabCommandsPrintReports(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "solar",
			args: []string{"solar", "--power", "100", "--performance", "5", "--sunny-days", "300", "--tariff", "2", "--efficiency", "90"},
			want: "Щорічний прибуток: 270000.00 грн\n",
		},
		{
			name: "fault single phase",
			args: []string{"fault", "--voltage-fault", "10", "--impedance", "5", "--current-type", "singlePhase"},
			want: "Розрахунковий струм короткого замикання: 2000.00 А\n",
		},
		{
			name: "emission coal",
			args: []string{"emission", "coal", "--mass", "100"},
			want: "Coal Emission Index: 149.978\nCoal Gross Solid Particles: 0.307\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestLabCommandRejection(t *testing.T) {
	out, err := execute(t, "fuel", "--carbon", "60")

	require.ErrorIs(t, err, ErrRejected)
	assert.Contains(t, err.Error(), "missing_input")
	assert.Equal(t, report.MissingComponents+"\n", out)
}

func TestLabCommandOmittedFlagsAreMissing(t *testing.T) {
	// An explicit empty flag and an omitted one both leave the field missing.
	_, err := execute(t, "reliability", "--failure-rate-single", "")
	require.ErrorIs(t, err, ErrRejected)
}

func TestLabCommandJSON(t *testing.T) {
	out, err := execute(t, "fault", "--voltage-fault", "10", "--impedance", "5", "--json")
	require.NoError(t, err)

	var got struct {
		Calculator string `json:"calculator"`
		Report     string `json:"report"`
		Result     struct {
			Type    string  `json:"type"`
			Current float64 `json:"current"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Equal(t, runner.FaultCurrent, got.Calculator)
	assert.Equal(t, "three-phase", got.Result.Type)
	assert.InDelta(t, 1154.7005, got.Result.Current, 1e-3)
}

func TestLabCommandJSONRejection(t *testing.T) {
	out, err := execute(t, "solar", "--power", "0", "--json")
	require.ErrorIs(t, err, ErrRejected)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "invalid_range", got["kind"])
	assert.Equal(t, report.InvalidInput, got["error"])
}

func TestLabCommandRejectsBadLogLevel(t *testing.T) {
	_, err := execute(t, "list", "--log-level", "chatty")
	require.Error(t, err)
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)

	for _, name := range runner.Names() {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "--sunny-days")
}

func TestEveryCalculatorHasACommand(t *testing.T) {
	root := NewRootCmd()

	covered := map[string]bool{}
	var walk func(cmds []*cobra.Command)
	walk = func(cmds []*cobra.Command) {
		for _, c := range cmds {
			if c.RunE != nil && c.Name() != "list" {
				covered[c.Short] = true
			}
			walk(c.Commands())
		}
	}
	walk(root.Commands())

	for _, c := range runner.Catalogue() {
		assert.True(t, covered[c.Title], "no command for %s", c.Name)
	}
}

func TestReliabilityJSONWithZeroFailureRate(t *testing.T) {
	out, err := execute(t, "reliability",
		"--failure-rate-single", "0", "--repair-time-single", "10",
		"--failure-rate-double", "0.02", "--repair-time-double", "5",
		"--power-loss", "100", "--outage-cost", "3", "--json")
	require.NoError(t, err)

	var got struct {
		Result struct {
			Single map[string]any `json:"single"`
		} `json:"result"`
		LossReport string `json:"loss_report"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Equal(t, "Infinity", got.Result.Single["reliability"])
	assert.Contains(t, got.LossReport, "3000.00")
}
