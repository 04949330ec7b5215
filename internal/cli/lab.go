package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"energylab/internal/form"
	"energylab/internal/observability"
	"energylab/internal/runner"
)

// ErrRejected is returned when a calculator rejects its input. The rejection
// text has already been printed.
var ErrRejected = errors.New("input rejected")

// jsonOutcome is the --json output. Rejections carry Error and Kind.
type jsonOutcome struct {
	runner.Outcome
	Error string `json:"error,omitempty"`
	Kind  string `json:"kind,omitempty"`
}

// newLabCmd builds the command for one calculator. Every calculator field
// becomes a string flag; underscores in field names turn into dashes.
func newLabCmd(use, name string) *cobra.Command {
	calc, ok := runner.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("cli: calculator %q is not in the catalogue", name))
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: calc.Title,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLab(cmd, calc)
		},
	}

	for _, field := range calc.Fields {
		cmd.Flags().String(flagName(field), "", field)
	}

	return cmd
}

func newEmissionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emission",
		Short: "Particulate emissions per fuel",
	}

	cmd.AddCommand(
		newLabCmd("coal", runner.EmissionCoal),
		newLabCmd("fuel-oil", runner.EmissionFuelOil),
		newLabCmd("gas", runner.EmissionGas),
	)

	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List calculators and their fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
			if asJSON {
				return writeJSON(cmd, runner.Catalogue())
			}

			for _, c := range runner.Catalogue() {
				flags := make([]string, 0, len(c.Fields))
				for _, f := range c.Fields {
					flags = append(flags, "--"+flagName(f))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-18s %s\n%-18s %s\n", c.Name, c.Title, "", strings.Join(flags, " "))
			}
			return nil
		},
	}
}

// runLab passes only the flags actually given, so an omitted field reaches the
// calculator as missing rather than empty.
func runLab(cmd *cobra.Command, calc runner.Calculator) error {
	values := form.Values{}
	for _, field := range calc.Fields {
		flag := cmd.Flags().Lookup(flagName(field))
		if flag != nil && flag.Changed {
			values[field] = flag.Value.String()
		}
	}

	logger := observability.Logger.With(zap.String("calculator", calc.Name))
	logger.Debug("running calculator", zap.Int("fields", len(values)))

	outcome, err := runner.Run(calc.Name, values)
	asJSON, _ := cmd.Flags().GetBool("json")

	if err != nil {
		logger.Warn("calculation rejected", zap.String("kind", runner.Kind(err)), zap.Error(err))

		if asJSON {
			if werr := writeJSON(cmd, jsonOutcome{Outcome: outcome, Error: outcome.Text, Kind: runner.Kind(err)}); werr != nil {
				return werr
			}
		} else if outcome.Text != "" {
			fmt.Fprintln(cmd.OutOrStdout(), outcome.Text)
		}
		if runner.IsRejection(err) {
			return fmt.Errorf("%s: %w", runner.Kind(err), ErrRejected)
		}
		return err
	}

	logger.Debug("calculation completed", zap.Float64("headline", outcome.Headline))

	if asJSON {
		return writeJSON(cmd, jsonOutcome{Outcome: outcome})
	}

	fmt.Fprintln(cmd.OutOrStdout(), outcome.Text)
	if outcome.LossText != "" {
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), outcome.LossText)
	}
	return nil
}

func writeJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

func flagName(field string) string {
	return strings.ReplaceAll(field, "_", "-")
}
