// Package cli implements the labcalc command line front-end.
package cli

import (
	"github.com/spf13/cobra"

	"energylab/internal/observability"
	"energylab/internal/runner"
)

// NewRootCmd creates the root labcalc command with one subcommand per lab.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "labcalc",
		Short:         "Energy lab calculators",
		Long:          "labcalc runs the energy lab calculators on raw field text and prints the same report the lab screens show.",
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, _ := cmd.Flags().GetString("log-level")
			return observability.InitLogger(level, false)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			observability.SyncLogger()
		},
	}

	cmd.PersistentFlags().String("log-level", "warn", "log level written to stderr (debug, info, warn, error)")
	cmd.PersistentFlags().Bool("json", false, "print the structured outcome as JSON")

	cmd.AddCommand(
		newLabCmd("fuel", runner.FuelComposition),
		newLabCmd("fuel-oil", runner.FuelOil),
		newEmissionCmd(),
		newLabCmd("solar", runner.SolarProfit),
		newLabCmd("fault", runner.FaultCurrent),
		newLabCmd("reliability", runner.Reliability),
		newLabCmd("load", runner.ElectricalLoad),
		newListCmd(),
	)

	return cmd
}

const rootCmdExample = `  # Fuel composition from working-mass percentages
  labcalc fuel --hydrogen 1.9 --carbon 21.1 --sulfur 2.6 --nitrogen 0.2 --oxygen 7.1 --moisture 53 --ash 14.1

  # Particulate emissions of 1,096,363 t of coal
  labcalc emission coal --mass 1096363

  # Short-circuit current, single phase, as JSON
  labcalc fault --voltage-fault 10 --impedance 5 --current-type singlePhase --json

  # List calculators and their fields
  labcalc list`
