// Package cmd wires each vector-generating action to a CLI subcommand. On
// success exactly one line is written to stdout: the hex encoding of the
// action's output tuple. Every failure is terminal and exits non-zero.
package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/consensys/bn254-difftest/debug"
	"github.com/consensys/bn254-difftest/logger"
)

var (
	fPrefix bool
	fQuiet  bool
)

var rootCmd = &cobra.Command{
	Use:           "bn254-difftest",
	Short:         "emit ABI-encoded BN254 test vectors for differential testing",
	Long:          "bn254-difftest prints deterministic, ABI-encoded BN254 curve-operation vectors\nso a contract-side implementation can be cross-checked against gnark-crypto.",
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if fQuiet {
			logger.Disable()
		}
	},
}

var testOnlyCmd = &cobra.Command{
	Use:   "test-only",
	Short: "diagnostic no-op",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.ErrOrStderr(), "test only")
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&fPrefix, "prefix", false, "prefix the output with 0x")
	rootCmd.PersistentFlags().BoolVar(&fQuiet, "quiet", false, "suppress diagnostics on stderr")
	rootCmd.AddCommand(testOnlyCmd)
}

// Execute runs the selected action and terminates the process on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log := logger.Logger()
		ev := log.Error().Err(err)
		if debug.Debug {
			ev = ev.Str("stack", debug.Stack())
		}
		ev.Msg("action failed")
		os.Exit(-1)
	}
}

// printVector writes the single output line of a successful action.
func printVector(cmd *cobra.Command, hexStr string) {
	if fPrefix {
		hexStr = "0x" + hexStr
	}
	fmt.Fprintln(cmd.OutOrStdout(), hexStr)
}

// parseU64 parses the decimal u64 argument used for seeds and counts.
func parseU64(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid argument %q: %w", s, err)
	}
	return v, nil
}
