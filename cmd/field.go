package cmd

import (
	"github.com/spf13/cobra"

	"github.com/consensys/bn254-difftest/vectors"
	"github.com/consensys/bn254-difftest/wire"
)

var scalarInvCmd = &cobra.Command{
	Use:   "bn254-scalar-inv-op <scalar>",
	Short: "compute the inverse in the scalar field",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scalar, err := wire.ParseU256(args[0])
		if err != nil {
			return err
		}
		out, err := vectors.ScalarInv(scalar)
		if err != nil {
			return err
		}
		printVector(cmd, out)
		return nil
	},
}

var scalarNegCmd = &cobra.Command{
	Use:   "bn254-scalar-neg-op <scalar>",
	Short: "compute the negation in the scalar field",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scalar, err := wire.ParseU256(args[0])
		if err != nil {
			return err
		}
		out, err := vectors.ScalarNeg(scalar)
		if err != nil {
			return err
		}
		printVector(cmd, out)
		return nil
	},
}

var qrCmd = &cobra.Command{
	Use:   "bn254-qr <seed>",
	Short: "draw a base-field element and print its canonical square root",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, err := parseU64(args[0])
		if err != nil {
			return err
		}
		out, err := vectors.QuadraticResidue(seed)
		if err != nil {
			return err
		}
		printVector(cmd, out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scalarInvCmd, scalarNegCmd, qrCmd)
}
