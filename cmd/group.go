package cmd

import (
	"github.com/spf13/cobra"

	"github.com/consensys/bn254-difftest/vectors"
	"github.com/consensys/bn254-difftest/wire"
)

var g2GenCmd = &cobra.Command{
	Use:   "bn254-g2-gen",
	Short: "print the G2 generator",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := vectors.G2Gen()
		if err != nil {
			return err
		}
		printVector(cmd, out)
		return nil
	},
}

var g1FromScalarCmd = &cobra.Command{
	Use:   "bn254-g1-from-scalar <scalar>",
	Short: "compute generator*scalar in G1",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scalar, err := wire.ParseU256(args[0])
		if err != nil {
			return err
		}
		out, err := vectors.G1FromScalar(scalar)
		if err != nil {
			return err
		}
		printVector(cmd, out)
		return nil
	},
}

var g1IsOnCurveCmd = &cobra.Command{
	Use:   "bn254-g1-is-on-curve <hex point>",
	Short: "test whether a G1 wire record is on the curve",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := vectors.G1IsOnCurve(args[0])
		if err != nil {
			return err
		}
		printVector(cmd, out)
		return nil
	},
}

var g1AddCmd = &cobra.Command{
	Use:   "bn254-g1-add-op <seed>",
	Short: "draw two G1 points and print them with their sum",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, err := parseU64(args[0])
		if err != nil {
			return err
		}
		out, err := vectors.G1Add(seed)
		if err != nil {
			return err
		}
		printVector(cmd, out)
		return nil
	},
}

var g1NegCmd = &cobra.Command{
	Use:   "bn254-g1-neg-op <seed>",
	Short: "draw a G1 point and print it with its negation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, err := parseU64(args[0])
		if err != nil {
			return err
		}
		out, err := vectors.G1Neg(seed)
		if err != nil {
			return err
		}
		printVector(cmd, out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(g2GenCmd, g1FromScalarCmd, g1IsOnCurveCmd, g1AddCmd, g1NegCmd)
}
