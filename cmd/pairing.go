package cmd

import (
	"github.com/spf13/cobra"

	"github.com/consensys/bn254-difftest/vectors"
)

var pairingProd2Cmd = &cobra.Command{
	Use:   "bn254-pairing-prod2 <seed>",
	Short: "generate two (G1, G2) pairs for a pairing-product check",
	Long:  "bn254-pairing-prod2 draws pairs with e(a1,a2) == e(b1,b2) by construction and\nemits (a1, a2, -b1, b2). Even seeds double b2 so the product check must fail.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, err := parseU64(args[0])
		if err != nil {
			return err
		}
		out, err := vectors.PairingProd2(seed)
		if err != nil {
			return err
		}
		printVector(cmd, out)
		return nil
	},
}

var msmCmd = &cobra.Command{
	Use:   "bn254-msm <count>",
	Short: "generate bases and scalars with their multi-scalar product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, err := parseU64(args[0])
		if err != nil {
			return err
		}
		out, err := vectors.MSM(count)
		if err != nil {
			return err
		}
		printVector(cmd, out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pairingProd2Cmd, msmCmd)
}
