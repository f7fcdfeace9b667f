// bn254-difftest emits deterministic, ABI-encoded BN254 curve-operation test
// vectors so a contract-side implementation can be differentially tested
// against gnark-crypto.
package main

import "github.com/consensys/bn254-difftest/cmd"

func main() {
	cmd.Execute()
}
