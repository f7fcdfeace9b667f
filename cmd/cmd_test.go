package cmd

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/consensys/bn254-difftest/vectors"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestG2GenCommand(t *testing.T) {
	expected, err := vectors.G2Gen()
	require.NoError(t, err)

	out, _, err := execute(t, "bn254-g2-gen")
	require.NoError(t, err)
	require.Equal(t, expected+"\n", out)
}

func TestPrefixFlag(t *testing.T) {
	defer func() { fPrefix = false }()

	expected, err := vectors.G1FromScalar(big.NewInt(1))
	require.NoError(t, err)

	out, _, err := execute(t, "--prefix", "bn254-g1-from-scalar", "1")
	require.NoError(t, err)
	require.Equal(t, "0x"+expected+"\n", out)
}

func TestQuietFlag(t *testing.T) {
	defer func() { fQuiet = false }()

	expected, err := vectors.G2Gen()
	require.NoError(t, err)

	out, errOut, err := execute(t, "--quiet", "bn254-g2-gen")
	require.NoError(t, err)
	require.Equal(t, expected+"\n", out)
	require.Empty(t, errOut)
}

func TestWrongArity(t *testing.T) {
	_, _, err := execute(t, "bn254-qr")
	require.Error(t, err)

	_, _, err = execute(t, "bn254-g2-gen", "extra")
	require.Error(t, err)

	_, _, err = execute(t, "bn254-g1-add-op", "1", "2")
	require.Error(t, err)
}

func TestMalformedArguments(t *testing.T) {
	_, _, err := execute(t, "bn254-qr", "abc")
	require.Error(t, err)

	_, _, err = execute(t, "bn254-g1-from-scalar", "0x12")
	require.Error(t, err)

	_, _, err = execute(t, "bn254-g1-is-on-curve", "zz")
	require.Error(t, err)

	// a well-formed argument with no inverse is still fatal
	_, _, err = execute(t, "bn254-scalar-inv-op", "0")
	require.Error(t, err)
}

func TestUnknownAction(t *testing.T) {
	_, _, err := execute(t, "bn254-does-not-exist")
	require.Error(t, err)
}

func TestTestOnly(t *testing.T) {
	out, errOut, err := execute(t, "test-only")
	require.NoError(t, err)
	require.Empty(t, out)
	require.Equal(t, "test only\n", errOut)
}
