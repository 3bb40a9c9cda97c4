package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bithacks/internal/config"
	"bithacks/internal/eval"
	"bithacks/pkg/build"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the command tree with args and returns what it printed.
func run(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return out.String(), err
}

func TestEvalCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"PopCountNegative", []string{"eval", "pop_count", "-1"}, "32\n"},
		{"OppositeSigns", []string{"eval", "signs", "5", "-3"}, "true\n"},
		{"DefaultHex", []string{"eval", "nextperm", "0b0111"}, "0x0000000b\n"},
		{"FormatFlag", []string{"eval", "-f", "dec", "interleave", "1", "1"}, "3\n"},
		{"RootFormatFlag", []string{"--format", "bin", "eval", "splat", "'A'"},
			"0b01000001010000010100000101000001\n"},
		{"Pair", []string{"-f", "dec", "eval", "deinterleave", "3"}, "1 1\n"},
		{"FormatFlagAnyCase", []string{"-f", "HEX", "eval", "nextperm", "0b0111"}, "0x0000000b\n"},
		{"CaveatStillPrints", []string{"eval", "has_greater", "0", "200"}, "true\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, context.Background(), tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestEvalCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"UnknownOp", []string{"eval", "rotate", "1"}, eval.ErrUnknownOp},
		{"Arity", []string{"eval", "has_value", "1"}, eval.ErrArity},
		{"BadArgument", []string{"eval", "pop_count", "twelve"}, eval.ErrArgument},
		{"Precondition", []string{"eval", "next_permutation", "0"}, eval.ErrPrecondition},
		{"BadFormat", []string{"-f", "octal", "eval", "pop_count", "1"}, config.ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, context.Background(), tt.args...)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := run(t, context.Background(), "eval")
	assert.Error(t, err)
}

func TestOpsCommand(t *testing.T) {
	out, err := run(t, context.Background(), "ops")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(eval.Ops())+1)
	assert.True(t, strings.HasPrefix(lines[0], "SIGNATURE"))
	assert.Contains(t, out, "popcount,popcnt")
	assert.Contains(t, out, "next_permutation(uint32) uint32")
}

func TestPermsCommand(t *testing.T) {
	out, err := run(t, context.Background(), "-f", "dec", "perms", "4", "2")
	require.NoError(t, err)
	assert.Equal(t, "3\n5\n6\n9\n10\n12\n", out)

	out, err = run(t, context.Background(), "-f", "bin", "perms", "--limit", "2", "8", "1")
	require.NoError(t, err)
	assert.Equal(t, "0b00000001\n0b00000010\n", out)

	_, err = run(t, context.Background(), "perms", "x", "1")
	assert.ErrorIs(t, err, eval.ErrArgument)

	_, err = run(t, context.Background(), "perms", "8", "9")
	assert.ErrorIs(t, err, eval.ErrArgument)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bithacks.yaml")
	data := "output:\n  format: bin\n  width: 8\npermutations:\n  limit: 3\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	out, err := run(t, context.Background(), "-c", path, "eval", "nextpow2", "5")
	require.NoError(t, err)
	assert.Equal(t, "0b00001000\n", out)

	out, err = run(t, context.Background(), "-c", path, "-f", "dec", "perms", "8", "1")
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n4\n", out)

	_, err = run(t, context.Background(), "-c", filepath.Join(t.TempDir(), "missing.yaml"), "ops")
	assert.Error(t, err)
}

func TestServeCommand(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := run(t, ctx, "serve", "--addr", "127.0.0.1:0")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "listening on ws://127.0.0.1:"), out)
	assert.NotContains(t, out, "127.0.0.1:0/")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, context.Background(), "version")
	require.NoError(t, err)
	assert.Equal(t, build.GetBuildFlags().String()+"\n", out)
}
