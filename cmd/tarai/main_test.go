package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/tarai/internal/sweep"
	"github.com/on-the-ground/tarai/tarai"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestEval(t *testing.T) {
	out, err := run(t, "eval", "--stats", "10", "5", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "naive        10  calls=343,073 hits=0 forces=0")
	assert.Contains(t, out, "lazy-enum    10  calls=76 hits=0 forces=25")
}

func TestEval_NegativeArgs(t *testing.T) {
	out, err := run(t, "eval", "--variant", "memo,lazy-closure", "--", "1", "-2", "3")
	require.NoError(t, err)
	assert.Equal(t, "memo         3\nlazy-closure 3\n", out)
}

func TestEval_Errors(t *testing.T) {
	_, err := run(t, "eval", "--variant", "eager", "1", "2", "3")
	assert.ErrorIs(t, err, tarai.ErrUnknownVariant)

	_, err = run(t, "eval", "1", "two", "3")
	assert.Error(t, err)

	_, err = run(t, "eval", "1", "2")
	assert.Error(t, err)
}

func TestBench(t *testing.T) {
	out, err := run(t, "bench", "--iterations", "2", "--variant", "memo", "12", "6", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "memo")
	assert.Contains(t, out, "tarai(12, 6, 0) = 12")
}

func TestBench_IterationsFromEnv(t *testing.T) {
	t.Setenv("TARAI_ITERATIONS", "0")
	_, err := run(t, "bench", "10", "5", "0")
	assert.Error(t, err)
}

func TestVerify(t *testing.T) {
	out, err := run(t, "verify", "--min", "-1", "--max", "3", "--workers", "2", "--naive-span", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "checked 125 triples")
	assert.Contains(t, out, "0 mismatches")
}

func TestVerify_InvalidRange(t *testing.T) {
	_, err := run(t, "verify", "--min", "3", "--max", "1")
	assert.Error(t, err)
}

func TestVerify_RangeTooWide(t *testing.T) {
	_, err := run(t, "verify", "--min", "-3037000499", "--max", "3037000499")
	assert.ErrorIs(t, err, sweep.ErrOutOfBounds)
}
