package proverr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/foras/proverr"
)

func TestNewAndErrorString(t *testing.T) {
	err := proverr.New(proverr.KindBuild, "input.BuildProver", "unknown symbol")
	require.Contains(t, err.Error(), "build")
	require.Contains(t, err.Error(), "input.BuildProver")
	require.Contains(t, err.Error(), "unknown symbol")
}

func TestNewfFormats(t *testing.T) {
	err := proverr.Newf(proverr.KindBuild, "op", "symbol %q not found", "foo")
	require.Contains(t, err.Error(), `symbol "foo" not found`)
}

func TestWrapNilIsNil(t *testing.T) {
	require.NoError(t, proverr.Wrap(nil, "op"))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("boom")
	wrapped := proverr.Wrap(cause, "op")
	require.Error(t, wrapped)
	require.ErrorIs(t, wrapped, cause)
}

func TestIsInternalInvariant(t *testing.T) {
	err := proverr.New(proverr.KindInternalInvariant, "prover.handleChild", "empty parents")
	require.True(t, proverr.IsInternalInvariant(err))

	build := proverr.New(proverr.KindBuild, "op", "msg")
	require.False(t, proverr.IsInternalInvariant(build))
}
