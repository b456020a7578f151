package resource_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/foras/resource"
)

func TestNopSamplerAlwaysZero(t *testing.T) {
	var s resource.NopSampler
	rss, err := s.CurrentRSSBytes()
	require.NoError(t, err)
	require.Zero(t, rss)
}

func TestProcSamplerReturnsPositiveRSS(t *testing.T) {
	var s resource.ProcSampler
	rss, err := s.CurrentRSSBytes()
	require.NoError(t, err)
	require.Greater(t, rss, uint64(0))
}
