package warn_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mnl-modding/mnllib-go/warn"
)

func TestCollectorReport(t *testing.T) {
	var c warn.Collector
	c.Report(warn.Warning{Code: warn.CodeBlockSizeMismatch, Message: "block 0 size mismatch"})
	c.Report(warn.Warning{Code: warn.CodeOffsetTableLength, Message: "bad length"})

	require.Len(t, c.Warnings, 2)
	require.Equal(t, warn.CodeBlockSizeMismatch, c.Warnings[0].Code)
	require.Equal(t, "bad length", c.Warnings[1].Message)
}

func TestCollectorReset(t *testing.T) {
	var c warn.Collector
	c.Report(warn.Warning{Code: warn.CodeHeaderSectionGap, Message: "gap"})
	c.Reset()
	require.Empty(t, c.Warnings)
}

func TestDiscard(t *testing.T) {
	require.NotPanics(t, func() {
		warn.Discard(warn.Warning{Code: warn.CodeBlockSizeMismatch, Message: "ignored"})
	})
}
