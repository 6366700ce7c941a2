package flowlog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/circlesnet/flowengine/address"
	"github.com/circlesnet/flowengine/amount"
	"github.com/circlesnet/flowengine/flowlog"
)

func TestNilLoggerIsNoop(t *testing.T) {
	require.NotPanics(t, func() {
		l := flowlog.New(nil)
		l.DinicIteration(1, amount.FromUint64(5), amount.FromUint64(5))
		l.NoAugmentingPath(2)
		l.Pruned(amount.FromUint64(10), amount.FromUint64(8), amount.Zero())
		l.Reduced(3, amount.FromUint64(2))
		l.Extracted(4)
		l.Simplified(4, 2)
		l.Completed(address.Zero, address.Zero, amount.FromUint64(8), 2)
	})
}

func TestCompletedWritesStructuredRecord(t *testing.T) {
	var buf bytes.Buffer
	inner := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	l := flowlog.New(inner)

	l.Completed(address.Zero, address.Zero, amount.FromUint64(8), 2)

	out := buf.String()
	require.Contains(t, out, "compute_flow completed")
	require.Contains(t, out, "transfer_count=2")
}
