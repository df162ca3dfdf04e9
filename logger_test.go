package geonorm

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/paulmach/orb"
)

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	defer SetLogger(nil)

	_ = Polygon(orb.Polygon{ccwSquare()})
	if !strings.Contains(buf.String(), "flipping ring winding") {
		t.Errorf("expected a debug record for the flipped ring, got %q", buf.String())
	}

	buf.Reset()
	SetLogger(nil)
	_ = Polygon(orb.Polygon{ccwSquare()})
	if buf.Len() != 0 {
		t.Errorf("logging should be silent after SetLogger(nil), got %q", buf.String())
	}
}
