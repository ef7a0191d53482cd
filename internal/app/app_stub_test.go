//go:build !ebiten

package app

import (
	"errors"
	"testing"

	"lights-out/internal/config"
)

func TestHeadlessBuildReportsMissingTag(t *testing.T) {
	g, err := New(config.DefaultConfig(), nil)
	if !errors.Is(err, ErrNoGUI) || g != nil {
		t.Fatalf("New() = %v, %v; want nil, ErrNoGUI", g, err)
	}
	var stub Game
	if err := stub.Update(); !errors.Is(err, ErrNoGUI) {
		t.Fatalf("Update() = %v, want ErrNoGUI", err)
	}
}
