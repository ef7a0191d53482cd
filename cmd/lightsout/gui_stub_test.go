//go:build !ebiten

package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"lights-out/internal/app"
)

func TestGUIRequiresBuildTag(t *testing.T) {
	_, err := execute(t, "", "gui")
	require.Error(t, err)
	require.True(t, errors.Is(err, app.ErrNoGUI))
}
