package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUICmd_Use(t *testing.T) {
	assert.Equal(t, "tui", tuiCmd.Use)
	assert.Contains(t, tuiCmd.Long, "Tab")
}

func TestTUICmd_NotConfigured(t *testing.T) {
	cleanup := clearServices()
	defer cleanup()

	_, err := execute(t, "tui")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "search service not configured")
}
