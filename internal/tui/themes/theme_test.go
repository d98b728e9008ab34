package themes

import (
	"testing"

	"github.com/Veraticus/icd-suggest/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	theme, err := Lookup("default")
	require.NoError(t, err)
	assert.Equal(t, Default.Primary, theme.Primary)

	theme, err = Lookup("mono")
	require.NoError(t, err)
	assert.Equal(t, Mono.ProgressStart, theme.ProgressStart)

	_, err = Lookup("neon")
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "neon")
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"default", "mono"}, Names())
}

func TestDisabledButtonUsesMutedColor(t *testing.T) {
	assert.Equal(t, Default.Muted, Default.ButtonDisable.GetForeground())
}
