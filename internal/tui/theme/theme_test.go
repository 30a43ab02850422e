package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asteroid-belt/skillmatrix/internal/config"
	"github.com/asteroid-belt/skillmatrix/internal/viewmodel"
)

func TestByName(t *testing.T) {
	assert.Equal(t, PunkTheme, ByName(config.ThemePunk))
	assert.Equal(t, NeonTheme, ByName(config.ThemeNeon))
	assert.Equal(t, BloodTheme, ByName(config.ThemeBlood))
	assert.Equal(t, PunkTheme, ByName("pastel"))
}

func TestUse(t *testing.T) {
	t.Cleanup(func() { Current = PunkTheme })

	Use(config.ThemeBlood)
	assert.Equal(t, BloodTheme, Current)
}

func TestTokenColor(t *testing.T) {
	t.Cleanup(func() { Current = PunkTheme })
	Current = NeonTheme

	assert.Equal(t, NeonTheme.Error, TokenColor(viewmodel.ColorDanger))
	assert.Equal(t, NeonTheme.Warning, TokenColor(viewmodel.ColorWarning))
	assert.Equal(t, NeonTheme.Info, TokenColor(viewmodel.ColorInfo))
	assert.Equal(t, NeonTheme.Badge, TokenColor(viewmodel.ColorPrimary))
	assert.Equal(t, NeonTheme.Success, TokenColor(viewmodel.ColorSuccess))
	assert.Equal(t, NeonTheme.TextMuted, TokenColor(viewmodel.ColorSecondary))
	assert.Equal(t, NeonTheme.TextMuted, TokenColor("mauve"))
}
