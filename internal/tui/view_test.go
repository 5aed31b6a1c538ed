package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/spellbook/internal/format"
	"github.com/KirkDiggler/spellbook/internal/testutils"
)

func formatFixture() *format.Sheet {
	return format.Format(testutils.CreateTestSpellDetail())
}

func TestRenderFieldsTwoColumns(t *testing.T) {
	out := renderFields(formatFixture().Fields, 100)
	lines := strings.Split(out, "\n")

	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Level: 3")
	assert.Contains(t, lines[0], "Casting Time: 1 action")
	assert.Contains(t, lines[3], "Attack/Save: DEX Save")
	assert.Contains(t, lines[3], "Damage Type: Fire")
}

func TestRenderSheetHeaders(t *testing.T) {
	sheet := format.Format(testutils.CreateTestSpellDetailVariant(testutils.VariantHeaders))

	out := renderSheet(sheet, 200)

	assert.Contains(t, out, "Blinding Sickness. Pain grips")
	assert.Contains(t, out, "Filth Fever. A raging fever")
	assert.NotContains(t, out, "Filth Fever..")
}
