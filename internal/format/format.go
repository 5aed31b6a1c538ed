// Package format turns a spell detail record into display strings.
//
// Every function here is pure: the same SpellDetail always yields the same
// output, and nothing is fetched or mutated. Optional API fields fall back to
// the named constants below instead of failing the render.
package format

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/spellbook/internal/entities"
)

// Display fallbacks and fixed labels
const (
	Cantrip        = "Cantrip"
	None           = "None"
	NotApplicable  = "N/A"
	Unknown        = "Unknown"
	MaterialMarker = "*"
	Concentration  = "Concentration"
)

// Field labels in display order
const (
	LabelLevel       = "Level"
	LabelRangeArea   = "Range/Area"
	LabelDuration    = "Duration"
	LabelAttackSave  = "Attack/Save"
	LabelCastingTime = "Casting Time"
	LabelComponents  = "Components"
	LabelSchool      = "School"
	LabelDamageType  = "Damage Type"
)

// Level renders a spell level, with 0 shown as Cantrip
func Level(level int) string {
	if level == 0 {
		return Cantrip
	}
	return strconv.Itoa(level)
}

// Components joins the component codes and flags a material footnote with
// MaterialMarker when M is among them.
func Components(components []string) string {
	if len(components) == 0 {
		return None
	}

	result := strings.Join(components, ", ")
	for _, c := range components {
		if c == "M" {
			result += MaterialMarker
			break
		}
	}
	return result
}

// Footnote returns the material footnote line, if the spell names a material
func Footnote(spell *entities.SpellDetail) (string, bool) {
	if strings.TrimSpace(spell.Material) == "" {
		return "", false
	}
	return MaterialMarker + " " + spell.Material, true
}

// RangeArea renders the range, followed by the area of effect when present
func RangeArea(spell *entities.SpellDetail) string {
	rng := orUnknown(spell.Range)
	if area, ok := spell.Area(); ok {
		return rng + " (" + strconv.Itoa(area.Size) + "ft " + area.Type + ")"
	}
	return rng
}

// AttackSave prefers the attack type, then the saving throw, then None
func AttackSave(spell *entities.SpellDetail) string {
	if spell.AttackType != "" {
		return spell.AttackType
	}
	if name, ok := spell.SaveType(); ok {
		return orUnknown(name) + " Save"
	}
	return None
}

// DamageType renders the damage type name or N/A
func DamageType(spell *entities.SpellDetail) string {
	if name, ok := spell.DamageTypeName(); ok {
		return name
	}
	return NotApplicable
}

// Duration renders the duration, marking concentration spells
func Duration(spell *entities.SpellDetail) string {
	duration := orUnknown(spell.Duration)
	if spell.Concentration {
		return duration + " (" + Concentration + ")"
	}
	return duration
}

// School renders the magic school name
func School(spell *entities.SpellDetail) string {
	name, _ := spell.SchoolName()
	return orUnknown(name)
}

// CastingTime renders the casting time
func CastingTime(spell *entities.SpellDetail) string {
	return orUnknown(spell.CastingTime)
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return Unknown
	}
	return s
}
