package format

import (
	"fmt"

	"github.com/KirkDiggler/spellbook/internal/entities"
)

// DiagnosticKind classifies something the formatter had to guess or fill in
type DiagnosticKind string

const (
	// DiagnosticMissingField means an expected field was absent and a fallback was shown
	DiagnosticMissingField DiagnosticKind = "missing_field"

	// DiagnosticOrphanHeader means a header fragment had no prose to attach to and was dropped
	DiagnosticOrphanHeader DiagnosticKind = "orphan_header"
)

// Diagnostic records a fallback or an ambiguous classification
type Diagnostic struct {
	Kind   DiagnosticKind `json:"kind"`
	Field  string         `json:"field"`
	Detail string         `json:"detail,omitempty"`
}

// String renders the diagnostic for logs
func (d Diagnostic) String() string {
	if d.Detail == "" {
		return fmt.Sprintf("%s: %s", d.Kind, d.Field)
	}
	return fmt.Sprintf("%s: %s (%q)", d.Kind, d.Field, d.Detail)
}

// Field is a labelled value on the sheet
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Sheet is a fully formatted spell
type Sheet struct {
	Index       string       `json:"index"`
	Name        string       `json:"name"`
	Fields      []Field      `json:"fields"`
	Classes     []string     `json:"classes,omitempty"`
	Ritual      bool         `json:"ritual,omitempty"`
	Blocks      []Block      `json:"blocks"`
	Footnote    string       `json:"footnote,omitempty"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// Value returns the value of the labelled field
func (s *Sheet) Value(label string) (string, bool) {
	for _, f := range s.Fields {
		if f.Label == label {
			return f.Value, true
		}
	}
	return "", false
}

// Format builds the sheet for a spell
func Format(spell *entities.SpellDetail) *Sheet {
	sheet := &Sheet{
		Index:   spell.Index,
		Name:    spell.Name,
		Classes: spell.ClassNames(),
		Ritual:  spell.Ritual,
		Fields: []Field{
			{Label: LabelLevel, Value: Level(spell.Level)},
			{Label: LabelRangeArea, Value: RangeArea(spell)},
			{Label: LabelDuration, Value: Duration(spell)},
			{Label: LabelAttackSave, Value: AttackSave(spell)},
			{Label: LabelCastingTime, Value: CastingTime(spell)},
			{Label: LabelComponents, Value: Components(spell.Components)},
			{Label: LabelSchool, Value: School(spell)},
			{Label: LabelDamageType, Value: DamageType(spell)},
		},
	}

	if sheet.Name == "" {
		sheet.Name = spell.Index
		sheet.missing("name")
	}
	if spell.Range == "" {
		sheet.missing("range")
	}
	if spell.Duration == "" {
		sheet.missing("duration")
	}
	if spell.CastingTime == "" {
		sheet.missing("casting_time")
	}
	if len(spell.Components) == 0 {
		sheet.missing("components")
	}
	if _, ok := spell.SchoolName(); !ok {
		sheet.missing("school")
	}
	if name, ok := spell.SaveType(); ok && name == "" && spell.AttackType == "" {
		sheet.missing("dc.dc_type")
	}
	if spell.HasComponent("M") && spell.Material == "" {
		sheet.missing("material")
	}

	var diagnostics []Diagnostic
	sheet.Blocks, diagnostics = describe(spell.Desc, spell.HigherLevel)
	sheet.Diagnostics = append(sheet.Diagnostics, diagnostics...)

	if footnote, ok := Footnote(spell); ok {
		sheet.Footnote = footnote
	}

	return sheet
}

func (s *Sheet) missing(field string) {
	s.Diagnostics = append(s.Diagnostics, Diagnostic{Kind: DiagnosticMissingField, Field: field})
}
