// Package entities holds the spell records exchanged between the API client,
// the cache, the search engine and the formatter.
package entities

// SpellSummary is one catalog entry as returned by the spell list endpoint
type SpellSummary struct {
	Index string `json:"index"`
	Name  string `json:"name"`
}

// Reference is the API's {index, name} pointer to another resource
type Reference struct {
	Index string `json:"index,omitempty"`
	Name  string `json:"name"`
}

// AreaOfEffect describes the shape and size, in feet, of a spell's area
type AreaOfEffect struct {
	Type string `json:"type"`
	Size int    `json:"size"`
}

// DC describes the saving throw a spell calls for
type DC struct {
	DCType    *Reference `json:"dc_type,omitempty"`
	DCSuccess string     `json:"dc_success,omitempty"`
}

// Damage describes the damage a spell deals
type Damage struct {
	DamageType *Reference `json:"damage_type,omitempty"`
}

// SpellDetail is the full record for a single spell.
// Optional API objects are pointers; use the accessors instead of
// dereferencing them directly.
type SpellDetail struct {
	Index         string        `json:"index"`
	Name          string        `json:"name"`
	Level         int           `json:"level"`
	Desc          []string      `json:"desc,omitempty"`
	HigherLevel   []string      `json:"higher_level,omitempty"`
	Range         string        `json:"range,omitempty"`
	Components    []string      `json:"components,omitempty"`
	Material      string        `json:"material,omitempty"`
	Ritual        bool          `json:"ritual"`
	Duration      string        `json:"duration,omitempty"`
	Concentration bool          `json:"concentration"`
	CastingTime   string        `json:"casting_time,omitempty"`
	AttackType    string        `json:"attack_type,omitempty"`
	School        *Reference    `json:"school,omitempty"`
	AreaOfEffect  *AreaOfEffect `json:"area_of_effect,omitempty"`
	DC            *DC           `json:"dc,omitempty"`
	Damage        *Damage       `json:"damage,omitempty"`
	Classes       []Reference   `json:"classes,omitempty"`
}

// Summary returns the catalog handoff for this spell
func (s *SpellDetail) Summary() SpellSummary {
	return SpellSummary{Index: s.Index, Name: s.Name}
}

// SchoolName returns the magic school name if the API supplied one
func (s *SpellDetail) SchoolName() (string, bool) {
	if s.School == nil || s.School.Name == "" {
		return "", false
	}
	return s.School.Name, true
}

// Area returns the area of effect if the spell has one
func (s *SpellDetail) Area() (AreaOfEffect, bool) {
	if s.AreaOfEffect == nil {
		return AreaOfEffect{}, false
	}
	return *s.AreaOfEffect, true
}

// SaveType returns the saving throw ability name if the spell calls for a save.
// A DC object without a named type still reports ok so callers can tell a
// malformed DC apart from no DC at all.
func (s *SpellDetail) SaveType() (name string, present bool) {
	if s.DC == nil {
		return "", false
	}
	if s.DC.DCType == nil {
		return "", true
	}
	return s.DC.DCType.Name, true
}

// DamageTypeName returns the damage type name if the spell deals damage
func (s *SpellDetail) DamageTypeName() (string, bool) {
	if s.Damage == nil || s.Damage.DamageType == nil || s.Damage.DamageType.Name == "" {
		return "", false
	}
	return s.Damage.DamageType.Name, true
}

// HasComponent reports whether code (V, S or M) is among the components
func (s *SpellDetail) HasComponent(code string) bool {
	for _, c := range s.Components {
		if c == code {
			return true
		}
	}
	return false
}

// ClassNames returns the names of the classes that can cast the spell
func (s *SpellDetail) ClassNames() []string {
	names := make([]string, 0, len(s.Classes))
	for _, c := range s.Classes {
		if c.Name != "" {
			names = append(names, c.Name)
		}
	}
	return names
}
