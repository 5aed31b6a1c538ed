package testutils

import (
	"github.com/KirkDiggler/spellbook/internal/entities"
)

// Detail variants for CreateTestSpellDetailVariant
const (
	VariantCantrip       = "cantrip"
	VariantConcentration = "concentration"
	VariantHeaders       = "headers"
	VariantSparse        = "sparse"
)

// CreateTestCatalog returns a small catalog in API order
func CreateTestCatalog() []entities.SpellSummary {
	return []entities.SpellSummary{
		{Index: "acid-arrow", Name: "Acid Arrow"},
		{Index: "bless", Name: "Bless"},
		{Index: "contagion", Name: "Contagion"},
		{Index: "fire-bolt", Name: "Fire Bolt"},
		{Index: "fireball", Name: "Fireball"},
		{Index: "magic-missile", Name: "Magic Missile"},
		{Index: "wall-of-fire", Name: "Wall of Fire"},
	}
}

// CreateTestSpellDetail returns a fully populated Fireball record
func CreateTestSpellDetail() *entities.SpellDetail {
	return &entities.SpellDetail{
		Index:        "fireball",
		Name:         "Fireball",
		Level:        3,
		Desc:         []string{"A bright streak flashes from your pointing finger to a point you choose within range and then blossoms with a low roar into an explosion of flame."},
		HigherLevel:  []string{"When you cast this spell using a spell slot of 4th level or higher, the damage increases by 1d6 for each slot level above 3rd."},
		Range:        "150 feet",
		Components:   []string{"V", "S", "M"},
		Material:     "A tiny ball of bat guano and sulfur.",
		Duration:     "Instantaneous",
		CastingTime:  "1 action",
		School:       &entities.Reference{Index: "evocation", Name: "Evocation"},
		AreaOfEffect: &entities.AreaOfEffect{Type: "sphere", Size: 20},
		DC:           &entities.DC{DCType: &entities.Reference{Index: "dex", Name: "DEX"}, DCSuccess: "half"},
		Damage:       &entities.Damage{DamageType: &entities.Reference{Index: "fire", Name: "Fire"}},
		Classes: []entities.Reference{
			{Index: "sorcerer", Name: "Sorcerer"},
			{Index: "wizard", Name: "Wizard"},
		},
	}
}

// CreateTestSpellDetailVariant returns a record shaped to exercise one
// formatting path
func CreateTestSpellDetailVariant(variant string) *entities.SpellDetail {
	switch variant {
	case VariantCantrip:
		return &entities.SpellDetail{
			Index:       "fire-bolt",
			Name:        "Fire Bolt",
			Level:       0,
			Desc:        []string{"You hurl a mote of fire at a creature or object within range."},
			Range:       "120 feet",
			Components:  []string{"V", "S"},
			Duration:    "Instantaneous",
			CastingTime: "1 action",
			AttackType:  "ranged",
			School:      &entities.Reference{Index: "evocation", Name: "Evocation"},
			Damage:      &entities.Damage{DamageType: &entities.Reference{Index: "fire", Name: "Fire"}},
		}

	case VariantConcentration:
		return &entities.SpellDetail{
			Index:         "bless",
			Name:          "Bless",
			Level:         1,
			Desc:          []string{"You bless up to three creatures of your choice within range."},
			Range:         "30 feet",
			Components:    []string{"V", "S", "M"},
			Material:      "A sprinkling of holy water.",
			Duration:      "Up to 1 minute",
			Concentration: true,
			CastingTime:   "1 action",
			School:        &entities.Reference{Index: "enchantment", Name: "Enchantment"},
		}

	case VariantHeaders:
		return &entities.SpellDetail{
			Index: "contagion",
			Name:  "Contagion",
			Level: 5,
			Desc: []string{
				"Your touch inflicts disease. Make a melee spell attack against a creature within your reach.",
				"Blinding Sickness",
				"Pain grips the creature's mind, and its eyes turn milky white.",
				"Filth Fever.",
				"A raging fever sweeps through the creature's body.",
			},
			Range:       "Touch",
			Components:  []string{"V", "S"},
			Duration:    "7 days",
			CastingTime: "1 action",
			AttackType:  "melee",
			School:      &entities.Reference{Index: "necromancy", Name: "Necromancy"},
		}

	case VariantSparse:
		return &entities.SpellDetail{
			Index:      "mystery",
			Name:       "Mystery",
			Level:      2,
			Components: []string{"V"},
			DC:         &entities.DC{},
		}
	}

	return CreateTestSpellDetail()
}
