package external

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	spellentities "github.com/KirkDiggler/spellbook/internal/entities"
	apierrors "github.com/KirkDiggler/spellbook/internal/errors"
)

// mockDND5eClient is a mock implementation of the dnd5e.Interface for testing
type mockDND5eClient struct {
	mock.Mock
}

func (m *mockDND5eClient) ListRaces() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetRace(key string) (*entities.Race, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Race), args.Error(1)
}

func (m *mockDND5eClient) ListEquipment() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetEquipment(key string) (dnd5e.EquipmentInterface, error) {
	args := m.Called(key)
	return args.Get(0).(dnd5e.EquipmentInterface), args.Error(1)
}

func (m *mockDND5eClient) GetEquipmentCategory(key string) (*entities.EquipmentCategory, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.EquipmentCategory), args.Error(1)
}

func (m *mockDND5eClient) ListClasses() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetClass(key string) (*entities.Class, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Class), args.Error(1)
}

func (m *mockDND5eClient) ListSpells(input *dnd5e.ListSpellsInput) ([]*entities.ReferenceItem, error) {
	args := m.Called(input)
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetSpell(key string) (*entities.Spell, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Spell), args.Error(1)
}

func (m *mockDND5eClient) ListFeatures() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetFeature(key string) (*entities.Feature, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Feature), args.Error(1)
}

func (m *mockDND5eClient) ListSkills() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetSkill(key string) (*entities.Skill, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Skill), args.Error(1)
}

func (m *mockDND5eClient) ListMonsters() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) ListMonstersWithFilter(input *dnd5e.ListMonstersInput) ([]*entities.ReferenceItem, error) {
	args := m.Called(input)
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetMonster(key string) (*entities.Monster, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Monster), args.Error(1)
}

func (m *mockDND5eClient) GetClassLevel(key string, level int) (*entities.Level, error) {
	args := m.Called(key, level)
	return args.Get(0).(*entities.Level), args.Error(1)
}

func (m *mockDND5eClient) GetProficiency(key string) (*entities.Proficiency, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Proficiency), args.Error(1)
}

func (m *mockDND5eClient) ListDamageTypes() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetDamageType(key string) (*entities.DamageType, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.DamageType), args.Error(1)
}

func (m *mockDND5eClient) ListBackgrounds() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetBackground(key string) (*entities.Background, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Background), args.Error(1)
}

const fireballJSON = `{
  "index": "fireball",
  "name": "Fireball",
  "desc": ["A bright streak flashes from your pointing finger."],
  "higher_level": ["The damage increases by 1d6 for each slot level above 3rd."],
  "range": "150 feet",
  "components": ["V", "S", "M"],
  "material": "A tiny ball of bat guano and sulfur.",
  "ritual": false,
  "duration": "Instantaneous",
  "concentration": false,
  "casting_time": "1 action",
  "level": 3,
  "damage": {"damage_type": {"index": "fire", "name": "Fire", "url": "/api/2014/damage-types/fire"}},
  "dc": {"dc_type": {"index": "dex", "name": "DEX", "url": "/api/2014/ability-scores/dex"}, "dc_success": "half"},
  "area_of_effect": {"type": "sphere", "size": 20},
  "school": {"index": "evocation", "name": "Evocation", "url": "/api/2014/magic-schools/evocation"},
  "classes": [{"index": "sorcerer", "name": "Sorcerer"}, {"index": "wizard", "name": "Wizard"}]
}`

func newTestClient(dnd5eClient dnd5e.Interface, server *httptest.Server) *client {
	c := &client{dnd5eClient: dnd5eClient, httpClient: http.DefaultClient, baseURL: DefaultBaseURL}
	if server != nil {
		c.httpClient = server.Client()
		c.baseURL = server.URL + "/"
	}
	return c
}

func TestListSpells(t *testing.T) {
	t.Run("successful spell listing", func(t *testing.T) {
		mockClient := new(mockDND5eClient)
		c := newTestClient(mockClient, nil)

		refs := []*entities.ReferenceItem{
			{Key: "acid-arrow", Name: "Acid Arrow"},
			nil,
			{Key: "", Name: "Broken"},
			{Key: "fireball", Name: "Fireball"},
		}
		mockClient.On("ListSpells", (*dnd5e.ListSpellsInput)(nil)).Return(refs, nil)

		result, err := c.ListSpells(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []spellentities.SpellSummary{
			{Index: "acid-arrow", Name: "Acid Arrow"},
			{Index: "fireball", Name: "Fireball"},
		}, result)

		mockClient.AssertExpectations(t)
	})

	t.Run("spell listing API error", func(t *testing.T) {
		mockClient := new(mockDND5eClient)
		c := newTestClient(mockClient, nil)

		mockClient.On("ListSpells", (*dnd5e.ListSpellsInput)(nil)).
			Return(([]*entities.ReferenceItem)(nil), errors.New("API error"))

		result, err := c.ListSpells(context.Background())

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, apierrors.IsUnavailable(err))
		assert.True(t, IsFetchError(err))
		assert.Contains(t, err.Error(), "failed to list spells from D&D 5e API")

		mockClient.AssertExpectations(t)
	})

	t.Run("canceled before the call", func(t *testing.T) {
		mockClient := new(mockDND5eClient)
		c := newTestClient(mockClient, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result, err := c.ListSpells(ctx)

		assert.Nil(t, result)
		assert.True(t, apierrors.IsCanceled(err))
		assert.False(t, IsFetchError(err))
		mockClient.AssertNotCalled(t, "ListSpells", mock.Anything)
	})

	t.Run("canceled while waiting", func(t *testing.T) {
		mockClient := new(mockDND5eClient)
		c := newTestClient(mockClient, nil)

		release := make(chan time.Time)
		defer close(release)
		mockClient.On("ListSpells", (*dnd5e.ListSpellsInput)(nil)).
			WaitUntil(release).
			Return([]*entities.ReferenceItem{}, nil)

		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(10 * time.Millisecond)
			cancel()
		}()

		result, err := c.ListSpells(ctx)

		assert.Nil(t, result)
		assert.True(t, apierrors.IsCanceled(err))
	})
}

func TestGetSpell(t *testing.T) {
	t.Run("decodes the full record", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/spells/fireball", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(fireballJSON))
		}))
		defer server.Close()

		c := newTestClient(new(mockDND5eClient), server)
		spell, err := c.GetSpell(context.Background(), "fireball")

		require.NoError(t, err)
		assert.Equal(t, "Fireball", spell.Name)
		assert.Equal(t, 3, spell.Level)
		assert.Equal(t, []string{"V", "S", "M"}, spell.Components)
		assert.Equal(t, "A tiny ball of bat guano and sulfur.", spell.Material)

		area, ok := spell.Area()
		assert.True(t, ok)
		assert.Equal(t, spellentities.AreaOfEffect{Type: "sphere", Size: 20}, area)

		save, ok := spell.SaveType()
		assert.True(t, ok)
		assert.Equal(t, "DEX", save)

		damage, ok := spell.DamageTypeName()
		assert.True(t, ok)
		assert.Equal(t, "Fire", damage)
		assert.Equal(t, []string{"Sorcerer", "Wizard"}, spell.ClassNames())
	})

	t.Run("not found", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		defer server.Close()

		c := newTestClient(new(mockDND5eClient), server)
		spell, err := c.GetSpell(context.Background(), "nope")

		assert.Nil(t, spell)
		assert.True(t, apierrors.IsNotFound(err))
		assert.True(t, IsFetchError(err))
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		c := newTestClient(new(mockDND5eClient), server)
		_, err := c.GetSpell(context.Background(), "fireball")

		assert.True(t, apierrors.IsUnavailable(err))
		assert.Equal(t, http.StatusInternalServerError, apierrors.GetMeta(err)["status"])
	})

	t.Run("malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("{not json"))
		}))
		defer server.Close()

		c := newTestClient(new(mockDND5eClient), server)
		_, err := c.GetSpell(context.Background(), "fireball")

		assert.True(t, apierrors.IsUnavailable(err))
		assert.True(t, IsFetchError(err))
	})

	t.Run("missing index in body falls back to requested index", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"name": "Light", "level": 0}`))
		}))
		defer server.Close()

		c := newTestClient(new(mockDND5eClient), server)
		spell, err := c.GetSpell(context.Background(), "light")

		require.NoError(t, err)
		assert.Equal(t, "light", spell.Index)
	})

	t.Run("empty index", func(t *testing.T) {
		c := newTestClient(new(mockDND5eClient), nil)
		_, err := c.GetSpell(context.Background(), " ")

		assert.True(t, apierrors.IsInvalidArgument(err))
		assert.False(t, IsFetchError(err))
	})

	t.Run("canceled context", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(fireballJSON))
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		c := newTestClient(new(mockDND5eClient), server)
		_, err := c.GetSpell(ctx, "fireball")

		assert.True(t, apierrors.IsCanceled(err))
		assert.False(t, IsFetchError(err))
	})
}

func TestConfigValidate(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := &Config{}
		require.NoError(t, cfg.Validate())
		assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
		assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
		assert.Equal(t, 24*time.Hour, cfg.CacheTTL)
	})

	t.Run("adds trailing slash", func(t *testing.T) {
		cfg := &Config{BaseURL: "http://localhost:3000/api/2014"}
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "http://localhost:3000/api/2014/", cfg.BaseURL)
	})

	t.Run("rejects relative url", func(t *testing.T) {
		cfg := &Config{BaseURL: "api/2014"}
		err := cfg.Validate()
		assert.True(t, apierrors.IsInvalidArgument(err))
	})
}
