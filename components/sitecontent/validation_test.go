package sitecontent

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryOverridesKnownSectionsOnly(t *testing.T) {
	reg := NewRegistry()
	require.Len(t, reg.Definitions(), len(SectionIDs()))

	err := reg.RegisterDefinition(SectionDefinition{ID: "footer", Label: "Footer"})
	if !errors.Is(err, ErrUnknownSection) {
		t.Fatalf("expected ErrUnknownSection, got %v", err)
	}
	require.Error(t, reg.RegisterDefinition(SectionDefinition{ID: SectionHero}))

	require.NoError(t, reg.RegisterDefinition(SectionDefinition{ID: SectionHero, Label: "Banner"}))
	def, ok := reg.Definition(SectionHero)
	require.True(t, ok)
	assert.Equal(t, "Banner", def.Label)
	assert.Equal(t, SectionHero, reg.Definitions()[0].ID)
}

func TestJSONSchemaValidatorAcceptsDefaults(t *testing.T) {
	validator := NewJSONSchemaValidator()
	reg := NewRegistry()
	content := DefaultContent()
	for _, def := range reg.Definitions() {
		value, err := content.Section(def.ID)
		require.NoError(t, err)
		require.NoError(t, validator.Validate(def, value), def.ID)
	}
}

func TestJSONSchemaValidatorRecompilesAfterForget(t *testing.T) {
	validator := NewJSONSchemaValidator()
	def, _ := NewRegistry().Definition(SectionThreeRoads)
	twoRoads := ThreeRoads{Title: "Roads", Roads: []Road{{Name: "a"}, {Name: "b"}}}
	require.ErrorIs(t, validator.Validate(def, twoRoads), ErrValidation)

	relaxed := def
	relaxed.Schema = objectSchema(map[string]any{"title": stringSchema()}, "title")
	require.Error(t, validator.Validate(relaxed, twoRoads))
	validator.Forget(SectionThreeRoads)
	require.NoError(t, validator.Validate(relaxed, twoRoads))
}

func TestNoopValidator(t *testing.T) {
	assert.NoError(t, NoopValidator{}.Validate(SectionDefinition{}, ThreeRoads{}))
}
