package grain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starlab/grain"
)

// The worked example: a one-micron silicon carbide grain (density
// 3.16 g/cm^3) carrying 40 ppm of a trace element of molar mass 28 g/mol,
// with a mean molar mass of 20 g/mol per grain atom.
var (
	exampleGrain = grain.Grain{Diameter: 1.0, Density: 3.16}
	exampleComp  = grain.Composition{
		Concentration:    40,
		ElementMolarMass: 28,
		MeanMolarMass:    20,
	}
)

func TestMass(t *testing.T) {
	t.Parallel()

	require.InEpsilon(t, 1.6546e-12, exampleGrain.Mass(), 1e-4)
}

func TestAtomsWorkedExamples(t *testing.T) {
	t.Parallel()

	byWeight, err := grain.Atoms(exampleGrain, exampleComp, grain.ByWeight)
	require.NoError(t, err)
	assert.InEpsilon(t, 1.423e6, byWeight, 1e-3)

	byNumber, err := grain.Atoms(exampleGrain, exampleComp, grain.ByNumber)
	require.NoError(t, err)
	assert.InEpsilon(t, 1.993e6, byNumber, 1e-3)
}

func TestAtomsConventionRatio(t *testing.T) {
	t.Parallel()

	comps := []grain.Composition{
		exampleComp,
		{Concentration: 120, ElementMolarMass: 55.845, MeanMolarMass: 20.05},
		{Concentration: 0.5, ElementMolarMass: 12.011, MeanMolarMass: 24.3},
	}

	for _, comp := range comps {
		byWeight, err := grain.Atoms(exampleGrain, comp, grain.ByWeight)
		require.NoError(t, err)
		byNumber, err := grain.Atoms(exampleGrain, comp, grain.ByNumber)
		require.NoError(t, err)

		ratio := comp.ElementMolarMass / comp.MeanMolarMass
		assert.InEpsilon(t, ratio, byNumber/byWeight, 1e-12)
	}
}

func TestAtomsValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		g    grain.Grain
		comp grain.Composition
		conv grain.Convention
		want error
	}{
		{"zero diameter", grain.Grain{Density: 3.16}, exampleComp, grain.ByWeight, grain.ErrBadDiameter},
		{"zero density", grain.Grain{Diameter: 1}, exampleComp, grain.ByWeight, grain.ErrBadDensity},
		{"negative ppm", exampleGrain, grain.Composition{Concentration: -1, ElementMolarMass: 28, MeanMolarMass: 20}, grain.ByWeight, grain.ErrBadPpm},
		{"zero element molar mass", exampleGrain, grain.Composition{Concentration: 40, MeanMolarMass: 20}, grain.ByWeight, grain.ErrBadMolarMass},
		{"zero mean molar mass", exampleGrain, grain.Composition{Concentration: 40, ElementMolarMass: 28}, grain.ByNumber, grain.ErrBadMolarMass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := grain.Atoms(tt.g, tt.comp, tt.conv)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUnmarshalConvention(t *testing.T) {
	t.Parallel()

	for text, want := range map[string]grain.Convention{
		"w":      grain.ByWeight,
		"weight": grain.ByWeight,
		"n":      grain.ByNumber,
		"number": grain.ByNumber,
	} {
		got, err := grain.UnmarshalConvention(text)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := grain.UnmarshalConvention("volume")
	require.Error(t, err)
}
