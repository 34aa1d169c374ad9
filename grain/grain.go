// Package grain computes trace-element atom counts in spherical presolar
// dust grains.
package grain

import (
	"errors"
	"fmt"
	"math"
)

const (
	Avogadro = 6.02214076e23 // atoms per mole
	CmPerUm  = 1e-4          // centimeters per micron
	Ppm      = 1e-6          // parts per million as a fraction
)

var (
	ErrBadDiameter  = errors.New("diameter must be positive")
	ErrBadDensity   = errors.New("density must be positive")
	ErrBadMolarMass = errors.New("molar mass must be positive")
	ErrBadPpm       = errors.New("concentration must not be negative")
)

// Grain is a spherical dust grain.
type Grain struct {
	Diameter float64 // microns
	Density  float64 // g/cm^3
}

// Volume returns the grain volume in cm^3.
func (g Grain) Volume() float64 {
	d := g.Diameter * CmPerUm
	return math.Pi / 6 * d * d * d
}

// Mass returns the grain mass in grams.
func (g Grain) Mass() float64 {
	return g.Density * g.Volume()
}

// Composition describes the trace element within the grain material.
type Composition struct {
	Concentration    float64 // ppm, interpreted per the chosen convention
	ElementMolarMass float64 // g/mol of the trace element
	MeanMolarMass    float64 // g/mol per atom of the bulk grain material
}

// Atoms returns the number of trace-element atoms in the grain.
//
// By weight the concentration is a mass fraction: the trace mass is divided
// by the element molar mass. By number it is an atom fraction: the total
// atom count of the grain uses the mean molar mass instead. The two results
// differ by the factor ElementMolarMass/MeanMolarMass.
func Atoms(g Grain, c Composition, conv Convention) (float64, error) {
	switch {
	case g.Diameter <= 0:
		return 0, ErrBadDiameter
	case g.Density <= 0:
		return 0, ErrBadDensity
	case c.Concentration < 0:
		return 0, ErrBadPpm
	}

	mass := g.Mass()
	fraction := c.Concentration * Ppm

	switch conv {
	case ByWeight:
		if c.ElementMolarMass <= 0 {
			return 0, ErrBadMolarMass
		}
		return mass * fraction / c.ElementMolarMass * Avogadro, nil
	case ByNumber:
		if c.MeanMolarMass <= 0 {
			return 0, ErrBadMolarMass
		}
		return mass / c.MeanMolarMass * Avogadro * fraction, nil
	default:
		return 0, fmt.Errorf("unknown convention: %d", conv)
	}
}
