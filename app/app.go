package app

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"starlab/entity"
	"starlab/entity/mode"
	"starlab/entity/parameters"
	"starlab/grain"
	"starlab/streaks"
)

// maxChartPoints caps the convergence series so the rendered chart stays
// responsive for large trial counts.
const maxChartPoints = 2048

type App struct {
	Output string
	Params *parameters.Parameters
}

func New(output string, params *parameters.Parameters) *App {
	return &App{
		Output: output,
		Params: params,
	}
}

func (a *App) Run(ctx context.Context) error {
	appTime := time.Now()
	defer func() {
		log.WithField("time", time.Since(appTime)).Debug("App finished")
	}()
	log.WithFields(log.Fields{
		"output": a.Output,
		"mode":   a.Params.Mode,
		"format": a.Params.Format,
	}).Debug("App started")

	switch a.Params.Mode {
	case mode.Streaks:
		return a.runStreaks(ctx)
	case mode.Grain:
		return a.runGrain(ctx)
	default:
		return fmt.Errorf("unknown mode: %d", a.Params.Mode)
	}
}

func (a *App) runStreaks(ctx context.Context) error {
	p := a.Params.Streaks
	sim := &streaks.Simulator{
		Trials:  p.Trials,
		Flips:   p.Flips,
		Length:  p.Length,
		Seed:    p.Seed,
		Workers: p.Workers,
	}

	simTime := time.Now()
	result, err := sim.Run(ctx)
	if err != nil {
		return fmt.Errorf("failed to run simulation: %w", err)
	}
	log.WithFields(log.Fields{
		"time":      time.Since(simTime),
		"trials":    result.Trials,
		"hits":      result.Hits,
		"empirical": result.Empirical,
		"exact":     result.Exact,
	}).Info("Simulation finished")

	x, empirical := thin(result.Convergence())
	exact := make([]float64, len(x))
	for i := range exact {
		exact[i] = result.Exact
	}

	empiricalSeries, err := entity.NewSeries("Empirical frequency", x, empirical)
	if err != nil {
		return fmt.Errorf("failed to create series: %w", err)
	}
	exactSeries, err := entity.NewSeries("Closed form", x, exact)
	if err != nil {
		return fmt.Errorf("failed to create series: %w", err)
	}

	summary := fmt.Sprintf(
		"Streaks of %d in %d fair coin flips\n"+
			"Trials:               %d\n"+
			"Trials with a streak: %d\n"+
			"Empirical frequency:  %.6f\n"+
			"Closed form:          %.6f\n"+
			"Difference:           %+.6f\n",
		p.Length, p.Flips, result.Trials, result.Hits,
		result.Empirical, result.Exact, result.Empirical-result.Exact,
	)

	return a.emit(&output{
		title:   "Streak probability convergence",
		xName:   "Trials",
		yName:   "Frequency",
		series:  []*entity.Series{empiricalSeries, exactSeries},
		summary: summary,
	})
}

func (a *App) runGrain(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p := a.Params.Grain
	g := grain.Grain{Diameter: p.Diameter, Density: p.Density}
	comp := grain.Composition{
		Concentration:    p.Concentration,
		ElementMolarMass: p.ElementMolarMass,
		MeanMolarMass:    p.MeanMolarMass,
	}
	conv, err := grain.UnmarshalConvention(p.Convention)
	if err != nil {
		return fmt.Errorf("failed to parse convention: %w", err)
	}

	atoms, err := grain.Atoms(g, comp, conv)
	if err != nil {
		return fmt.Errorf("failed to count atoms: %w", err)
	}
	log.WithFields(log.Fields{
		"diameter":   p.Diameter,
		"density":    p.Density,
		"ppm":        p.Concentration,
		"convention": conv,
		"mass":       g.Mass(),
		"atoms":      atoms,
	}).Info("Atom count finished")

	byWeight, byNumber, diameters, err := a.grainSweep(comp)
	if err != nil {
		return err
	}

	weightSeries, err := entity.NewSeries("Atoms by weight", diameters, byWeight)
	if err != nil {
		return fmt.Errorf("failed to create series: %w", err)
	}
	numberSeries, err := entity.NewSeries("Atoms by number", diameters, byNumber)
	if err != nil {
		return fmt.Errorf("failed to create series: %w", err)
	}

	summary := fmt.Sprintf(
		"Trace element atoms in a presolar grain\n"+
			"Diameter:      %g um\n"+
			"Density:       %g g/cm3\n"+
			"Concentration: %g ppm (%s)\n"+
			"Grain mass:    %.4g g\n"+
			"Atoms:         %.4g\n",
		p.Diameter, p.Density, p.Concentration, conv, g.Mass(), atoms,
	)

	return a.emit(&output{
		title:   "Trace element atoms vs grain diameter",
		xName:   "Diameter, um",
		yName:   "Atoms",
		series:  []*entity.Series{weightSeries, numberSeries},
		summary: summary,
	})
}

// grainSweep evaluates both conventions over diameters up to twice the
// configured one.
func (a *App) grainSweep(comp grain.Composition) (byWeight, byNumber, diameters []float64, err error) {
	const points = 100
	p := a.Params.Grain

	diameters = make([]float64, points)
	byWeight = make([]float64, points)
	byNumber = make([]float64, points)
	step := 2 * p.Diameter / points
	for i := 0; i < points; i++ {
		d := step * float64(i+1)
		g := grain.Grain{Diameter: d, Density: p.Density}
		diameters[i] = d
		if byWeight[i], err = grain.Atoms(g, comp, grain.ByWeight); err != nil {
			return nil, nil, nil, fmt.Errorf("failed to count atoms: %w", err)
		}
		if byNumber[i], err = grain.Atoms(g, comp, grain.ByNumber); err != nil {
			return nil, nil, nil, fmt.Errorf("failed to count atoms: %w", err)
		}
	}
	return byWeight, byNumber, diameters, nil
}

// thin reduces a running-frequency series to at most maxChartPoints,
// keeping the trial number of every kept point as its x value.
func thin(freq []float64) (x, y []float64) {
	stride := (len(freq) + maxChartPoints - 1) / maxChartPoints
	if stride < 1 {
		stride = 1
	}
	for i := stride - 1; i < len(freq); i += stride {
		x = append(x, float64(i+1))
		y = append(y, freq[i])
	}
	return x, y
}
