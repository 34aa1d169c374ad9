package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"

	"starlab/app"
	"starlab/entity/format"
	"starlab/entity/mode"
	"starlab/entity/parameters"
)

func main() {
	modeFlag := flag.String("mode", "s", "computation: s (coin-flip streaks) or g (grain atoms)")
	formatFlag := flag.String("format", "html", "output format: html, csv or text")
	configFlag := flag.String("config", "", "YAML parameter file")
	outputFlag := flag.String("o", "", "output path (default Streaks.<ext> or Grain.<ext>, stdout for text)")
	verbose := flag.Bool("v", false, "debug logging")

	trials := flag.Int("trials", 0, "Monte Carlo trials")
	flips := flag.Int("flips", 0, "coin flips per trial")
	length := flag.Int("streak", 0, "streak length to count")
	seed := flag.Uint64("seed", 0, "simulation seed")
	workers := flag.Int("workers", 0, "worker goroutines (default all CPUs)")

	diameter := flag.Float64("diameter", 0, "grain diameter, microns")
	density := flag.Float64("density", 0, "grain density, g/cm3")
	ppm := flag.Float64("ppm", 0, "trace element concentration, ppm")
	elementMass := flag.Float64("element-molar-mass", 0, "trace element molar mass, g/mol")
	meanMass := flag.Float64("mean-molar-mass", 0, "mean molar mass per grain atom, g/mol")
	convention := flag.String("convention", "", "concentration convention: w(eight) or n(umber)")

	flag.Parse()

	log.SetLevel(log.InfoLevel)
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	params := parameters.Default()
	if *configFlag != "" {
		var err error
		if params, err = parameters.Load(*configFlag); err != nil {
			log.Fatal(err)
		}
	}
	if err := params.ApplyEnv(); err != nil {
		log.Fatal(err)
	}

	// Explicit flags win over the file and the environment.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "trials":
			params.Streaks.Trials = *trials
		case "flips":
			params.Streaks.Flips = *flips
		case "streak":
			params.Streaks.Length = *length
		case "seed":
			params.Streaks.Seed = *seed
		case "workers":
			params.Streaks.Workers = *workers
		case "diameter":
			params.Grain.Diameter = *diameter
		case "density":
			params.Grain.Density = *density
		case "ppm":
			params.Grain.Concentration = *ppm
		case "element-molar-mass":
			params.Grain.ElementMolarMass = *elementMass
		case "mean-molar-mass":
			params.Grain.MeanMolarMass = *meanMass
		case "convention":
			params.Grain.Convention = *convention
		}
	})

	var err error
	if params.Mode, err = mode.UnmarshalText(*modeFlag); err != nil {
		log.Fatal(err)
	}
	if params.Format, err = format.UnmarshalText(*formatFlag); err != nil {
		log.Fatal(err)
	}

	output := *outputFlag
	if output == "" && params.Format != format.Text {
		name := "Streaks"
		if params.Mode == mode.Grain {
			name = "Grain"
		}
		output = name + "." + params.Format.Ext()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := app.New(output, params).Run(ctx); err != nil {
		log.Fatal(err)
	}
}
