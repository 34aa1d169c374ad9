package app

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"starlab/entity"
	"starlab/entity/format"
)

type output struct {
	title   string
	xName   string
	yName   string
	series  []*entity.Series
	summary string
}

func (a *App) emit(out *output) error {
	switch a.Params.Format {
	case format.HTML:
		return a.renderChart(out)
	case format.Csv:
		return a.writeFile(func(w io.Writer) error {
			return writeCsv(w, out)
		})
	case format.Text:
		return a.writeFile(func(w io.Writer) error {
			_, err := io.WriteString(w, out.summary)
			return err
		})
	default:
		return fmt.Errorf("unknown format: %d", a.Params.Format)
	}
}

func (a *App) renderChart(out *output) error {
	line := createChart(out.title, out.xName, out.yName, out.series)
	log.Info("Chart created")

	f, err := os.Create(a.Output)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	renderTime := time.Now()
	if err := line.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	log.WithField("time", time.Since(renderTime)).Info("Chart rendered and saved")
	return nil
}

// writeFile writes through fn to the output path, or to stdout when no
// path is set.
func (a *App) writeFile(fn func(io.Writer) error) error {
	if a.Output == "" {
		return fn(os.Stdout)
	}
	f, err := os.Create(a.Output)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()
	if err := fn(f); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	log.WithField("output", a.Output).Info("Report saved")
	return nil
}

func writeCsv(w io.Writer, out *output) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(out.series)+1)
	header = append(header, out.xName)
	values := make([][]float64, len(out.series))
	for i, s := range out.series {
		header = append(header, s.Name())
		values[i] = s.Values()
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	x := out.series[0].X()
	row := make([]string, len(out.series)+1)
	for i := range x {
		row[0] = strconv.FormatFloat(x[i], 'g', -1, 64)
		for j := range values {
			row[j+1] = strconv.FormatFloat(values[j][i], 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
