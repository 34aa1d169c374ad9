package entity

import (
	"errors"

	"github.com/go-echarts/go-echarts/v2/opts"
)

// Series is a named sequence of points sharing one x axis, ready for
// charting or CSV export.
type Series struct {
	name string
	x    []float64
	data []opts.LineData
}

func NewSeries(name string, x, y []float64) (*Series, error) {
	if name == "" {
		return nil, errors.New("name is empty")
	}
	if len(x) != len(y) {
		return nil, errors.New("x and y lengths differ")
	}
	data := make([]opts.LineData, len(y))
	for i, v := range y {
		data[i] = opts.LineData{Value: v}
	}
	return &Series{name: name, x: x, data: data}, nil
}

func (s *Series) Name() string {
	return s.name
}

func (s *Series) X() []float64 {
	return s.x
}

func (s *Series) Data() []opts.LineData {
	return s.data
}

// Values returns the y values as floats.
func (s *Series) Values() []float64 {
	values := make([]float64, len(s.data))
	for i, d := range s.data {
		values[i] = d.Value.(float64)
	}
	return values
}

// Len returns the number of points.
func (s *Series) Len() int {
	return len(s.data)
}
