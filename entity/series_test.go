package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starlab/entity"
)

func TestNewSeries(t *testing.T) {
	t.Parallel()

	s, err := entity.NewSeries("frequency", []float64{1, 2, 3}, []float64{0.1, 0.2, 0.3})
	require.NoError(t, err)

	assert.Equal(t, "frequency", s.Name())
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []float64{1, 2, 3}, s.X())
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, s.Values())
}

func TestNewSeriesErrors(t *testing.T) {
	t.Parallel()

	_, err := entity.NewSeries("", []float64{1}, []float64{1})
	require.Error(t, err)

	_, err = entity.NewSeries("frequency", []float64{1, 2}, []float64{1})
	require.Error(t, err)
}
