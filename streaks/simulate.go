package streaks

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"runtime"
	"sync"
)

var (
	ErrNoTrials   = errors.New("trials must be positive")
	ErrNoFlips    = errors.New("flips must be positive")
	ErrBadLength  = errors.New("streak length must be positive")
	ErrLongStreak = errors.New("streak length exceeds flips per trial")
)

// Simulator runs independent coin-flip trials and counts streaks per trial.
type Simulator struct {
	Trials  int
	Flips   int
	Length  int
	Seed    uint64
	Workers int // 0 means runtime.NumCPU()
}

// Result holds the outcome of a simulation run.
type Result struct {
	Trials    int
	Hits      int // trials containing at least one streak
	Counts    []int
	Empirical float64
	Exact     float64
}

// Convergence returns the running frequency of trials with at least one
// streak, one value per trial in trial order.
func (r *Result) Convergence() []float64 {
	freq := make([]float64, len(r.Counts))
	hits := 0
	for i, c := range r.Counts {
		if c > 0 {
			hits++
		}
		freq[i] = float64(hits) / float64(i+1)
	}
	return freq
}

// Histogram returns how many trials produced each streak count, indexed by
// count.
func (r *Result) Histogram() []int {
	maxCount := 0
	for _, c := range r.Counts {
		if c > maxCount {
			maxCount = c
		}
	}
	hist := make([]int, maxCount+1)
	for _, c := range r.Counts {
		hist[c]++
	}
	return hist
}

func (s *Simulator) validate() error {
	switch {
	case s.Trials < 1:
		return ErrNoTrials
	case s.Flips < 1:
		return ErrNoFlips
	case s.Length < 1:
		return ErrBadLength
	case s.Length > s.Flips:
		return ErrLongStreak
	}
	return nil
}

// Run executes the simulation. Each trial draws its flips from its own PCG
// stream derived from the seed and the trial index, so results are identical
// for any worker count.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation parameters: %w", err)
	}

	workers := s.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > s.Trials {
		workers = s.Trials
	}

	counts := make([]int, s.Trials)
	block := s.Trials / workers
	remainder := s.Trials % workers

	var wg sync.WaitGroup
	errChan := make(chan error, workers)

	start := 0
	for w := 0; w < workers; w++ {
		end := start + block
		if w < remainder {
			end++
		}

		wg.Add(1)
		go func(from, to int) {
			defer wg.Done()
			errChan <- s.runBlock(ctx, from, to, counts)
		}(start, end)

		start = end
	}
	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return nil, err
		}
	}

	hits := 0
	for _, c := range counts {
		if c > 0 {
			hits++
		}
	}

	return &Result{
		Trials:    s.Trials,
		Hits:      hits,
		Counts:    counts,
		Empirical: float64(hits) / float64(s.Trials),
		Exact:     Exact(s.Flips, s.Length),
	}, nil
}

// runBlock fills counts[from:to], one independent trial per index.
func (s *Simulator) runBlock(ctx context.Context, from, to int, counts []int) error {
	row := make([]uint8, s.Flips)
	for trial := from; trial < to; trial++ {
		if trial%1024 == 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}
		rng := rand.New(rand.NewPCG(s.Seed, uint64(trial)))
		fillBinary(rng, row)
		counts[trial] = CountStreaks(row, s.Length)
	}
	return nil
}

func fillBinary(rng *rand.Rand, buf []uint8) {
	for i := range buf {
		buf[i] = uint8(rng.IntN(2))
	}
}
