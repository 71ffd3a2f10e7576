package kepler

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Problem is one (M, e) pair of a batch.
type Problem struct {
	MeanAnomaly  float64 `json:"mean_anomaly"`
	Eccentricity float64 `json:"eccentricity"`
}

// SolveBatch solves every problem concurrently with SolveDetailed and returns
// the results in input order. The first domain error cancels the remaining
// work and is returned annotated with the problem index.
func SolveBatch(ctx context.Context, problems []Problem, cfg *SolverConfig) ([]Result, error) {
	cfg = cfg.orDefault()
	if err := cfg.validate("SolveBatch"); err != nil {
		return nil, err
	}

	results := make([]Result, len(problems))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, p := range problems {
		if gctx.Err() != nil {
			break
		}
		i, p := i, p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := SolveDetailed(p.MeanAnomaly, p.Eccentricity, cfg)
			if err != nil {
				return fmt.Errorf("problem %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
