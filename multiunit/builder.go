package multiunit

import (
	"sync"

	"github.com/katalvlaran/muvr/matrix"
)

// SquareMatrix computes the n×n pairwise distance matrix over one
// observation collection.
//
// Contract:
//   - p must validate; obs must be non-empty, of uniform channel arity,
//     with finite timestamps. Validation is atomic: it completes before
//     any cell is computed and a failure returns no matrix.
//   - The diagonal is exactly 0 by construction (never computed).
//   - Cell (i,j), i<j, is computed once and mirrored to (j,i), so the
//     result is exactly symmetric.
//
// Complexity: n profile builds + n·(n−1)/2 pair evaluations, spread
// over the worker pool (default runtime.NumCPU, see WithConcurrency).
func SquareMatrix(obs []Observation, p Params, opts ...Option) (*matrix.Dense, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := validateCollections(obs); err != nil {
		return nil, err
	}

	profiles, err := buildProfiles(obs, p.Tau)
	if err != nil {
		return nil, err
	}

	n := len(obs)
	data := make([]float64, n*n)
	// Row i owns cells (i,j) and their mirrors (j,i) for j>i: every
	// cell has exactly one writer, so assembly order cannot matter.
	err = forEachRow(n, gatherOptions(opts...).workers, func(i int) error {
		for j := i + 1; j < n; j++ {
			d, derr := distanceOfProfiles(profiles[i], profiles[j], p)
			if derr != nil {
				return derr
			}
			data[i*n+j] = d
			data[j*n+i] = d
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return matrix.NewDenseFromFlat(n, n, data)
}

// RectangularMatrix computes the p×q distance matrix between two
// observation collections: cell (i,j) = Distance(a[i], b[j], params).
//
// Contract:
//   - Same atomic validation as SquareMatrix; arity must agree across
//     BOTH collections.
//   - No symmetry is assumed; every cell is computed independently.
//     Calling it with a == b agrees with SquareMatrix element-wise.
//
// Complexity: p+q profile builds + p·q pair evaluations over the pool.
func RectangularMatrix(a, b []Observation, params Params, opts ...Option) (*matrix.Dense, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := validateCollections(a, b); err != nil {
		return nil, err
	}

	pa, err := buildProfiles(a, params.Tau)
	if err != nil {
		return nil, err
	}
	pb, err := buildProfiles(b, params.Tau)
	if err != nil {
		return nil, err
	}

	rows, cols := len(a), len(b)
	data := make([]float64, rows*cols)
	err = forEachRow(rows, gatherOptions(opts...).workers, func(i int) error {
		for j := 0; j < cols; j++ {
			d, derr := distanceOfProfiles(pa[i], pb[j], params)
			if derr != nil {
				return derr
			}
			data[i*cols+j] = d
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return matrix.NewDenseFromFlat(rows, cols, data)
}

// buildProfiles precomputes one profile per observation.
func buildProfiles(obs []Observation, tau float64) ([]*profile, error) {
	profiles := make([]*profile, len(obs))
	for i, o := range obs {
		p, err := newProfile(o, tau)
		if err != nil {
			return nil, err
		}
		profiles[i] = p
	}

	return profiles, nil
}

// forEachRow fans row indices [0,rows) out over a bounded worker pool
// and waits for completion. The first error observed is returned;
// inputs validated at the boundary make errors unreachable in
// practice, but the propagation path is kept honest.
func forEachRow(rows, workers int, fn func(int) error) error {
	if workers > rows {
		workers = rows
	}
	if workers <= 1 {
		for i := 0; i < rows; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}

		return nil
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
		jobs     = make(chan int)
	)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				if err := fn(i); err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
				}
			}
		}()
	}
	for i := 0; i < rows; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return firstErr
}
