package curve

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// CompareShapes samples base under every shape at once so the explorer can
// draw them side by side. Each shape is sampled in its own goroutine; the
// evaluation is pure so nothing is shared except the result map.
func CompareShapes(ctx context.Context, base Params, totalSupply float64, resolution int) (map[Shape][]Point, error) {
	g, ctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	result := make(map[Shape][]Point, len(Shapes()))

	for _, shape := range Shapes() {
		shape := shape // per-iteration copy; module targets go 1.21 loop semantics
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			p := base
			p.Shape = shape
			points := SamplePoints(p, totalSupply, resolution)

			mu.Lock()
			result[shape] = points
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
