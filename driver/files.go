package driver

import (
	"runtime"

	"github.com/defuture-io/defuture/syntax"
	"github.com/defuture-io/defuture/utils"
	"golang.org/x/sync/errgroup"
)

// FileResult is the outcome of one file: the rewritten trees in source
// order.
type FileResult struct {
	Path  string
	Nodes []syntax.Node
}

// RunFiles processes files concurrently with the same pass list.
// Results come back indexed by the input order regardless of
// completion order. The bundled passes are pure, so sharing the runner
// across goroutines is safe; a custom stateful pass is not.
func (r *PassRunner) RunFiles(paths []string) ([]FileResult, error) {
	results := make([]FileResult, len(paths))

	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			source, err := utils.ReadFile(path)
			if err != nil {
				return err
			}
			nodes, err := r.RunSource(string(source))
			if err != nil {
				return err
			}
			results[i] = FileResult{Path: path, Nodes: nodes}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
