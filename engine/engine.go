package engine

import (
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-step/model"
	"github.com/sheikhrachel/go-gol-step/rules"
	"github.com/sheikhrachel/go-gol-step/utils"
)

// ErrInvalidInput is returned for empty, jagged or oversized grids
var ErrInvalidInput = errors.New("invalid input grid")

// Engine applies the Conway transition rules under a fixed configuration
type Engine struct {
	cfg utils.Config
}

// New binds a copy of cfg to a new engine
func New(cfg utils.Config) *Engine {
	return &Engine{cfg: cfg}
}

// NewFromFile loads, validates and binds a JSON configuration
func NewFromFile(filename string) (*Engine, error) {
	cfg, err := utils.LoadConfig(filename)
	if err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "[NewFromFile] bad configuration in %s", filename)
	}
	return New(cfg), nil
}

// Config returns the configuration the engine was built with
func (e *Engine) Config() utils.Config {
	return e.cfg
}

// Validate returns an error wrapping ErrInvalidInput when g cannot be evaluated
func (e *Engine) Validate(g model.Grid) error {
	rows, cols := g.Rows(), g.Columns()
	switch {
	case rows == 0:
		return errors.Wrap(ErrInvalidInput, "[Validate] grid has no rows")
	case cols == 0:
		return errors.Wrap(ErrInvalidInput, "[Validate] grid has no columns")
	case !g.IsRectangular():
		return errors.Wrapf(ErrInvalidInput, "[Validate] rows differ in length, expected %d columns", cols)
	case e.cfg.EnforceMaxGridSize && (rows > e.cfg.MaxRows || cols > e.cfg.MaxColumns):
		return errors.Wrapf(ErrInvalidInput, "[Validate] grid is %dx%d, limit is %dx%d",
			rows, cols, e.cfg.MaxRows, e.cfg.MaxColumns)
	}
	return nil
}

// IsInvalid reports whether Validate rejects g
func (e *Engine) IsInvalid(g model.Grid) bool {
	return e.Validate(g) != nil
}

// NextGeneration returns a newly allocated grid holding the generation after g.
// The input is never modified. On invalid input it returns nil and an error
// wrapping ErrInvalidInput.
func (e *Engine) NextGeneration(g model.Grid) (model.Grid, error) {
	if err := e.Validate(g); err != nil {
		return nil, err
	}

	var (
		eg            errgroup.Group
		rows, cols    = g.Rows(), g.Columns()
		next          = model.NewGrid(rows, cols)
		numWorkers    = min(e.cfg.WorkerCount(), rows)
		rowsPerWorker = (rows + numWorkers - 1) / numWorkers // Ceiling division
	)

	if numWorkers == 1 {
		fillRows(g, next, 0, rows)
		return next, nil
	}

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, rows)
		)
		if startRow >= rows {
			break
		}

		// Bands write disjoint rows of next and only read g.
		eg.Go(func() error {
			fillRows(g, next, startRow, endRow)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, errors.Wrap(err, "[NextGeneration] worker failed")
	}

	return next, nil
}

// fillRows computes rows [startRow, endRow) of next from the current generation
func fillRows(cur, next model.Grid, startRow, endRow int) {
	for r := startRow; r < endRow; r++ {
		for c := range cur[r] {
			next[r][c] = rules.NextCellState(cur[r][c], model.CountLiveNeighbors(cur, r, c))
		}
	}
}
