// Package demo holds the fixed console scenarios printed by cmd/vexpr.
// Each scenario writes its trace to the runner's output and logs its
// progress at debug level.
package demo

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/vexpr/dispatch"
	"github.com/katalvlaran/vexpr/expr"
	"github.com/katalvlaran/vexpr/vector"
)

// Size is the fixed vector length used by every scenario.
const Size = 3

// Runner executes scenarios against an output writer.
type Runner struct {
	out    io.Writer
	logger *slog.Logger
}

// NewRunner returns a Runner. A nil logger is replaced by NoopLogger.
func NewRunner(out io.Writer, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = NoopLogger()
	}

	return &Runner{out: out, logger: logger}
}

// All runs Eager, Lazy and Dispatch in that order.
func (r *Runner) All() error {
	for _, step := range []struct {
		name string
		run  func() error
	}{
		{"eager", r.Eager},
		{"lazy", r.Lazy},
		{"dispatch", r.Dispatch},
	} {
		if err := r.scenario(step.name, step.run); err != nil {
			return err
		}
	}

	return nil
}

// scenario wraps run with debug logging and error context.
func (r *Runner) scenario(name string, run func() error) error {
	r.logger.Debug("scenario start", "name", name)
	if err := run(); err != nil {
		r.logger.Error("scenario failed", "name", name, "err", err)
		return fmt.Errorf("scenario %s: %w", name, err)
	}
	r.logger.Debug("scenario done", "name", name)

	return nil
}

// Eager sums three zero vectors eagerly and prints the result size.
func (r *Runner) Eager() error {
	vs, err := zeroVectors(3, vector.New)
	if err != nil {
		return err
	}

	v, err := vector.Sum(vs...)
	if err != nil {
		return err
	}
	r.logger.Debug("eager sum", "result", v.String())
	_, err = fmt.Fprintf(r.out, "eager: size=%d\n", v.Len())

	return err
}

// Lazy materializes a + b + c of zero vectors, prints its size, then reads
// {1,2,3} + {4,5,6} element by element without materializing it.
func (r *Runner) Lazy() error {
	vs, err := zeroVectors(3, expr.NewVector)
	if err != nil {
		return err
	}

	e := expr.Add(expr.Add(vs[0], vs[1]), vs[2])
	v, err := expr.Materialize(e)
	if err != nil {
		return err
	}
	r.logger.Debug("lazy sum", "additions", expr.Additions(e), "result", v.String())
	if _, err = fmt.Fprintf(r.out, "lazy: size=%d\n", v.Len()); err != nil {
		return err
	}

	x, err := expr.FromValues(Size, []float32{1, 2, 3})
	if err != nil {
		return err
	}
	y, err := expr.FromValues(Size, []float32{4, 5, 6})
	if err != nil {
		return err
	}
	s := expr.Add(x, y)
	_, err = fmt.Fprintf(r.out, "lazy: (a+b)[0]=%g (a+b)[1]=%g (a+b)[2]=%g\n", s.At(0), s.At(1), s.At(2))

	return err
}

// Dispatch runs both dispatch mechanisms, prefixing each line with its path.
func (r *Runner) Dispatch() error {
	var dyn bytes.Buffer
	if err := dispatch.RunDynamic(&dyn, dispatch.NewDefaultRegistry()); err != nil {
		return err
	}
	if err := r.prefixLines("dispatch/dynamic: ", &dyn); err != nil {
		return err
	}

	var stat bytes.Buffer
	if err := dispatch.RunStatic2(&stat, dispatch.First{}, dispatch.Second{}); err != nil {
		return err
	}

	return r.prefixLines("dispatch/static: ", &stat)
}

// zeroVectors builds k zero vectors of length Size with newFn, failing on
// the first constructor error.
func zeroVectors[T any](k int, newFn func(int) (T, error)) ([]T, error) {
	out := make([]T, 0, k)
	for i := 0; i < k; i++ {
		v, err := newFn(Size)
		if err != nil {
			return nil, fmt.Errorf("operand %d: %w", i, err)
		}
		out = append(out, v)
	}

	return out, nil
}

func (r *Runner) prefixLines(prefix string, src io.Reader) error {
	sc := bufio.NewScanner(src)
	for sc.Scan() {
		if _, err := fmt.Fprintf(r.out, "%s%s\n", prefix, sc.Text()); err != nil {
			return err
		}
	}

	return sc.Err()
}
