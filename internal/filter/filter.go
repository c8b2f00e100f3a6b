package filter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dop251/goja"

	"github.com/zetetos/pointcloud/pkg/models"
)

var (
	ErrCompile  = errors.New("compile filter expression")
	ErrEvaluate = errors.New("evaluate filter expression")
)

// Filter selects points with a JavaScript boolean expression. The expression
// sees x, y, z, c, the unpacked colour as r, g, b, and the frame and index of
// the point.
type Filter struct {
	expr    string
	vm      *goja.Runtime
	program *goja.Program
}

// New compiles expr. An empty expression matches every point.
func New(expr string) (*Filter, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return &Filter{}, nil
	}

	program, err := goja.Compile("filter", "("+expr+")", true)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrCompile, expr, err)
	}

	return &Filter{
		expr:    expr,
		vm:      goja.New(),
		program: program,
	}, nil
}

func (f *Filter) String() string {
	return f.expr
}

func (f *Filter) Match(frame, index int, point models.Point) (bool, error) {
	if f.program == nil {
		return true, nil
	}

	colour := point.Colour()
	vars := []struct {
		name  string
		value any
	}{
		{"x", float64(point.X)},
		{"y", float64(point.Y)},
		{"z", float64(point.Z)},
		{"c", int64(point.C)},
		{"r", int64(colour.R)},
		{"g", int64(colour.G)},
		{"b", int64(colour.B)},
		{"frame", frame},
		{"index", index},
	}

	for _, v := range vars {
		err := f.vm.Set(v.name, v.value)
		if err != nil {
			return false, fmt.Errorf("%w: set %s: %w", ErrEvaluate, v.name, err)
		}
	}

	result, err := f.vm.RunProgram(f.program)
	if err != nil {
		return false, fmt.Errorf("%w %q: %w", ErrEvaluate, f.expr, err)
	}

	return result.ToBoolean(), nil
}
