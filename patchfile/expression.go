// This file is part of Thumbpatch.
//
// Thumbpatch is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Thumbpatch is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Thumbpatch.  If not, see <https://www.gnu.org/licenses/>.

package patchfile

import (
	"errors"
	"fmt"
	"math"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// resolver evaluates address and limit values. values can be integers or
// expressions that refer to symbols
type resolver struct {
	env map[string]any
}

func newResolver(symbols map[string]int) resolver {
	r := resolver{
		env: make(map[string]any, len(symbols)),
	}
	for k, v := range symbols {
		r.env[k] = v
	}
	return r
}

// value returns the integer value of v, which may be an expression
func (r resolver) value(v any) (int, error) {
	s, ok := v.(string)
	if !ok {
		return toInt(v)
	}

	program, err := expr.Compile(s, expr.Env(r.env), expr.AsInt())
	if err != nil {
		return 0, fmt.Errorf("expression %q: %w", s, err)
	}

	out, err := vm.Run(program, r.env)
	if err != nil {
		return 0, fmt.Errorf("expression %q: %w", s, err)
	}

	return toInt(out)
}

// position returns the value of v if it can be used as a position in an
// image
func (r resolver) position(v any) (int, error) {
	if v == nil {
		return 0, errors.New("missing address")
	}
	n, err := r.value(v)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative address (%d)", n)
	}
	if uint64(n) > math.MaxUint32 {
		return 0, fmt.Errorf("address out of range (%d)", n)
	}
	return n, nil
}

// target returns the value of v if it can be used as a 32 bit address
func (r resolver) target(v any) (uint32, error) {
	if v == nil {
		return 0, errors.New("missing target address")
	}
	n, err := r.value(v)
	if err != nil {
		return 0, err
	}
	if n < 0 || uint64(n) > math.MaxUint32 {
		return 0, fmt.Errorf("target address out of range (%d)", n)
	}
	return uint32(n), nil
}

// toInt converts the numeric types produced by the YAML decoder and the
// expression evaluator
func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		if n > math.MaxInt || n < math.MinInt {
			return 0, fmt.Errorf("value out of range (%d)", n)
		}
		return int(n), nil
	case uint64:
		if n > math.MaxInt {
			return 0, fmt.Errorf("value out of range (%d)", n)
		}
		return int(n), nil
	case int32:
		return int(n), nil
	case uint32:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("value is not an integer (%v)", n)
		}
		if n > math.MaxInt || n < math.MinInt {
			return 0, fmt.Errorf("value out of range (%v)", n)
		}
		return int(n), nil
	case nil:
		return 0, errors.New("missing value")
	}
	return 0, fmt.Errorf("value is not an integer (%v)", v)
}
