package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// MaxCount is the most dice a single roll may hold.
	MaxCount = 1000
	// MaxSides is the largest die accepted.
	MaxSides = 1000
)

// ErrNotation is returned for anything that is not NdS notation.
var ErrNotation = errors.New("roll must be: roll [NdS], e.g. roll 2d6")

// Notation is the raw token capture of NdS; digits stay strings so they are
// always read as decimal.
type Notation struct {
	Count string `parser:"@Int?"`
	Sep   string `parser:"@Die"`
	Sides string `parser:"@Int"`
}

// RollerExpr is a parsed NdS roller: Count dice with Sides faces each.
type RollerExpr struct {
	Count int
	Sides int
}

// String renders the expression back in canonical form.
func (e *RollerExpr) String() string {
	return fmt.Sprintf("%dd%d", e.Count, e.Sides)
}

var defaultParser = Build()

// Parse reads roller notation. A missing count means one die.
func Parse(notation string) (*RollerExpr, error) {
	notation = strings.TrimSpace(notation)
	if notation == "" {
		return nil, ErrNotation
	}

	raw, err := defaultParser.ParseString("", notation)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", ErrNotation, err.Error())
	}

	expr := &RollerExpr{Count: 1}
	if raw.Count != "" {
		if expr.Count, err = bounded("dice count", raw.Count, MaxCount); err != nil {
			return nil, err
		}
	}
	if expr.Sides, err = bounded("sides", raw.Sides, MaxSides); err != nil {
		return nil, err
	}
	return expr, nil
}

func bounded(what, digits string, max int) (int, error) {
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 || n > max {
		return 0, fmt.Errorf("%w (%s must be between 1 and %d)", ErrNotation, what, max)
	}
	return n, nil
}
