// Package dice models single dice and rollers of several dice rolled together.
package dice

import (
	"errors"
	"fmt"
)

// DefaultPips is the face count of a standard die.
const DefaultPips = 6

var (
	// ErrInvalidPips is returned for dice with no faces.
	ErrInvalidPips = errors.New("dice: max pips must be positive")
	// ErrInvalidValue is returned when a fixed value is outside [1, max pips].
	ErrInvalidValue = errors.New("dice: fixed value out of range")
	// ErrInvalidCount is returned for rollers with no dice.
	ErrInvalidCount = errors.New("dice: dice count must be positive")
)

// Die is a bounded random integer generator, optionally pinned to a
// historical value. The number of dots on a face are its "pips".
type Die struct {
	maxPips int
	fixed   int
	pinned  bool
	src     Source
}

// NewDie returns a live die with maxPips faces drawing from src.
// A nil src falls back to CryptoSource.
func NewDie(maxPips int, src Source) (*Die, error) {
	if maxPips <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPips, maxPips)
	}
	if src == nil {
		src = CryptoSource{}
	}
	return &Die{maxPips: maxPips, src: src}, nil
}

// NewFixedDie returns a die that always rolls value. It is used to replay
// historical rolls.
func NewFixedDie(maxPips, value int) (*Die, error) {
	if maxPips <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPips, maxPips)
	}
	if value < 1 || value > maxPips {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidValue, value, maxPips)
	}
	return &Die{maxPips: maxPips, fixed: value, pinned: true}, nil
}

// MaxPips returns the face count.
func (d *Die) MaxPips() int {
	return d.maxPips
}

// Fixed reports the pinned value, if any.
func (d *Die) Fixed() (int, bool) {
	return d.fixed, d.pinned
}

// Roll returns the pinned value or a uniform value in [1, MaxPips].
func (d *Die) Roll() int {
	if d.pinned {
		return d.fixed
	}
	return d.src.IntN(d.maxPips) + 1
}
