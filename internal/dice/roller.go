package dice

import "fmt"

const (
	// LuckyTotal is the sum a roll must hit to count as lucky.
	LuckyTotal = 7
	// MaxDice caps how many dice a live roller holds.
	MaxDice = 1000
)

// Rule decides whether a set of rolled values is lucky.
type Rule interface {
	Match(rolls []int, pips int) (bool, error)
}

// Roller is an ordered collection of dice rolled together.
type Roller struct {
	dice []*Die
}

// NewRoller builds diceCount fresh dice with pipsCount faces each.
func NewRoller(diceCount, pipsCount int, src Source) (*Roller, error) {
	if diceCount <= 0 || diceCount > MaxDice {
		return nil, fmt.Errorf("%w: got %d, want 1 to %d", ErrInvalidCount, diceCount, MaxDice)
	}
	if src == nil {
		src = CryptoSource{}
	}
	dice := make([]*Die, 0, diceCount)
	for i := 0; i < diceCount; i++ {
		d, err := NewDie(pipsCount, src)
		if err != nil {
			return nil, err
		}
		dice = append(dice, d)
	}
	return &Roller{dice: dice}, nil
}

// NewRollerWithDice uses the given dice verbatim. Dice may have different
// face counts when reconstructed from mixed historical data.
func NewRollerWithDice(dice []*Die) *Roller {
	return &Roller{dice: dice}
}

// DiceCount is the number of dice in the roller.
func (r *Roller) DiceCount() int {
	return len(r.dice)
}

// PipsCount is the face count of the first die, or 0 for an empty roller.
func (r *Roller) PipsCount() int {
	if len(r.dice) == 0 {
		return 0
	}
	return r.dice[0].MaxPips()
}

// Dice returns the dice in roll order.
func (r *Roller) Dice() []*Die {
	return r.dice
}

// GenerateSet rolls every die once and returns the values in die order.
func (r *Roller) GenerateSet() []int {
	set := make([]int, len(r.dice))
	for i, d := range r.dice {
		set[i] = d.Roll()
	}
	return set
}

// Lucky rolls all dice and reports whether they sum to exactly LuckyTotal.
// Each call rolls again, so the answer only repeats for pinned dice.
func (r *Roller) Lucky() bool {
	return Sum(r.GenerateSet()) == LuckyTotal
}

// LuckyBy rolls all dice once and checks the set against rule.
// A nil rule behaves like Lucky.
func (r *Roller) LuckyBy(rule Rule) (bool, error) {
	return IsLucky(r.GenerateSet(), r.PipsCount(), rule)
}

// IsLucky judges an already rolled set. A nil rule means the set must sum
// to LuckyTotal.
func IsLucky(set []int, pips int, rule Rule) (bool, error) {
	if rule == nil {
		return Sum(set) == LuckyTotal, nil
	}
	return rule.Match(set, pips)
}

// Sum adds up a rolled set.
func Sum(set []int) int {
	total := 0
	for _, v := range set {
		total += v
	}
	return total
}
