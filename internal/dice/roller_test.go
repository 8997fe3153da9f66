package dice

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSetLength(t *testing.T) {
	src := NewSeededSource(1)
	for n := 1; n <= 10; n++ {
		r, err := NewRoller(n, 6, src)
		require.NoError(t, err)
		set := r.GenerateSet()
		assert.Len(t, set, n)
		for _, v := range set {
			assert.GreaterOrEqual(t, v, 1)
			assert.LessOrEqual(t, v, 6)
		}
	}
}

func TestRollerPipsSum(t *testing.T) {
	r, err := NewRoller(2, 4, nil)
	require.NoError(t, err)

	sum := 0
	for _, d := range r.Dice() {
		sum += d.MaxPips()
	}
	assert.Equal(t, 8, sum)
	assert.Equal(t, 2, r.DiceCount())
	assert.Equal(t, 4, r.PipsCount())
}

func TestRollerRejectsInvalidCount(t *testing.T) {
	_, err := NewRoller(0, 6, nil)
	assert.ErrorIs(t, err, ErrInvalidCount)

	_, err = NewRoller(MaxDice+1, 6, nil)
	assert.ErrorIs(t, err, ErrInvalidCount)

	_, err = NewRoller(math.MaxInt, 6, nil)
	assert.ErrorIs(t, err, ErrInvalidCount)

	_, err = NewRoller(2, 0, nil)
	assert.ErrorIs(t, err, ErrInvalidPips)
}

func fixedRoller(t *testing.T, pips int, values ...int) *Roller {
	t.Helper()
	dice := make([]*Die, 0, len(values))
	for _, v := range values {
		d, err := NewFixedDie(pips, v)
		require.NoError(t, err)
		dice = append(dice, d)
	}
	return NewRollerWithDice(dice)
}

func TestRollerWithDiceUsesGivenDice(t *testing.T) {
	d6, err := NewFixedDie(6, 2)
	require.NoError(t, err)
	d8, err := NewFixedDie(8, 5)
	require.NoError(t, err)

	r := NewRollerWithDice([]*Die{d6, d8})
	assert.Equal(t, 2, r.DiceCount())
	assert.Equal(t, 6, r.PipsCount())
	assert.Equal(t, []int{2, 5}, r.GenerateSet())
	assert.True(t, r.Lucky())
}

func TestLuckyReplaysFixedDice(t *testing.T) {
	lucky := fixedRoller(t, 6, 3, 4)
	for i := 0; i < 5; i++ {
		assert.True(t, lucky.Lucky())
	}

	unlucky := fixedRoller(t, 6, 1, 1)
	assert.False(t, unlucky.Lucky())
}

func TestLuckyOtherDiceCounts(t *testing.T) {
	assert.False(t, fixedRoller(t, 6, 6).Lucky())
	assert.True(t, fixedRoller(t, 6, 1, 2, 4).Lucky())
}

func TestLuckyConsumesFreshRolls(t *testing.T) {
	r, err := NewRoller(2, 6, NewSequenceSource(3, 4, 1, 1))
	require.NoError(t, err)

	assert.True(t, r.Lucky())
	assert.False(t, r.Lucky())
}

type ruleFunc func(rolls []int, pips int) (bool, error)

func (f ruleFunc) Match(rolls []int, pips int) (bool, error) { return f(rolls, pips) }

func TestLuckyByRule(t *testing.T) {
	r := fixedRoller(t, 6, 6, 6)

	doubles := ruleFunc(func(rolls []int, _ int) (bool, error) {
		return rolls[0] == rolls[1], nil
	})
	ok, err := r.LuckyBy(doubles)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.LuckyBy(nil)
	require.NoError(t, err)
	assert.False(t, ok)

	boom := errors.New("boom")
	_, err = r.LuckyBy(ruleFunc(func([]int, int) (bool, error) { return false, boom }))
	assert.ErrorIs(t, err, boom)
}

func TestIsLuckyJudgesGivenSet(t *testing.T) {
	ok, err := IsLucky([]int{6, 1}, 6, nil)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = IsLucky([]int{6, 6}, 6, nil)
	require.NoError(t, err)
	assert.False(t, ok)

	maxed := ruleFunc(func(rolls []int, pips int) (bool, error) {
		return rolls[0] == pips, nil
	})
	ok, err = IsLucky([]int{6, 6}, 6, maxed)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, 12, Sum([]int{6, 6}))
	assert.Equal(t, 0, Sum(nil))
}
