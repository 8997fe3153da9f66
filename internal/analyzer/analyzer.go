// Package analyzer computes per-person luck statistics from recorded rolls.
//
// Each record is replayed through a roller of dice pinned to the recorded
// values, so "lucky" is a deterministic check on history rather than a new
// trial. Percentages are normalized by the smallest trial count across all
// people so that nobody is favored just for rolling more often.
package analyzer

import (
	"cmp"
	"maps"
	"math"
	"slices"

	"go.uber.org/zap"

	"github.com/suderio/luckydice/internal/dice"
	"github.com/suderio/luckydice/internal/record"
)

// Analyzer loads roll records once and derives statistics on demand.
// Derived maps are computed on first use and cached.
type Analyzer struct {
	source  string
	records []record.Record
	loadErr error
	ruleErr error

	logger *zap.Logger
	rule   dice.Rule

	personToRollers map[string][]*dice.Roller
	nameToCounts    map[string]int
	percentages     map[string]int
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets where load and evaluation failures are reported.
func WithLogger(l *zap.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithRule replaces the sum-to-seven luck check.
func WithRule(r dice.Rule) Option {
	return func(a *Analyzer) {
		a.rule = r
	}
}

func newAnalyzer(source string, opts []Option) *Analyzer {
	a := &Analyzer{source: source}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = defaultLogger()
	}
	return a
}

func defaultLogger() *zap.Logger {
	l, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// New reads every record in path. A read failure does not stop the caller:
// it is logged, kept in LoadErr, and the analyzer carries on with no data.
func New(path string, opts ...Option) *Analyzer {
	a := newAnalyzer(path, opts)

	records, err := record.ReadFile(path)
	if err != nil {
		a.fail(err)
		return a
	}
	a.records = records
	a.logger.Debug("loaded roll records", zap.String("source", path), zap.Int("records", len(records)))
	return a
}

// NewFromRecords analyzes records already in memory. Invalid records are
// handled like an unreadable file.
func NewFromRecords(records []record.Record, opts ...Option) *Analyzer {
	a := newAnalyzer("memory", opts)
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			a.fail(err)
			return a
		}
	}
	a.records = records
	return a
}

func (a *Analyzer) fail(err error) {
	a.loadErr = err
	a.records = nil
	a.logger.Error("could not load roll records", zap.String("source", a.source), zap.Error(err))
}

// LoadErr is the failure reported while loading, if any.
func (a *Analyzer) LoadErr() error {
	return a.loadErr
}

// RuleErr is the first error a custom luck rule returned, if any.
func (a *Analyzer) RuleErr() error {
	return a.ruleErr
}

// Records returns a copy of the loaded records.
func (a *Analyzer) Records() []record.Record {
	return slices.Clone(a.records)
}

// PersonToRollers groups the records by exact person name, one roller per
// record with dice pinned to the recorded values. The map is a copy;
// changing it leaves the analyzer untouched.
func (a *Analyzer) PersonToRollers() map[string][]*dice.Roller {
	ptr := make(map[string][]*dice.Roller, len(a.rollersByPerson()))
	for name, rollers := range a.rollersByPerson() {
		ptr[name] = slices.Clone(rollers)
	}
	return ptr
}

func (a *Analyzer) rollersByPerson() map[string][]*dice.Roller {
	if a.personToRollers != nil {
		return a.personToRollers
	}

	ptr := make(map[string][]*dice.Roller)
	for _, rec := range a.records {
		dd := make([]*dice.Die, 0, len(rec.Rolls))
		for _, v := range rec.Rolls {
			d, err := dice.NewFixedDie(rec.Pips, v)
			if err != nil {
				// records are validated on load
				panic(err)
			}
			dd = append(dd, d)
		}
		ptr[rec.Person] = append(ptr[rec.Person], dice.NewRollerWithDice(dd))
	}
	a.personToRollers = ptr
	return ptr
}

// Rollers flattens every person's rollers, people in name order.
func (a *Analyzer) Rollers() []*dice.Roller {
	ptr := a.rollersByPerson()
	var out []*dice.Roller
	for _, name := range sortedNames(ptr) {
		out = append(out, ptr[name]...)
	}
	return out
}

// NameToCounts maps each person to their number of trials, as a copy.
func (a *Analyzer) NameToCounts() map[string]int {
	return maps.Clone(a.counts())
}

func (a *Analyzer) counts() map[string]int {
	if a.nameToCounts != nil {
		return a.nameToCounts
	}

	counts := make(map[string]int)
	for _, rec := range a.records {
		counts[rec.Person]++
	}
	a.nameToCounts = counts
	return counts
}

// CommonNumberOfTrials is the smallest trial count of any person, or 0
// when there is no data.
func (a *Analyzer) CommonNumberOfTrials() int {
	lowest := 0
	for _, n := range a.counts() {
		if lowest == 0 || n < lowest {
			lowest = n
		}
	}
	return lowest
}

// PersonToLuckyPercentage is round(100 * lucky rollers / common trials) per
// person. People with more trials than the common count can exceed 100.
// The map is a copy.
func (a *Analyzer) PersonToLuckyPercentage() map[string]int {
	return maps.Clone(a.luckyPercentages())
}

func (a *Analyzer) luckyPercentages() map[string]int {
	if a.percentages != nil {
		return a.percentages
	}

	pct := make(map[string]int)
	common := a.CommonNumberOfTrials()
	if common > 0 {
		for name, rollers := range a.rollersByPerson() {
			lucky := 0
			for _, r := range rollers {
				if a.isLucky(name, r) {
					lucky++
				}
			}
			pct[name] = int(math.Round(float64(lucky) / float64(common) * 100))
		}
	}
	a.percentages = pct
	return pct
}

func (a *Analyzer) isLucky(name string, r *dice.Roller) bool {
	if a.rule == nil {
		return r.Lucky()
	}
	ok, err := r.LuckyBy(a.rule)
	if err != nil {
		if a.ruleErr == nil {
			a.ruleErr = err
			a.logger.Error("luck rule failed, counting roll as unlucky", zap.String("person", name), zap.Error(err))
		}
		return false
	}
	return ok
}

// LuckyOrder lists people by descending lucky percentage. Ties are broken
// by name, ascending.
func (a *Analyzer) LuckyOrder() []string {
	pct := a.luckyPercentages()
	names := sortedNames(pct)
	slices.SortStableFunc(names, func(x, y string) int {
		return cmp.Compare(pct[y], pct[x])
	})
	return names
}

// Luckiest returns the person with the highest percentage, the
// alphabetically first one on a tie. ok is false when there is no data.
func (a *Analyzer) Luckiest() (name string, ok bool) {
	order := a.LuckyOrder()
	if len(order) == 0 {
		return "", false
	}
	return order[0], true
}

func sortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
