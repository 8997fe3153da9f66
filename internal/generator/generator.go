// Package generator produces synthetic roll records for the analyzer.
package generator

import (
	"errors"

	"github.com/suderio/luckydice/internal/dice"
	"github.com/suderio/luckydice/internal/record"
)

// DefaultNames is the fixed cast of people rolls are attributed to.
var DefaultNames = []string{"Pablo", "Byron", "Max", "Demetrius", "Belinda", "Arya"}

// DefaultRows is how many trials a generated file holds.
const DefaultRows = 100

// Config controls a generation run. Zero fields take the defaults.
type Config struct {
	Rows  int
	Pips  int
	Dice  int
	Names []string
	// Progress, if set, is called once per generated row.
	Progress func()
}

func (c Config) withDefaults() Config {
	if c.Rows == 0 {
		c.Rows = DefaultRows
	}
	if c.Pips == 0 {
		c.Pips = dice.DefaultPips
	}
	if c.Dice == 0 {
		c.Dice = 2
	}
	if len(c.Names) == 0 {
		c.Names = DefaultNames
	}
	return c
}

// Generate rolls cfg.Rows trials, each by a random person, numbered from 1.
func Generate(cfg Config, src dice.Source) ([]record.Record, error) {
	cfg = cfg.withDefaults()
	if cfg.Rows < 0 {
		return nil, errors.New("generator: row count must not be negative")
	}
	if src == nil {
		src = dice.CryptoSource{}
	}

	roller, err := dice.NewRoller(cfg.Dice, cfg.Pips, src)
	if err != nil {
		return nil, err
	}

	records := make([]record.Record, 0, cfg.Rows)
	for i := 1; i <= cfg.Rows; i++ {
		records = append(records, record.Record{
			Index:  i,
			Person: cfg.Names[src.IntN(len(cfg.Names))],
			Pips:   cfg.Pips,
			Rolls:  roller.GenerateSet(),
		})
		if cfg.Progress != nil {
			cfg.Progress()
		}
	}
	return records, nil
}
