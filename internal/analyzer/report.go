package analyzer

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Report is the summary printed after an analysis.
type Report struct {
	Source       string         `yaml:"source"`
	CommonTrials int            `yaml:"common_number_of_trials"`
	Luckiest     string         `yaml:"luckiest,omitempty"`
	LuckyOrder   []string       `yaml:"lucky_order"`
	Percentages  map[string]int `yaml:"lucky_percentage"`
	Trials       map[string]int `yaml:"trials"`
}

// Report collects the derived statistics.
func (a *Analyzer) Report() Report {
	luckiest, _ := a.Luckiest()
	order := a.LuckyOrder()
	if order == nil {
		order = []string{}
	}
	return Report{
		Source:       a.source,
		CommonTrials: a.CommonNumberOfTrials(),
		Luckiest:     luckiest,
		LuckyOrder:   order,
		Percentages:  a.PersonToLuckyPercentage(),
		Trials:       a.NameToCounts(),
	}
}

// WriteText prints the common trial count, the luckiest person and the
// luck order, one per line, in that sequence.
func (r Report) WriteText(w io.Writer) error {
	luckiest := r.Luckiest
	if luckiest == "" {
		luckiest = "-"
	}
	_, err := fmt.Fprintf(w, "%d\n%s\n[%s]\n", r.CommonTrials, luckiest, strings.Join(r.LuckyOrder, ", "))
	return err
}

// WriteYAML encodes the full report as YAML.
func (r Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return enc.Close()
}
