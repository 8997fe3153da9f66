/*
Copyright © 2026 Paulo Suderio
*/
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/suderio/luckydice/internal/analyzer"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Rank people by how lucky their recorded rolls were",
	Long: `Reads a roll record file and prints the common number of trials
(the smallest trial count of any person), the luckiest person and
everybody ordered from luckiest to least lucky.

A file that cannot be read is reported and analyzed as empty.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := viper.GetString("data_file")
		if len(args) == 1 {
			path = args[0]
		}

		opts := []analyzer.Option{analyzer.WithLogger(logger)}
		rule, err := compileRule(ruleExpression(cmd))
		if err != nil {
			return err
		}
		if rule != nil {
			opts = append(opts, analyzer.WithRule(rule))
		}

		report := analyzer.New(path, opts...).Report()

		format, _ := cmd.Flags().GetString("output")
		out := cmd.OutOrStdout()
		switch format {
		case "text":
			return report.WriteText(out)
		case "yaml":
			return report.WriteYAML(out)
		case "pretty":
			return writePretty(out, report)
		default:
			return fmt.Errorf("unknown output format %q (want text, yaml or pretty)", format)
		}
	},
}

func writePretty(w io.Writer, r analyzer.Report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Common number of trials: %d\n", r.CommonTrials)
	if r.Luckiest != "" {
		fmt.Fprintf(&b, "Luckiest: %s\n\n", luckyStyle.Render(r.Luckiest))
	}
	for i, name := range r.LuckyOrder {
		fmt.Fprintf(&b, "%2d. %-12s %4d%%  %s\n", i+1, name, r.Percentages[name],
			infoStyle.Render(fmt.Sprintf("(%d trials)", r.Trials[name])))
	}

	view := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(" Luck Analysis "),
		boxStyle.Render(strings.TrimRight(b.String(), "\n")),
	)
	_, err := fmt.Fprintln(w, view)
	return err
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("output", "o", "text", "Output format: text, yaml or pretty")
	analyzeCmd.Flags().String("rule", "", "CEL expression deciding luck (default: total == 7)")
}
