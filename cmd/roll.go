/*
Copyright © 2026 Paulo Suderio
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/suderio/luckydice/internal/dice"
	"github.com/suderio/luckydice/internal/parser"
	"github.com/suderio/luckydice/internal/rules"
)

// rollCmd represents the roll command
var rollCmd = &cobra.Command{
	Use:   "roll [NdS]",
	Short: "Roll a set of dice and check whether it is lucky",
	Long: `Rolls N dice with S faces each (2d6 when omitted) and reports every
face value and whether the set is lucky. A set is lucky when it sums
to exactly 7, unless --rule supplies another CEL expression over
rolls, total, pips and count.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		notation := "2d6"
		if len(args) == 1 {
			notation = args[0]
		}
		expr, err := parser.Parse(notation)
		if err != nil {
			return err
		}

		seed, _ := cmd.Flags().GetUint64("seed")
		times, _ := cmd.Flags().GetInt("times")
		if times <= 0 {
			return fmt.Errorf("--times must be positive, got %d", times)
		}

		rule, err := compileRule(ruleExpression(cmd))
		if err != nil {
			return err
		}

		roller, err := dice.NewRoller(expr.Count, expr.Sides, sourceFor(seed))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf(" Rolling %s ", expr)))
		for i := 0; i < times; i++ {
			set := roller.GenerateSet()
			lucky, err := dice.IsLucky(set, expr.Sides, rule)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%v = %d  %s\n", set, dice.Sum(set), verdict(lucky))
		}
		logger.Debug("rolled", zap.Stringer("dice", expr), zap.Int("times", times), zap.Uint64("seed", seed))
		return nil
	},
}

// ruleExpression prefers the --rule flag over the configured lucky_rule.
func ruleExpression(cmd *cobra.Command) string {
	if cmd.Flags().Changed("rule") {
		expr, _ := cmd.Flags().GetString("rule")
		return expr
	}
	return viper.GetString("lucky_rule")
}

// compileRule returns a nil Rule for the built-in sum-to-seven check.
func compileRule(expression string) (dice.Rule, error) {
	if expression == "" || expression == rules.DefaultExpression {
		return nil, nil
	}
	reg, err := rules.NewRegistry()
	if err != nil {
		return nil, err
	}
	rule, err := reg.Compile(expression)
	if err != nil {
		return nil, err
	}
	return rule, nil
}

func init() {
	rootCmd.AddCommand(rollCmd)

	rollCmd.Flags().Uint64("seed", 0, "Seed for reproducible rolls (0 uses crypto/rand)")
	rollCmd.Flags().IntP("times", "n", 1, "How many times to roll")
	rollCmd.Flags().String("rule", "", "CEL expression deciding luck (default: total == 7)")
}
