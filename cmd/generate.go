/*
Copyright © 2026 Paulo Suderio
*/
package cmd

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/suderio/luckydice/internal/generator"
	"github.com/suderio/luckydice/internal/record"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate [file]",
	Short: "Write a file of random roll records",
	Long: `Generates roll records, each a pair of d6 rolls attributed to a random
person, and writes them as CSV rows of index, name, pips and rolls.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := viper.GetString("data_file")
		if len(args) == 1 {
			path = args[0]
		}

		seed, _ := cmd.Flags().GetUint64("seed")
		quiet, _ := cmd.Flags().GetBool("quiet")
		cfg := generator.Config{
			Rows:  viper.GetInt("rows"),
			Names: viper.GetStringSlice("names"),
		}
		if cfg.Rows <= 0 {
			return fmt.Errorf("rows must be positive, got %d", cfg.Rows)
		}

		if !quiet {
			bar := progressbar.NewOptions(cfg.Rows,
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionSetDescription("Rolling"),
				progressbar.OptionClearOnFinish(),
			)
			cfg.Progress = func() { _ = bar.Add(1) }
		}

		records, err := generator.Generate(cfg, sourceFor(seed))
		if err != nil {
			return err
		}
		if err := record.WriteFile(path, records); err != nil {
			return err
		}

		logger.Debug("generated roll records", zap.String("path", path), zap.Int("rows", len(records)))
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d rolls to %s\n", len(records), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().Int("rows", generator.DefaultRows, "Number of rolls to generate")
	generateCmd.Flags().StringSlice("names", generator.DefaultNames, "People the rolls are attributed to")
	generateCmd.Flags().Uint64("seed", 0, "Seed for reproducible output (0 uses crypto/rand)")
	generateCmd.Flags().BoolP("quiet", "q", false, "Do not show a progress bar")
	_ = viper.BindPFlag("rows", generateCmd.Flags().Lookup("rows"))
	_ = viper.BindPFlag("names", generateCmd.Flags().Lookup("names"))
}
