package cmd

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set through -ldflags "-X"; buildVersion fills the gaps from module info.
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// buildVersion resolves the version triple, preferring linker-injected
// values over what the Go toolchain embedded in the binary.
func buildVersion() (version, commit, date string) {
	version, commit, date = Version, Commit, BuildDate

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version, commit, date
	}
	if version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch {
		case s.Key == "vcs.revision" && commit == "none":
			commit = s.Value
		case s.Key == "vcs.time" && date == "unknown":
			date = s.Value
		}
	}
	return version, commit, date
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the luckydice version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		version, commit, date := buildVersion()
		out := cmd.OutOrStdout()

		if short, _ := cmd.Flags().GetBool("short"); short {
			fmt.Fprintln(out, version)
			return
		}
		fmt.Fprintf(out, "luckydice %s\n", version)
		fmt.Fprintln(out, infoStyle.Render(fmt.Sprintf("commit %s, built %s, %s %s/%s",
			commit, date, runtime.Version(), runtime.GOOS, runtime.GOARCH)))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().Bool("short", false, "Print only the version number")
}
