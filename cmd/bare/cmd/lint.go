package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/barescript-org/barescript/pkg/script"
)

var lintCmd = &cobra.Command{
	Use:   "lint file...",
	Short: "Report statically detectable script defects",
	Args:  cobra.MinimumNArgs(1),
	RunE:  lintScripts,
}

func init() {
	rootCmd.AddCommand(lintCmd)
}

func lintScripts(_ *cobra.Command, args []string) error {
	total := 0
	for _, filename := range args {
		source, err := os.ReadFile(filename)
		if err != nil {
			return errors.Wrapf(err, "reading %q", filename)
		}
		parsed, err := script.ParseScript(string(source))
		if err != nil {
			return errors.Wrapf(err, "%s", filename)
		}
		for _, warning := range script.LintScript(parsed) {
			fmt.Printf("%s: %s\n", filename, warning)
			total++
		}
	}
	if total > 0 {
		return errors.Errorf("%d lint warning(s)", total)
	}
	return nil
}
