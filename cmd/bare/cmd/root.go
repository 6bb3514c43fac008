package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/barescript-org/barescript/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "bare",
	Short: "BareScript interpreter and linter",
	Long: `bare runs BareScript, the scripting language embedded in markdown
documents to drive data transformations and rendering.

Scripts run from .bare files, inline code, or the fenced barescript code
blocks of a markdown document.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, version.GitCommit, version.BuildDate))
}
