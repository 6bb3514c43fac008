package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/barescript-org/barescript/pkg/script"
)

var parseInline string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a script and print its lowered statement model as JSON",
	Long: `Parse a BareScript program and print the lowered statement model.

The printed model is the shared JSON representation: structured control flow
appears as the labels and jumps the parser lowers it to.`,
	Args: cobra.MaximumNArgs(1),
	RunE: parseScript,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseInline, "code", "c", "", "parse inline code instead of reading from a file")
}

func parseScript(_ *cobra.Command, args []string) error {
	source := parseInline
	if source == "" {
		if len(args) == 0 {
			return errors.New("a script file or -c code is required")
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			return errors.Wrapf(err, "reading %q", args[0])
		}
		source = string(data)
	}

	parsed, err := script.ParseScript(source)
	if err != nil {
		return err
	}
	model, err := json.MarshalIndent(script.ScriptModel(parsed), "", "    ")
	if err != nil {
		return err
	}
	fmt.Println(string(model))
	return nil
}
