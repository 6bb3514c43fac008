package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/barescript-org/barescript/pkg/cli"
	"github.com/barescript-org/barescript/pkg/markdown"
	"github.com/barescript-org/barescript/pkg/runtime"
	"github.com/barescript-org/barescript/pkg/script"
)

var (
	inlineCode    string
	maxStatements int
	debugLog      bool
	libraryRoot   string
	variables     []string
	fetchTimeout  time.Duration
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a BareScript file, inline code, or a markdown document",
	Long: `Execute a BareScript program.

Examples:
  # Run a script file
  bare run script.bare

  # Evaluate inline code
  bare run -c 'return 1 + 2 * 3'

  # Run every fenced barescript block of a markdown document
  bare run report.md

  # Pass string variables to the script
  bare run --var name=Alice greeting.bare`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&inlineCode, "code", "c", "", "run inline code instead of reading from a file")
	runCmd.Flags().IntVarP(&maxStatements, "max-statements", "s", script.DefaultMaxStatements,
		"maximum statement dispatches (0 disables the budget)")
	runCmd.Flags().BoolVarP(&debugLog, "debug", "d", false, "print debugLog output to stderr")
	runCmd.Flags().StringVar(&libraryRoot, "lib", "", "root location for system includes (<url>)")
	runCmd.Flags().StringArrayVarP(&variables, "var", "v", nil, "set a string global, as name=value")
	runCmd.Flags().DurationVar(&fetchTimeout, "fetch-timeout", 30*time.Second, "timeout for fetchText/fetchJSON requests")
}

// executeOptions builds the execution options from the command flags
func executeOptions() *script.ExecuteOptions {
	options := &script.ExecuteOptions{
		MaxStatements: maxStatements,
		FetchFn:       runtime.HTTPFetchFn(fetchTimeout),
	}
	if debugLog {
		options.LogFn = func(text string) {
			fmt.Fprintln(os.Stderr, text)
		}
	}
	return options
}

// newGlobals creates the globals environment with --var bindings applied
func newGlobals() (*script.Object, error) {
	globals := script.NewObjectMap()
	for _, pair := range variables {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, errors.Errorf("invalid --var %q, expected name=value", pair)
		}
		globals.Set(name, script.NewString(value))
	}
	return globals, nil
}

func runScript(_ *cobra.Command, args []string) error {
	globals, err := newGlobals()
	if err != nil {
		return err
	}
	options := executeOptions()
	resolver := cli.NewIncludeResolver(libraryRoot)

	// Inline code
	if inlineCode != "" {
		parsed, err := script.ParseScript(inlineCode)
		if err != nil {
			return err
		}
		resolved, err := resolver.Resolve(parsed, ".")
		if err != nil {
			return err
		}
		result, err := script.Execute(resolved, globals, options)
		if err != nil {
			return err
		}
		printResult(result)
		return nil
	}

	if len(args) == 0 {
		return errors.New("a script file or -c code is required")
	}
	filename := args[0]
	source, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "reading %q", filename)
	}

	// Markdown documents execute their script blocks in document order,
	// sharing one globals environment
	if strings.HasSuffix(strings.ToLower(filename), ".md") {
		var result script.Value
		for _, block := range markdown.ScriptBlocks(source) {
			lines := strings.Split(block.Text, "\n")
			parsed, err := script.ParseScriptLines(lines, block.StartLine)
			if err != nil {
				return errors.Wrapf(err, "%s", filename)
			}
			resolved, err := resolver.Resolve(parsed, filename)
			if err != nil {
				return err
			}
			result, err = script.Execute(resolved, globals, options)
			if err != nil {
				return errors.Wrapf(err, "%s", filename)
			}
		}
		printResult(result)
		return nil
	}

	parsed, err := script.ParseScript(string(source))
	if err != nil {
		return errors.Wrapf(err, "%s", filename)
	}
	resolved, err := resolver.Resolve(parsed, filename)
	if err != nil {
		return err
	}
	result, err := script.Execute(resolved, globals, options)
	if err != nil {
		return errors.Wrapf(err, "%s", filename)
	}
	printResult(result)
	return nil
}

// printResult prints a non-null script return value
func printResult(result script.Value) {
	if !result.IsNull() {
		fmt.Println(result.String())
	}
}
