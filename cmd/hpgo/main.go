package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hpgo/homebuyer-calculator/internal/calculation"
	"github.com/hpgo/homebuyer-calculator/internal/compare"
	"github.com/hpgo/homebuyer-calculator/internal/config"
	"github.com/hpgo/homebuyer-calculator/internal/domain"
	"github.com/hpgo/homebuyer-calculator/internal/output"
	"github.com/hpgo/homebuyer-calculator/internal/taxdata"
	"github.com/hpgo/homebuyer-calculator/internal/transform"
	"github.com/hpgo/homebuyer-calculator/internal/tui"
)

// zapLogger adapts a zap sugared logger to the calculation.Logger port.
type zapLogger struct {
	s *zap.SugaredLogger
}

func (l zapLogger) Debugf(format string, args ...any) { l.s.Debugf(format, args...) }
func (l zapLogger) Infof(format string, args ...any)  { l.s.Infof(format, args...) }
func (l zapLogger) Warnf(format string, args ...any)  { l.s.Warnf(format, args...) }
func (l zapLogger) Errorf(format string, args ...any) { l.s.Errorf(format, args...) }

func newDebugLogger() calculation.Logger {
	zl, err := zap.NewDevelopment()
	if err != nil {
		return calculation.NopLogger{}
	}
	return zapLogger{s: zl.Sugar()}
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "hpgo",
	Short: "Home purchase calculator CLI",
	Long:  "Models the full financial picture of a home purchase: monthly costs, cash to close, tax benefits, a ten-year wealth projection, and rent-vs-buy.",
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "hpgo %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Version)
			}
		},
	}
}

// loadSnapshot resolves the inputs for a run: the built-in defaults when no
// file is given, otherwise the file's base snapshot or a named scenario from
// it. Parser warnings go to stderr so piped report output stays clean.
func loadSnapshot(inputFile, scenarioName string) (domain.InputSnapshot, error) {
	if inputFile == "" {
		if scenarioName != "" {
			return domain.InputSnapshot{}, fmt.Errorf("--scenario requires an input file")
		}
		return domain.DefaultInputs(), nil
	}

	file, warnings, err := config.NewInputParser().LoadFromFile(inputFile)
	if err != nil {
		return domain.InputSnapshot{}, err
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	if scenarioName == "" {
		return file.BaseSnapshot(), nil
	}
	return resolveScenario(file, scenarioName)
}

// resolveScenario applies a scenario's template (if any) and then its
// overrides to the file's base snapshot.
func resolveScenario(file *config.ScenarioFile, name string) (domain.InputSnapshot, error) {
	for _, spec := range file.Scenarios {
		if spec.Name != name {
			continue
		}

		snapshot := file.BaseSnapshot()
		if spec.Template != "" {
			registry := transform.CreateBuiltInTemplates()
			template, ok := registry.Get(spec.Template)
			if !ok {
				return snapshot, fmt.Errorf("scenario %q: unknown template %q", name, spec.Template)
			}
			applied, err := transform.ApplyTemplate(&snapshot, template)
			if err != nil {
				return snapshot, fmt.Errorf("scenario %q: %w", name, err)
			}
			snapshot = *applied
		}

		return applyOverrides(snapshot, spec)
	}
	return domain.InputSnapshot{}, fmt.Errorf("scenario %q not found in %d scenarios", name, len(file.Scenarios))
}

// applyOverrides decodes the scenario's override block onto the snapshot,
// which may already have a template applied.
func applyOverrides(snapshot domain.InputSnapshot, spec config.ScenarioSpec) (domain.InputSnapshot, error) {
	if spec.Overrides.IsZero() {
		return snapshot, nil
	}
	if err := spec.Overrides.Decode(&snapshot); err != nil {
		return snapshot, fmt.Errorf("scenario %q overrides: %w", spec.Name, err)
	}
	return snapshot, nil
}

func engineFor(cmd *cobra.Command) *calculation.Engine {
	engine := calculation.NewEngine()
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		engine.SetLogger(newDebugLogger())
	}
	return engine
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [input-file]",
	Short: "Run the full purchase analysis",
	Long: `Run the full analysis pipeline and print a report.

With no input file the built-in defaults are used. An input file supplies a
base snapshot and optional named scenarios; --scenario selects one.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := ""
		if len(args) > 0 {
			inputFile = args[0]
		}
		scenarioName, _ := cmd.Flags().GetString("scenario")

		snapshot, err := loadSnapshot(inputFile, scenarioName)
		if err != nil {
			log.Fatal(err)
		}

		bundle := engineFor(cmd).Recalculate(snapshot)

		outputFormat, _ := cmd.Flags().GetString("format")
		if err := output.NewReportGenerator().Generate(bundle, outputFormat); err != nil {
			log.Fatal(err)
		}

		if saveBase, _ := cmd.Flags().GetString("save-base"); saveBase != "" {
			if err := output.SaveSnapshot(snapshot, saveBase); err != nil {
				log.Fatal(err)
			}
			fmt.Fprintf(os.Stderr, "saved inputs to %s\n", saveBase)
		}
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate an input file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		_, warnings, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}
		for _, w := range warnings {
			fmt.Printf("warning: %s\n", w)
		}
		fmt.Printf("%s is valid\n", args[0])
	},
}

var affordabilityCmd = &cobra.Command{
	Use:   "affordability [input-file]",
	Short: "Estimate the maximum affordable purchase price",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := ""
		if len(args) > 0 {
			inputFile = args[0]
		}

		snapshot, err := loadSnapshot(inputFile, "")
		if err != nil {
			log.Fatal(err)
		}

		bundle := engineFor(cmd).Recalculate(snapshot)
		a := bundle.Affordability

		fmt.Println("AFFORDABILITY")
		fmt.Println(strings.Repeat("=", 40))
		if a.UsingFallback {
			fmt.Println("No income provided; using the median household income.")
		}
		fmt.Printf("Gross monthly income:  %s\n", output.FormatWholeCurrency(a.GrossMonthly))
		fmt.Printf("Target PITI (28%%):     %s\n", output.FormatWholeCurrency(a.TargetPITI))
		fmt.Printf("Max purchase price:    %s\n", output.FormatWholeCurrency(a.MaxPurchasePrice))
		fmt.Printf("Current target price:  %s\n", output.FormatWholeCurrency(snapshot.PurchasePrice))
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare [input-file]",
	Short: "Compare the base inputs against what-if templates or file scenarios",
	Long: `Compare a base purchase against alternatives.

Examples:
  hpgo compare --with pay-extra-500,down-25
  hpgo compare inputs.yaml --with lump-sum-50k --format csv
  hpgo compare inputs.yaml --scenarios
  hpgo compare --list-templates`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if listTemplates, _ := cmd.Flags().GetBool("list-templates"); listTemplates {
			fmt.Print(transform.GetTemplateHelp(transform.CreateBuiltInTemplates()))
			return
		}

		inputFile := ""
		if len(args) > 0 {
			inputFile = args[0]
		}

		useScenarios, _ := cmd.Flags().GetBool("scenarios")
		templatesStr, _ := cmd.Flags().GetString("with")
		baseName, _ := cmd.Flags().GetString("base")
		outputFormat, _ := cmd.Flags().GetString("format")

		compareEngine := compare.NewCompareEngine(engineFor(cmd))

		var compSet *compare.ComparisonSet
		var err error

		switch {
		case useScenarios:
			compSet, err = compareFileScenarios(compareEngine, inputFile, baseName)

		case templatesStr != "":
			var snapshot domain.InputSnapshot
			snapshot, err = loadSnapshot(inputFile, "")
			if err != nil {
				break
			}
			templateNames := transform.ParseTemplateList(templatesStr)
			if len(templateNames) == 0 {
				err = fmt.Errorf("no valid templates in --with")
				break
			}
			compSet, err = compareEngine.Compare(snapshot, compare.CompareOptions{
				BaseName:  baseName,
				Templates: templateNames,
			})

		default:
			err = fmt.Errorf("nothing to compare: use --with, --scenarios, or --list-templates")
		}
		if err != nil {
			log.Fatal(err)
		}

		compSet.ConfigPath = inputFile
		printComparison(compSet, outputFormat)
	},
}

// compareFileScenarios diffs every scenario in the input file against its
// base snapshot.
func compareFileScenarios(ce *compare.CompareEngine, inputFile, baseName string) (*compare.ComparisonSet, error) {
	if inputFile == "" {
		return nil, fmt.Errorf("--scenarios requires an input file")
	}

	file, warnings, err := config.NewInputParser().LoadFromFile(inputFile)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if len(file.Scenarios) == 0 {
		return nil, fmt.Errorf("%s defines no scenarios", inputFile)
	}

	names := make([]string, 0, len(file.Scenarios))
	alternatives := make([]domain.InputSnapshot, 0, len(file.Scenarios))
	for _, spec := range file.Scenarios {
		snapshot, err := resolveScenario(file, spec.Name)
		if err != nil {
			return nil, err
		}
		names = append(names, spec.Name)
		alternatives = append(alternatives, snapshot)
	}

	return ce.CompareSnapshots(file.BaseSnapshot(), baseName, names, alternatives)
}

func printComparison(compSet *compare.ComparisonSet, format string) {
	switch strings.ToLower(format) {
	case "csv":
		formatter := &compare.CSVFormatter{}
		out, err := formatter.Format(compSet)
		if err != nil {
			log.Fatalf("failed to format CSV: %v", err)
		}
		fmt.Print(out)

	case "json":
		formatter := &compare.JSONFormatter{Pretty: true}
		out, err := formatter.Format(compSet)
		if err != nil {
			log.Fatalf("failed to format JSON: %v", err)
		}
		fmt.Print(out)

	case "table", "console", "":
		formatter := &compare.TableFormatter{}
		fmt.Print(formatter.Format(compSet))

	default:
		log.Fatalf("unknown output format: %s (valid: table, csv, json)", format)
	}
}

var countiesCmd = &cobra.Command{
	Use:   "counties [state]",
	Short: "List known county property-tax rates for a state",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		state := strings.ToUpper(args[0])
		counties := taxdata.CountiesFor(state)
		if len(counties) == 0 {
			meta, ok := taxdata.MetaFor(state)
			if !ok {
				log.Fatalf("unknown state %q", args[0])
			}
			fmt.Printf("No county table for %s; statewide average is %.2f%%\n",
				meta.Name, meta.AvgPropertyTax)
			return
		}

		fmt.Printf("%-20s %s\n", "County", "Property tax")
		for _, c := range counties {
			fmt.Printf("%-20s %.2f%%\n", c.Name, c.Rate)
		}
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui [input-file]",
	Short: "Interactive what-if explorer",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := ""
		if len(args) > 0 {
			inputFile = args[0]
		}

		p := tea.NewProgram(tui.NewModel(inputFile), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			log.Fatalf("TUI failed: %v", err)
		}
	},
}

func init() {
	calculateCmd.Flags().StringP("format", "f", "console", "Output format (console, json, csv)")
	calculateCmd.Flags().String("scenario", "", "Named scenario from the input file to run")
	calculateCmd.Flags().String("save-base", "", "Write the resolved inputs to a YAML file")
	calculateCmd.Flags().Bool("debug", false, "Log pipeline stages")

	affordabilityCmd.Flags().Bool("debug", false, "Log pipeline stages")

	compareCmd.Flags().String("base", "", "Display name for the base inputs")
	compareCmd.Flags().String("with", "", "Comma-separated template names to compare")
	compareCmd.Flags().Bool("scenarios", false, "Compare the scenarios defined in the input file")
	compareCmd.Flags().StringP("format", "f", "table", "Output format (table, csv, json)")
	compareCmd.Flags().Bool("list-templates", false, "List available what-if templates")
	compareCmd.Flags().Bool("debug", false, "Log pipeline stages")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(affordabilityCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(countiesCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
