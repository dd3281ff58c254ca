// Package main is the command-line front end for the formula compiler.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/alexgaiv/formula"
)

// Set via -ldflags at build time.
var version = "dev"

var log *zap.SugaredLogger

var rootCmd = &cobra.Command{
	Use:   "formula",
	Short: "Compile and evaluate single-variable arithmetic formulas",
	Long: `formula compiles arithmetic formulas in the variable x, like
"2x^2 - sin(x)/3", and evaluates them at given points or over ranges.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("debug")
		log = newLogger(debug)
	},
}

var evalCmd = &cobra.Command{
	Use:   "eval EXPR...",
	Short: "Evaluate formulas at one or more values of x",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runEval,
}

var tableCmd = &cobra.Command{
	Use:   "table EXPR",
	Short: "Tabulate a formula over a range of x",
	Args:  cobra.ExactArgs(1),
	RunE:  runTable,
}

var runCmd = &cobra.Command{
	Use:   "run JOBFILE",
	Short: "Tabulate every formula listed in a YAML job file",
	Args:  cobra.ExactArgs(1),
	RunE:  runJob,
}

var funcsCmd = &cobra.Command{
	Use:   "funcs",
	Short: "List the recognized function names and symbols",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range formula.FuncNames() {
			fmt.Println(name)
		}
		fmt.Printf("delimiters: %s\nvariable: x\n", formula.Delimiters)
	},
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Read formulas from stdin and evaluate each line",
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

func init() {
	rootCmd.Version = version
	rootCmd.PersistentFlags().Bool("debug", false, "verbose logging")
	rootCmd.PersistentFlags().Bool("echo", false, "print compiled instruction sequences")

	evalCmd.Flags().Float64Slice("at", []float64{0}, "value of x (any number of times)")
	tableCmd.Flags().Float64("from", -1, "start of the x range")
	tableCmd.Flags().Float64("to", 1, "end of the x range")
	tableCmd.Flags().Int("samples", 21, "number of samples, endpoints included")
	replCmd.Flags().Float64Slice("at", []float64{0}, "value of x (any number of times)")

	rootCmd.AddCommand(evalCmd, tableCmd, runCmd, funcsCmd, replCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the CLI logger. Debug raises verbosity.
func newLogger(debug bool) *zap.SugaredLogger {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("04:05.000")
	lg, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	lvl := zapcore.InfoLevel
	if debug {
		lvl = zapcore.DebugLevel
	}
	lg = lg.WithOptions(zap.IncreaseLevel(lvl), zap.AddStacktrace(zapcore.FatalLevel))
	return lg.Sugar()
}

// compile wraps formula.Compile with logging and the --echo flag.
func compile(cmd *cobra.Command, src string) (*formula.Program, error) {
	prog, err := formula.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", src, err)
	}
	log.Debugw("compiled", "src", src, "instructions", len(prog.Tokens()))
	if echo, _ := cmd.Flags().GetBool("echo"); echo {
		fmt.Printf("%s : %s\n", src, prog)
	}
	return prog, nil
}

func runEval(cmd *cobra.Command, args []string) error {
	at, _ := cmd.Flags().GetFloat64Slice("at")
	for _, src := range args {
		prog, err := compile(cmd, src)
		if err != nil {
			return err
		}
		for _, x := range at {
			fmt.Printf("%g\n", prog.Eval(x))
		}
	}
	return nil
}

func runTable(cmd *cobra.Command, args []string) error {
	from, _ := cmd.Flags().GetFloat64("from")
	to, _ := cmd.Flags().GetFloat64("to")
	samples, _ := cmd.Flags().GetInt("samples")
	if samples < 1 {
		return fmt.Errorf("samples (%d) must be positive", samples)
	}
	prog, err := compile(cmd, args[0])
	if err != nil {
		return err
	}
	printTable(prog.Sample(from, to, samples))
	return nil
}

func runRepl(cmd *cobra.Command, args []string) error {
	at, _ := cmd.Flags().GetFloat64Slice("at")
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		prog, err := compile(cmd, line)
		if err != nil {
			log.Error(err)
			continue
		}
		for _, x := range at {
			fmt.Printf("%g\n", prog.Eval(x))
		}
	}
	return sc.Err()
}

func printTable(pts []formula.Point) {
	for _, pt := range pts {
		fmt.Printf("%g\t%g\n", pt.X, pt.Y)
	}
}
