package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// jobFile is the schema of a YAML batch job: a list of formulas, each
// with the range to tabulate it over.
type jobFile struct {
	Formulas []jobFormula `yaml:"formulas"`
}

type jobFormula struct {
	// Expr is the formula source.
	Expr string `yaml:"expr"`
	// From and To bound the x range, endpoints included.
	From float64 `yaml:"from"`
	To   float64 `yaml:"to"`
	// Samples is the number of evaluation points; default 21.
	Samples int `yaml:"samples"`
}

func loadJob(path string) (*jobFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var job jobFile
	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for i, f := range job.Formulas {
		if f.Expr == "" {
			return nil, fmt.Errorf("%s: formula %d has no expr", path, i)
		}
		if f.Samples == 0 {
			job.Formulas[i].Samples = 21
		} else if f.Samples < 0 {
			return nil, fmt.Errorf("%s: formula %d: samples (%d) must be positive", path, i, f.Samples)
		}
	}
	return &job, nil
}

func runJob(cmd *cobra.Command, args []string) error {
	job, err := loadJob(args[0])
	if err != nil {
		return err
	}
	log.Debugw("loaded job", "path", args[0], "formulas", len(job.Formulas))
	for _, f := range job.Formulas {
		prog, err := compile(cmd, f.Expr)
		if err != nil {
			return err
		}
		fmt.Printf("# %s\n", f.Expr)
		printTable(prog.Sample(f.From, f.To, f.Samples))
	}
	return nil
}
