package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeJob(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.yaml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestLoadJob(t *testing.T) {
	path := writeJob(t, `
formulas:
  - expr: x^2
    from: -1
    to: 1
    samples: 5
  - expr: sin(x)
    from: 0
    to: 6.28
`)
	job, err := loadJob(path)
	require.NoError(t, err)
	require.Len(t, job.Formulas, 2)
	require.Equal(t, jobFormula{Expr: "x^2", From: -1, To: 1, Samples: 5}, job.Formulas[0])
	// Samples defaults when omitted.
	require.Equal(t, 21, job.Formulas[1].Samples)
}

func TestLoadJobErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"missing-expr", "formulas:\n  - from: 0\n    to: 1\n"},
		{"negative-samples", "formulas:\n  - expr: x\n    samples: -2\n"},
		{"not-yaml", "\tformulas: x\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := loadJob(writeJob(t, c.src))
			require.Error(t, err)
		})
	}
}

func TestLoadJobMissingFile(t *testing.T) {
	_, err := loadJob(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
