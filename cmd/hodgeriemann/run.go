package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arithgeo/hodgeriemann/chow"
)

// checkFailedError distinguishes a failed relation (exit 1) from a usage
// or structural error (exit 2).
type checkFailedError struct {
	grade    int
	singular bool
}

func (e *checkFailedError) Error() string {
	if e.singular {
		return fmt.Sprintf("check failed: degenerate pairing form at grade %d", e.grade)
	}

	return fmt.Sprintf("check failed: signature mismatch at grade %d", e.grade)
}

var geometricCmd = &cobra.Command{
	Use:   "geometric",
	Short: "Check the signature pattern of the classical ring",
	Long: `Checks that every graded pairing form of the classical ring with
bounds (m, n) is non-singular with the signature predicted by the
Gaussian-binomial Hilbert series.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := chow.CheckGeometric(flagM, flagN)
		if err != nil {
			return err
		}

		return printReport(cmd, "geometric", report)
	},
}

var arithmeticCmd = &cobra.Command{
	Use:   "arithmetic",
	Short: "Check the signature pattern of the extended ring",
	Long: `Checks the arithmetic extension: each grade's block form combines
the harmonic-weighted self-pairing with the classical cross-pairing
against the previous grade, oriented by an alternating sign.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := chow.CheckArithmetic(flagM, flagN)
		if err != nil {
			return err
		}

		return printReport(cmd, "arithmetic", report)
	},
}

// printReport logs the outcome and converts a failed report into the
// exit-1 error. The offending matrix is printed so a failure is
// reproducible evidence, not just a flag.
func printReport(cmd *cobra.Command, kind string, report *chow.Report) error {
	logger.Debug("run finished",
		zap.String("kind", kind),
		zap.Int("m", report.M),
		zap.Int("n", report.N),
		zap.Ints("dimensions", report.Dimensions),
		zap.Ints("expected", report.Expected),
		zap.Ints("actual", report.Actual),
	)

	if report.OK {
		fmt.Fprintf(cmd.OutOrStdout(), "OK %s m=%d n=%d grades=%d signatures=%v\n",
			kind, report.M, report.N, len(report.Expected), report.Actual)

		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s m=%d n=%d grade=%d\n",
		kind, report.M, report.N, report.FailedGrade)
	if report.FailedGrade >= 0 && report.FailedGrade < len(report.Matrices) {
		fmt.Fprintln(cmd.OutOrStdout(), report.Matrices[report.FailedGrade])
	}

	return &checkFailedError{grade: report.FailedGrade, singular: report.Singular}
}
