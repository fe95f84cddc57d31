package main

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arithgeo/hodgeriemann/chow"
)

var flagChartOut string

func init() {
	chartCmd.Flags().StringVarP(&flagChartOut, "out", "o", "signatures.html", "output HTML file")
}

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render the dimension and signature profiles as an HTML chart",
	Long: `Runs both checkers for the given bounds and renders an interactive
line chart of the graded dimensions and the expected versus observed
signature sequences. The chart is written as a standalone HTML file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		geo, err := chow.CheckGeometric(flagM, flagN)
		if err != nil {
			return err
		}
		arith, err := chow.CheckArithmetic(flagM, flagN)
		if err != nil {
			return err
		}

		page := components.NewPage().SetPageTitle("Graded signature profile")
		page.AddCharts(
			profileChart("Geometric ring", geo),
			profileChart("Arithmetic extension", arith),
		)

		f, err := os.Create(flagChartOut)
		if err != nil {
			return fmt.Errorf("create chart file: %w", err)
		}
		defer f.Close()
		if err := page.Render(f); err != nil {
			return fmt.Errorf("render chart: %w", err)
		}

		logger.Debug("chart written",
			zap.String("path", flagChartOut),
			zap.Bool("geometric_ok", geo.OK),
			zap.Bool("arithmetic_ok", arith.OK),
		)
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", flagChartOut)

		if !geo.OK {
			return &checkFailedError{grade: geo.FailedGrade, singular: geo.Singular}
		}
		if !arith.OK {
			return &checkFailedError{grade: arith.FailedGrade, singular: arith.Singular}
		}

		return nil
	},
}

// profileChart builds one line chart: graded dimensions plus expected and
// observed signatures over the checked grades.
func profileChart(title string, report *chow.Report) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("m=%d n=%d", report.M, report.N),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	grades := make([]string, len(report.Dimensions))
	for p := range grades {
		grades[p] = fmt.Sprintf("%d", p)
	}
	line.SetXAxis(grades)

	dims := make([]opts.LineData, len(report.Dimensions))
	for p, d := range report.Dimensions {
		dims[p] = opts.LineData{Value: d}
	}
	line.AddSeries("dimension", dims)

	expected := make([]opts.LineData, len(report.Expected))
	for p, s := range report.Expected {
		expected[p] = opts.LineData{Value: s}
	}
	line.AddSeries("expected signature", expected)

	actual := make([]opts.LineData, len(report.Actual))
	for p, s := range report.Actual {
		actual[p] = opts.LineData{Value: s}
	}
	line.AddSeries("observed signature", actual)

	return line
}
