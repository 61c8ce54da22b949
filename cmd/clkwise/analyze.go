//nolint:wrapcheck
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/farcloser/primordium/fault"

	clkwise "github.com/skirrithan/Clkwise"
)

var errAnalyzeArgs = errors.New(`expected exactly one argument: report path or "-" for stdin`)

func analyzeCommand() *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Usage:     "Parse a timing report and classify its worst violations",
		ArgsUsage: "<report.rpt | ->",
		Flags: append(thresholdFlags(),
			&cli.IntFlag{
				Name:    "top",
				Aliases: []string{"n"},
				Usage:   "Number of issues to print (0 = all)",
				Value:   3,
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: console, json, markdown",
				Value:   "console",
			},
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write <stem>.summary.json and <stem>.simplified.json next to the report",
				Value:   true,
			},
		),
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("%w: got %d", errAnalyzeArgs, cmd.NArg())
			}

			reportPath := cmd.Args().First()

			text, err := readReport(reportPath)
			if err != nil {
				return err
			}

			summary, simplified := clkwise.Analyze(text, thresholdOptions(cmd))

			if cmd.Bool("write") && reportPath != "-" {
				stem := strings.TrimSuffix(reportPath, filepath.Ext(reportPath))

				if err := writeJSON(stem+".summary.json", summary); err != nil {
					return err
				}

				if err := writeJSON(stem+".simplified.json", simplified); err != nil {
					return err
				}
			}

			fmt.Printf("WNS=%s TNS=%s paths=%d\n",
				formatMetric(summary.WNS), formatMetric(summary.TNS), len(summary.Violations))

			return outputSimplified(reportPath, simplified, cmd.Int("top"), cmd.String("format"))
		},
	}
}

func thresholdFlags() []cli.Flag {
	defaults := clkwise.DefaultOptions()

	return []cli.Flag{
		&cli.FloatFlag{
			Name:  "skew-fraction",
			Usage: "Fraction of the requirement above which clock skew dominates",
			Value: defaults.SkewFraction,
		},
		&cli.FloatFlag{
			Name:  "skew-minor-fraction",
			Usage: "Lower bucket boundary for the skew character",
			Value: defaults.SkewMinorFraction,
		},
		&cli.IntFlag{
			Name:  "max-hints",
			Usage: "Maximum fix hints per issue",
			Value: defaults.MaxFixHints,
		},
	}
}

func thresholdOptions(cmd *cli.Command) clkwise.Options {
	return clkwise.Options{
		SkewFraction:      cmd.Float("skew-fraction"),
		SkewMinorFraction: cmd.Float("skew-minor-fraction"),
		MaxFixHints:       cmd.Int("max-hints"),
	}
}

// readReport loads report text from a file or stdin, replacing invalid
// UTF-8 and rejecting empty input.
func readReport(source string) (string, error) {
	var (
		data []byte
		err  error
	)

	if source == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(source) //nolint:gosec // CLI tool opens user-specified report files
	}

	if err != nil {
		return "", fmt.Errorf("%w: %w", fault.ErrReadFailure, err)
	}

	text := strings.ToValidUTF8(string(data), "�")
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: empty report %q", fault.ErrMissingRequirements, source)
	}

	return text, nil
}

func writeJSON(path string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil { //nolint:gosec // report artifacts are not sensitive
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

func formatMetric(v *float64) string {
	if v == nil {
		return "n/a"
	}

	return strconv.FormatFloat(*v, 'f', 3, 64)
}
