//nolint:wrapcheck
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/farcloser/primordium/fault"

	clkwise "github.com/skirrithan/Clkwise"
	"github.com/skirrithan/Clkwise/internal/types"
)

var errSimplifyArgs = errors.New("expected exactly one argument: path to a summary JSON file")

// simplifyCommand runs the classification stage alone, over a previously
// written timing summary.
func simplifyCommand() *cli.Command {
	return &cli.Command{
		Name:      "simplify",
		Usage:     "Classify a previously parsed timing summary",
		ArgsUsage: "<summary.json>",
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
		),
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("%w: got %d", errSimplifyArgs, cmd.NArg())
			}

			summaryPath := cmd.Args().First()

			data, err := os.ReadFile(summaryPath) //nolint:gosec // CLI tool opens user-specified summary files
			if err != nil {
				return fmt.Errorf("%w: %w", fault.ErrReadFailure, err)
			}

			var summary types.TimingSummary
			if err := json.Unmarshal(data, &summary); err != nil {
				return fmt.Errorf("%w: %w", fault.ErrInvalidJSON, err)
			}

			simplified := clkwise.Simplify(&summary, thresholdOptions(cmd))

			stem := strings.TrimSuffix(summaryPath, filepath.Ext(summaryPath))
			stem = strings.TrimSuffix(stem, ".summary")

			if err := writeJSON(stem+".simplified.json", simplified); err != nil {
				return err
			}

			return outputSimplified(summaryPath, simplified, cmd.Int("top"), cmd.String("format"))
		},
	}
}
