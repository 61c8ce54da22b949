//nolint:wrapcheck
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/urfave/cli/v3"
	"gonum.org/v1/gonum/stat"
)

// Severity buckets for a report's worst slack, in ns.
const (
	severeSlackNs   = -2.0
	moderateSlackNs = -0.5
)

func digestCommand() *cli.Command {
	return &cli.Command{
		Name:      "digest",
		Usage:     "Produce a summary digest from a clkwise JSONL report",
		ArgsUsage: "<report.jsonl>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "issue",
				Usage: "Show reports affected by a specific path kind (e.g., reg_to_out, reg_to_reg)",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return errors.New("expected exactly one argument: path to report.jsonl")
			}

			return runDigest(cmd.Args().First(), cmd.String("issue"))
		},
	}
}

func runDigest(reportPath, issueFilter string) error {
	records, err := readRecords(reportPath)
	if err != nil {
		return err
	}

	printDigest(records)

	if issueFilter != "" {
		printIssueDetail(records, issueFilter)
	}

	return nil
}

func readRecords(path string) ([]Record, error) {
	file, err := os.Open(path) //nolint:gosec // CLI tool opens user-specified report files
	if err != nil {
		return nil, fmt.Errorf("opening report: %w", err)
	}
	defer file.Close()

	var records []Record

	scanner := bufio.NewScanner(file)

	const maxLineSize = 4 * 1024 * 1024 // 4MB
	scanner.Buffer(make([]byte, 0, maxLineSize), maxLineSize)

	for scanner.Scan() {
		var rec Record
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			records = append(records, Record{Error: "parse error"})

			continue
		}

		records = append(records, rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}

	return records, nil
}

func printDigest(records []Record) {
	total := len(records)
	failed := 0
	sevDist := map[string]int{"severe": 0, "moderate": 0, "mild": 0, "clean": 0}
	kindDist := map[string]int{}
	delayDist := map[string]int{}
	gapDist := map[string]int{}
	hintDist := map[string]int{}

	var wnsValues []float64

	for i := range records {
		rec := &records[i]

		if rec.Error != "" || rec.Simplified == nil {
			failed++

			continue
		}

		wns := rec.Simplified.Overview.WnsNs

		sevDist[slackSeverity(wns)]++

		if wns != nil {
			wnsValues = append(wnsValues, *wns)
		}

		for j := range rec.Simplified.Issues {
			issue := &rec.Simplified.Issues[j]
			kindDist[string(issue.PathKind)]++
			delayDist[issue.DominantDelay]++

			for _, hint := range issue.FixHints {
				hintDist[hint]++
			}
		}

		for _, gap := range rec.Simplified.SdcGaps {
			gapDist[gap]++
		}
	}

	analyzed := total - failed

	fmt.Println("=== Clkwise Report Digest ===")
	fmt.Println()
	fmt.Printf("Total reports:  %d\n", total)
	fmt.Printf("Failed:         %d\n", failed)
	fmt.Printf("Analyzed:       %d\n", analyzed)
	fmt.Println()

	fmt.Println("--- Worst Slack Severity ---")
	fmt.Printf("  Clean:     %d\n", sevDist["clean"])
	fmt.Printf("  Mild:      %d\n", sevDist["mild"])
	fmt.Printf("  Moderate:  %d\n", sevDist["moderate"])
	fmt.Printf("  Severe:    %d\n", sevDist["severe"])
	fmt.Println()

	if len(wnsValues) > 0 {
		slices.Sort(wnsValues)

		fmt.Println("--- WNS Distribution (ns) ---")
		fmt.Printf("  mean:    %.3f\n", stat.Mean(wnsValues, nil))
		fmt.Printf("  stddev:  %.3f\n", stat.StdDev(wnsValues, nil))
		fmt.Printf("  median:  %.3f\n", stat.Quantile(0.5, stat.Empirical, wnsValues, nil))
		fmt.Printf("  p10:     %.3f\n", stat.Quantile(0.1, stat.Empirical, wnsValues, nil))
		fmt.Printf("  worst:   %.3f\n", wnsValues[0])
		fmt.Println()
	}

	fmt.Println("--- Issues By Path Kind ---")
	printCounts(kindDist, 0)
	fmt.Println()

	fmt.Println("--- Issues By Dominant Delay ---")
	printCounts(delayDist, 0)
	fmt.Println()

	if len(gapDist) > 0 {
		fmt.Println("--- SDC Gaps ---")
		printCounts(gapDist, 0)
		fmt.Println()
	}

	if len(hintDist) > 0 {
		fmt.Println("--- Top Fix Hints ---")
		printCounts(hintDist, 5)
		fmt.Println()
	}
}

func slackSeverity(wns *float64) string {
	switch {
	case wns == nil || *wns >= 0:
		return "clean"
	case *wns < severeSlackNs:
		return "severe"
	case *wns < moderateSlackNs:
		return "moderate"
	default:
		return "mild"
	}
}

type countEntry struct {
	key   string
	count int
}

// printCounts prints a count map sorted descending, limited to top entries
// when top > 0.
func printCounts(dist map[string]int, top int) {
	entries := make([]countEntry, 0, len(dist))
	for key, count := range dist {
		entries = append(entries, countEntry{key: key, count: count})
	}

	slices.SortFunc(entries, func(a, b countEntry) int {
		if a.count != b.count {
			return b.count - a.count
		}

		return strings.Compare(a.key, b.key)
	})

	if top > 0 && len(entries) > top {
		entries = entries[:top]
	}

	for _, entry := range entries {
		fmt.Printf("  %6d  %s\n", entry.count, entry.key)
	}
}

func printIssueDetail(records []Record, kind string) {
	fmt.Println()
	fmt.Printf("--- Reports with %s issues ---\n", kind)

	for i := range records {
		rec := &records[i]
		if rec.Error != "" || rec.Simplified == nil {
			continue
		}

		file := rec.File
		if file == "" {
			file = "(redacted)"
		}

		for j := range rec.Simplified.Issues {
			issue := &rec.Simplified.Issues[j]
			if string(issue.PathKind) != kind {
				continue
			}

			fmt.Printf("  %s\n", file)
			fmt.Printf("    %s  slack %.3fns  %s\n", issue.SignalGroup, issue.WorstSlackNs, issue.DominantDelay)
			fmt.Printf("    %s\n", issue.RootCause)
		}
	}
}
