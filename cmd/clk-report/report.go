//nolint:wrapcheck
package main

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/urfave/cli/v3"

	clkwise "github.com/skirrithan/Clkwise"
)

const outputFile = "clkwise-report.jsonl"

var (
	errNotDirectory  = errors.New("not a directory")
	errNoReportFiles = errors.New("no .rpt or .txt report files found")
)

func reportCommand() *cli.Command {
	return &cli.Command{
		Name:      "report",
		Usage:     "Scan a folder of timing reports and write a clkwise JSONL report",
		ArgsUsage: "<folder>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "redact-path",
				Usage: "Strip file paths from the report",
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"j"},
				Usage:   "Number of concurrent workers",
				Value:   runtime.NumCPU(),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return errors.New("expected exactly one argument: folder path")
			}

			folder := cmd.Args().First()
			redact := cmd.Bool("redact-path")
			workers := max(cmd.Int("workers"), 1)

			return runReport(ctx, folder, redact, workers)
		},
	}
}

func runReport(_ context.Context, folder string, redact bool, workers int) error {
	info, err := os.Stat(folder)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%q: %w", folder, errNotDirectory)
	}

	files, err := collectReportFiles(folder)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return fmt.Errorf("%q: %w", folder, errNoReportFiles)
	}

	startTime := time.Now()
	results := make([]Record, len(files))

	var (
		waitGroup sync.WaitGroup
		progress  atomic.Int64
	)

	sem := make(chan struct{}, workers)

	for idx, filePath := range files {
		waitGroup.Add(1)
		sem <- struct{}{}

		go func(idx int, filePath string) {
			defer waitGroup.Done()
			defer func() { <-sem }()

			results[idx] = processFile(filePath)

			done := progress.Add(1)
			fmt.Fprintf(os.Stderr, "[%d/%d] %s\n", done, len(files), filePath)
		}(idx, filePath)
	}

	waitGroup.Wait()

	// Write results in file order.
	out, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer out.Close()

	enc := json.NewEncoder(out)
	failed := 0

	var totalParse, totalClassify time.Duration

	for idx := range results {
		record := &results[idx]

		if record.Error != "" {
			failed++
		}

		if record.Timing != nil {
			totalParse += millisToDuration(record.Timing.ParseMs)
			totalClassify += millisToDuration(record.Timing.ClassifyMs)
		}

		if redact {
			record.File = ""
		}

		if err := enc.Encode(record); err != nil {
			slog.Error("writing record", "file", files[idx], "error", err)
		}
	}

	out.Close()

	// Compress.
	if err := compressFile(outputFile); err != nil {
		slog.Error("compressing report", "error", err)
	}

	elapsed := time.Since(startTime)
	minutes := int(elapsed.Minutes())
	seconds := int(elapsed.Seconds()) % 60

	fmt.Fprintf(os.Stderr, "\nDone: %d reports in %dm %ds (%d failed)\n", len(files), minutes, seconds, failed)
	fmt.Fprintf(os.Stderr, "Report written to %s (and %s.gz)\n", outputFile, outputFile)

	analyzed := len(files) - failed

	fmt.Fprintf(os.Stderr, "\n--- Timing ---\n")
	fmt.Fprintf(os.Stderr, "  Wall clock:  %s\n", elapsed.Truncate(time.Millisecond))
	fmt.Fprintf(os.Stderr, "  parse:       %s (cumulative)\n", totalParse.Truncate(time.Millisecond))
	fmt.Fprintf(os.Stderr, "  classify:    %s (cumulative)\n", totalClassify.Truncate(time.Millisecond))

	if analyzed > 0 {
		fmt.Fprintf(os.Stderr, "  avg/report:  %s (parse: %s, classify: %s)\n",
			(totalParse+totalClassify)/time.Duration(analyzed),
			totalParse/time.Duration(analyzed),
			totalClassify/time.Duration(analyzed),
		)
	}

	// Print digest summary.
	fmt.Fprintln(os.Stderr)

	return runDigest(outputFile, "")
}

func processFile(filePath string) Record {
	timing := &RecordTiming{}

	data, err := os.ReadFile(filePath) //nolint:gosec // CLI tool opens user-specified report files
	if err != nil {
		return Record{File: filePath, Error: fmt.Sprintf("read failed: %v", err)}
	}

	text := strings.ToValidUTF8(string(data), "�")
	if strings.TrimSpace(text) == "" {
		return Record{File: filePath, Error: "empty report"}
	}

	parseStart := time.Now()
	summary := clkwise.Parse(text)
	timing.ParseMs = durationMs(time.Since(parseStart))

	classifyStart := time.Now()
	simplified := clkwise.Simplify(summary, clkwise.DefaultOptions())
	timing.ClassifyMs = durationMs(time.Since(classifyStart))

	return Record{
		File:   filePath,
		Timing: timing,
		Metrics: &RecordMetrics{
			Wns:    summary.WNS,
			Tns:    summary.TNS,
			Paths:  len(summary.Violations),
			Clocks: len(summary.Clocks),
			Checks: len(summary.Checks),
		},
		Simplified: simplified,
	}
}

func collectReportFiles(folder string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(folder, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() {
			return nil
		}

		switch strings.ToLower(filepath.Ext(path)) {
		case ".rpt", ".txt":
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %q: %w", folder, err)
	}

	return files, nil
}

func compressFile(path string) error {
	in, err := os.Open(path) //nolint:gosec // compressing our own output file
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(path + ".gz")
	if err != nil {
		return err
	}
	defer out.Close()

	gz := gzip.NewWriter(out)
	if _, err := io.Copy(gz, in); err != nil {
		return err
	}

	return gz.Close()
}

func durationMs(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func millisToDuration(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}
