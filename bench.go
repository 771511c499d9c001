package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// ErrRoundTripMismatch is returned when decompressed data differs from its input.
var ErrRoundTripMismatch = errors.New("decompressed data differs from input")

// Runs the compress/decompress harness over a set of inputs
type Bench struct {
	config  *Config
	codec   *LZWCodec
	fetcher *Fetcher
	inDir   string
	outDir  string
	out     io.Writer
	logger  *log.Logger
}

// Creates a new harness reading from inDir and writing under outDir
func NewBench(config *Config, inDir, outDir string, out io.Writer) *Bench {
	return &Bench{
		config:  config,
		codec:   NewLZWCodec(config.Format, 0),
		fetcher: NewFetcher(config),
		inDir:   inDir,
		outDir:  outDir,
		out:     out,
		logger:  log.New(os.Stdout, "[Bench] ", log.LstdFlags),
	}
}

// Runs the harness for each extension (or URL) and returns the reports
func (b *Bench) Run(ctx context.Context, inputs []string) ([]Report, error) {
	for _, dir := range []string{"compressed", "decompressed"} {
		if err := os.MkdirAll(filepath.Join(b.outDir, dir), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output folder: %w", err)
		}
	}

	reports := make([]Report, 0, len(inputs))
	for _, input := range inputs {
		if err := ctx.Err(); err != nil {
			return reports, err
		}

		report, err := b.runOne(ctx, input)
		if err != nil {
			return reports, fmt.Errorf("%s: %w", input, err)
		}

		DisplayReport(b.out, report)
		reports = append(reports, report)
	}

	return reports, nil
}

func (b *Bench) runOne(ctx context.Context, input string) (Report, error) {
	name, data, err := b.readInput(ctx, input)
	if err != nil {
		return Report{}, err
	}

	suffix := outputSuffix(input)
	compressedPath := filepath.Join(b.outDir, "compressed", "file_compressed"+suffix+".lzw")
	decompressedPath := filepath.Join(b.outDir, "decompressed", "file_decompressed"+suffix)

	var sw Stopwatch
	report := Report{Name: name, OriginalSize: int64(len(data))}

	sw.Start()
	compressed, err := b.codec.Encode(data)
	if err == nil {
		err = os.WriteFile(compressedPath, compressed, 0o644)
	}
	report.CompressTime = sw.Stop()
	if err != nil {
		return Report{}, err
	}
	report.CompressedSize = int64(len(compressed))
	b.logger.Printf("Compressed \t%s \t in %.5f seconds", suffix, report.CompressTime.Seconds())

	sw.Start()
	decompressed, err := b.codec.Decode(compressed)
	if err == nil {
		err = os.WriteFile(decompressedPath, decompressed, 0o644)
	}
	report.DecompressTime = sw.Stop()
	if err != nil {
		return Report{}, err
	}
	b.logger.Printf("Decompressed \t%s \t in %.5f seconds", suffix, report.DecompressTime.Seconds())

	if !bytes.Equal(decompressed, data) {
		return Report{}, ErrRoundTripMismatch
	}

	return report, nil
}

// Loads an input given as an extension (resolved to <in>/file<ext>) or a URL
func (b *Bench) readInput(ctx context.Context, input string) (string, []byte, error) {
	if IsRemote(input) {
		data, err := b.fetcher.FetchWithRateLimit(ctx, input)
		return input, data, err
	}

	name := filepath.Join(b.inDir, "file"+input)
	data, err := os.ReadFile(name)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read input: %w", err)
	}

	return name, data, nil
}

// Suffix used to name output files: the extension itself, or the URL's
// base name
func outputSuffix(input string) string {
	if !IsRemote(input) {
		return input
	}

	base := filepath.Base(input)
	if base == "." || base == "/" || base == "" {
		return "_remote"
	}
	return "_" + base
}
