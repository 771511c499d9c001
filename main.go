package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/branila/lzwcast/lzw"
)

const usage = `usage: lzwcast <command> [flags] [args]

commands:
  bench [-format f] [-in dir] [-out dir] ext|url...   compress, decompress and report on each input
  compress [-format f] in out                         compress a single file
  decompress [-format f] in out                       decompress a single file
  serve [-addr a] [-chunk n] [-format f] dir          stream files from dir over WebSocket
  listen [-url u] [-format f] [-o out] file           receive and decode a file stream
`

var defaultExtensions = []string{".doc", ".docx", ".pdf", ".png", ".jpg", ".gif", ".bmp", ".mp3", ".wav"}

// Registers the flags shared by every command
func newFlagSet(name string, config *Config) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	format := fs.String("format", config.Format.String(), "code layout: fixed or packed")
	return fs, format
}

// Parses args into fs and applies the -format flag to config
func parseFlags(fs *flag.FlagSet, format *string, config *Config, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}

	f, err := lzw.ParseFormat(*format)
	if err != nil {
		return err
	}
	config.Format = f
	return nil
}

func runBench(ctx context.Context, config *Config, args []string, out io.Writer) error {
	fs, format := newFlagSet("bench", config)
	inDir := fs.String("in", "res", "directory holding file<ext> inputs")
	outDir := fs.String("out", ".", "directory receiving compressed/ and decompressed/")
	fs.DurationVar(&config.FetchInterval, "fetch-interval", config.FetchInterval, "minimum delay between remote fetches")
	if err := parseFlags(fs, format, config, args); err != nil {
		return err
	}

	inputs := fs.Args()
	if len(inputs) == 0 {
		inputs = defaultExtensions
	}

	_, err := NewBench(config, *inDir, *outDir, out).Run(ctx, inputs)
	return err
}

func runFile(config *Config, args []string, compress bool) error {
	name := "decompress"
	if compress {
		name = "compress"
	}

	fs, format := newFlagSet(name, config)
	if err := parseFlags(fs, format, config, args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("%s: expected input and output paths", name)
	}

	in, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	codec := NewLZWCodec(config.Format, 0)
	transform := codec.Decode
	if compress {
		transform = codec.Encode
	}

	var sw Stopwatch
	sw.Start()
	result, err := transform(in)
	elapsed := sw.Stop()
	if err != nil {
		return err
	}

	if err := os.WriteFile(fs.Arg(1), result, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	log.Printf("%sed %s -> %s bytes in %.5f seconds", name, FormatCount(int64(len(in))), FormatCount(int64(len(result))), elapsed.Seconds())
	return nil
}

func runServe(ctx context.Context, config *Config, args []string) error {
	fs, format := newFlagSet("serve", config)
	fs.StringVar(&config.Addr, "addr", config.Addr, "listen address")
	fs.IntVar(&config.ChunkSize, "chunk", config.ChunkSize, "uncompressed bytes per frame")
	if err := parseFlags(fs, format, config, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("serve: expected a directory")
	}
	if config.ChunkSize <= 0 {
		return fmt.Errorf("serve: chunk size must be positive")
	}

	server, err := NewServer(config, fs.Arg(0))
	if err != nil {
		return err
	}
	defer server.Close()

	return server.ListenAndServe(ctx)
}

func runListen(ctx context.Context, config *Config, args []string, out io.Writer) error {
	fs, format := newFlagSet("listen", config)
	fs.StringVar(&config.URL, "url", config.URL, "stream endpoint")
	output := fs.String("o", "", "write the received file here")
	if err := parseFlags(fs, format, config, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("listen: expected a file name")
	}

	data, err := NewClient(config, out).Run(ctx, fs.Arg(0))
	if err != nil {
		return err
	}

	if *output != "" {
		if err := os.WriteFile(*output, data, 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// Dispatches args to a command
func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("missing command\n%s", usage)
	}

	config := DefaultConfig()
	switch args[0] {
	case "bench":
		return runBench(ctx, config, args[1:], out)
	case "compress":
		return runFile(config, args[1:], true)
	case "decompress":
		return runFile(config, args[1:], false)
	case "serve":
		return runServe(ctx, config, args[1:])
	case "listen":
		return runListen(ctx, config, args[1:], out)
	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if IsInterrupted(err) {
			return
		}
		log.Fatalf("lzwcast: %v", err)
	}
}
