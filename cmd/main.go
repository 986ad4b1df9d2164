// shortid is a small CLI that prints short, URL-safe random or
// time-ordered IDs.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/eduardolat/shortid"
	"github.com/eduardolat/shortid/internal/config"
	"github.com/eduardolat/shortid/internal/output"
	"github.com/eduardolat/shortid/internal/version"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// ASCII art banner for the CLI
const banner = `
     _                _   _     _
 ___| |__   ___  _ __| |_(_) __| |
/ __| '_ \ / _ \| '__| __| |/ _` + "`" + ` |
\__ \ | | | (_) | |  | |_| | (_| |
|___/_| |_|\___/|_|   \__|_|\__,_|
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// deps are the collaborators run needs; tests replace them
type deps struct {
	generator *shortid.Generator
	writer    output.WriterProvider
}

func defaultDeps() deps {
	return deps{
		generator: shortid.NewGenerator(),
		writer:    output.New(),
	}
}

func run(args []string, stdout, stderr io.Writer) int {
	return runWithDeps(args, stdout, stderr, defaultDeps())
}

func runWithDeps(args []string, stdout, stderr io.Writer, d deps) int {
	fs := flag.NewFlagSet("shortid", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Define CLI flags
	configPath := fs.String("config", config.DefaultConfigPath, "Path to the configuration file")
	ordered := fs.Bool("ordered", false, "Generate time-ordered IDs (8-byte timestamp prefix)")
	numBytes := fs.Int("bytes", shortid.DefaultBytes, "Bytes per ID (1-32, or 8-32 with --ordered)")
	count := fs.Int("count", config.DefaultCount, "Number of IDs to generate")
	outputPath := fs.String("output", "", "Write IDs atomically to this file instead of stdout")
	showVersion := fs.Bool("version", false, "Show version information and exit")
	debug := fs.Bool("debug", false, "Enable debug logging (most verbose)")
	quiet := fs.Bool("quiet", false, "Show only warnings and errors")
	silent := fs.Bool("silent", false, "Show only errors (most quiet)")

	fs.Usage = func() {
		fmt.Fprint(stderr, banner)
		fmt.Fprintf(stderr, "\nShort, URL-safe ID generator\n\n")
		fmt.Fprintf(stderr, "Usage:\n")
		fmt.Fprintf(stderr, "  shortid [options]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  shortid                        # One random 14-character ID\n")
		fmt.Fprintf(stderr, "  shortid --ordered --count 5    # Five time-ordered IDs\n")
		fmt.Fprintf(stderr, "  shortid --bytes 16             # 22-character ID from 16 bytes\n")
		fmt.Fprintf(stderr, "  shortid --count 100 --output ids.txt\n")
		fmt.Fprintf(stderr, "\nExit Codes:\n")
		fmt.Fprintf(stderr, "  0  Success\n")
		fmt.Fprintf(stderr, "  1  Failure (invalid arguments or configuration)\n")
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return ExitSuccess
		}
		return ExitFailure
	}

	// Show version and exit
	if *showVersion {
		fmt.Fprint(stdout, banner)
		fmt.Fprintf(stdout, "Version: %s\n", version.Version)
		fmt.Fprintf(stdout, "Commit:  %s\n", version.Commit)
		fmt.Fprintf(stdout, "Built:   %s\n", version.Date)
		fmt.Fprintln(stdout)
		return ExitSuccess
	}

	// Setup logger with hierarchy: debug > default > quiet > silent.
	// IDs go to stdout, so logs go to stderr.
	var logLevel slog.Level
	switch {
	case *debug:
		logLevel = slog.LevelDebug
	case *silent:
		logLevel = slog.LevelError
	case *quiet:
		logLevel = slog.LevelWarn
	default:
		logLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	// An explicit --config must exist; the default path is optional
	var cfg *config.Config
	var err error
	if set["config"] {
		cfg, err = config.Load(*configPath)
	} else {
		cfg, err = config.LoadOptional(*configPath)
	}
	if err != nil {
		logger.Error("failed to load configuration",
			"path", *configPath,
			"error", err)
		return ExitFailure
	}

	// Flags override configuration
	isOrdered := cfg.Defaults.IsOrdered()
	if set["ordered"] {
		isOrdered = *ordered
	}
	n := cfg.Defaults.GetBytes()
	if set["bytes"] {
		n = *numBytes
	}
	total := cfg.Defaults.GetCount()
	if set["count"] {
		total = *count
	}
	dest := cfg.Output.Path
	if set["output"] {
		dest = *outputPath
	}

	if err := config.ValidateBytes(n, isOrdered); err != nil {
		logger.Error("invalid byte count", "bytes", n, "ordered", isOrdered, "error", err)
		return ExitFailure
	}
	if err := config.ValidateCount(total); err != nil {
		logger.Error("invalid count", "count", total, "error", err)
		return ExitFailure
	}

	logger.Debug("generating IDs",
		"version", version.Version,
		"ordered", isOrdered,
		"bytes", n,
		"length", shortid.EncodedLen(n),
		"count", total)

	ids := make([]string, 0, total)
	for range total {
		var id string
		if isOrdered {
			id, err = d.generator.NewOrderedWithBytes(n)
		} else {
			id, err = d.generator.NewWithBytes(n)
		}
		if err != nil {
			logger.Error("failed to generate ID", "ordered", isOrdered, "error", err)
			return ExitFailure
		}
		ids = append(ids, id)
	}

	if dest == "" {
		if _, err := stdout.Write(output.Render(ids)); err != nil {
			logger.Error("failed to write IDs", "error", err)
			return ExitFailure
		}
		return ExitSuccess
	}

	result, err := d.writer.WriteAtomic(dest, ids, cfg.Output.GetFileMode())
	if err != nil {
		logger.Error("failed to write output file",
			"path", dest,
			"error", err)
		return ExitFailure
	}

	logger.Info("IDs written",
		"path", result.Path,
		"count", result.Lines)
	return ExitSuccess
}
