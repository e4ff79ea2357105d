package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/term"
	"pkt.systems/mcbook"
	"pkt.systems/version"
)

const (
	defaultInputFile  = "text.txt"
	defaultOutputFile = "makebook.mcfunction"
)

func init() {
	version.SetDefaultModule("pkt.systems/mcbook")
}

func main() {
	var (
		title        string
		author       string
		mcVersion    string
		outPath      string
		inlineTitles bool
		maxPages     int
		workers      int
		listVersions bool
		quiet        bool
		verbose      bool
	)

	flags := pflag.NewFlagSet("mcbook", pflag.ExitOnError)
	flags.StringVarP(&title, "title", "t", "", "Book title (prompted for on a terminal when empty)")
	flags.StringVarP(&author, "author", "a", "", "Book author (prompted for on a terminal when empty)")
	flags.StringVarP(&mcVersion, "mc-version", "m", mcbook.DefaultVersion, "Target Minecraft version")
	flags.StringVarP(&outPath, "output", "o", defaultOutputFile, "Output file, - for stdout")
	flags.BoolVar(&inlineTitles, "inline-titles", false, "Use the first line of every book as its title")
	flags.IntVar(&maxPages, "max-pages", 0, "Start a new book after this many pages (0 disables)")
	flags.IntVar(&workers, "workers", 0, "Books paginated concurrently (0 uses GOMAXPROCS)")
	flags.BoolVar(&listVersions, "list-versions", false, "List versions with dedicated command syntax")
	flags.BoolVarP(&quiet, "quiet", "q", false, "Suppress warnings")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log every generated book")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: mcbook [flags] [inputs...]\n")
		fmt.Fprintf(os.Stderr, "\nIf no input is provided, %s is read if present, otherwise stdin.\n", defaultInputFile)
		fmt.Fprintf(os.Stderr, "Use %s to split books and %s to force a page break.\n", mcbook.BookEnd, mcbook.PageEnd)
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if listVersions {
		for _, v := range mcbook.SupportedVersions() {
			fmt.Fprintln(os.Stdout, v)
		}
		return
	}

	if _, err := mcbook.DefaultFragmentTables().Resolve(mcVersion); err != nil {
		fmt.Fprintf(os.Stderr, "invalid --mc-version %q: %v\n", mcVersion, err)
		os.Exit(2)
	}

	logger, err := newLogger(verbose, quiet)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	args := flags.Args()
	if len(args) == 0 {
		if _, err := os.Stat(defaultInputFile); err == nil {
			args = []string{defaultInputFile}
		}
	}
	ctx := context.Background()
	manuscript, err := readManuscript(ctx, args, os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read input: %v\n", err)
		os.Exit(1)
	}

	if !readsStdin(args) && isTerminal(os.Stdin) {
		prompt := bufio.NewReader(os.Stdin)
		if title == "" && !inlineTitles {
			title = ask(prompt, os.Stderr, "What is the title of the book?: ")
		}
		if author == "" {
			author = ask(prompt, os.Stderr, "What is the author of the book?: ")
		}
	}

	err = bindBooks(manuscript, outPath, os.Stdout, mcbook.GenerateRequest{
		Title:        title,
		Author:       author,
		Version:      mcVersion,
		InlineTitles: inlineTitles,
		Options: []mcbook.Option{
			mcbook.WithLogger(logger),
			mcbook.WithMaxPages(maxPages),
			mcbook.WithWorkers(workers),
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate: %v\n", err)
		if errors.Is(err, mcbook.ErrInvalidUTF8) || errors.Is(err, mcbook.ErrBinaryInput) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// bindBooks generates every book of manuscript and writes the commands to
// outPath, or to stdout for "-". The output file is created only after all
// books were generated, so rejected input leaves an existing file intact.
func bindBooks(manuscript []byte, outPath string, stdout io.Writer, req mcbook.GenerateRequest) (err error) {
	books, err := mcbook.Books(manuscript, req)
	if err != nil {
		return err
	}
	outPath = strings.TrimSpace(outPath)
	if outPath == "" || outPath == "-" {
		return mcbook.WriteCommands(stdout, books)
	}
	outPath = expandHome(outPath)
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return mcbook.WriteCommands(f, books)
}

func newLogger(verbose, quiet bool) (*zap.Logger, error) {
	if quiet {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	return cfg.Build()
}

func readsStdin(args []string) bool {
	if len(args) == 0 {
		return true
	}
	for _, a := range args {
		if strings.TrimSpace(a) == "-" {
			return true
		}
	}
	return false
}

// ask prints question to w and returns the trimmed answer line.
func ask(r *bufio.Reader, w io.Writer, question string) string {
	fmt.Fprint(w, question)
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
