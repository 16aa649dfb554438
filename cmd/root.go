package cmd

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/m96-chan/fluentmoji/fluent"
	"github.com/m96-chan/fluentmoji/internal/app"
	"github.com/m96-chan/fluentmoji/internal/clipboard"
	"github.com/m96-chan/fluentmoji/internal/config"
	"github.com/m96-chan/fluentmoji/internal/consts"
	"github.com/m96-chan/fluentmoji/internal/logger"
	"github.com/m96-chan/fluentmoji/internal/render"
	"github.com/m96-chan/fluentmoji/internal/shortcode"
)

// Build information, set by main.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// ErrNoInput is returned when there is nothing to convert.
var ErrNoInput = errors.New("no emoji given: pass emoji as arguments, on stdin, or use -paste, -search or -pick")

// Run parses CLI flags, sets up logging and config, and converts the
// requested emoji.
func Run() error {
	return run(os.Args[1:], os.Stdin, os.Stdout, clipboard.System{})
}

type flags struct {
	configPath string
	logPath    string
	logLevel   string
	style      string
	skinTone   string
	baseURL    string
	format     string
	color      string
	all        bool
	search     string
	limit      int
	copy       bool
	paste      bool
	pick       bool
	version    bool
}

func parseFlags(args []string, out io.Writer) (*flags, []string, error) {
	var f flags
	fs := flag.NewFlagSet(consts.Name, flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprintf(out, "Usage: %s [flags] [emoji|:shortcode: ...]\n\n", consts.Name)
		fs.PrintDefaults()
	}

	fs.StringVar(&f.configPath, "config-path", config.DefaultPath(), "path to config file")
	fs.StringVar(&f.logPath, "log-path", logger.DefaultPath(), "path to log file")
	fs.StringVar(&f.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	fs.StringVar(&f.style, "style", "", "asset style (3d, color, flat, high-contrast)")
	fs.StringVar(&f.skinTone, "skin-tone", "", "skin tone (default, light, medium-light, medium, medium-dark, dark)")
	fs.StringVar(&f.baseURL, "base-url", "", "base URL of the asset repository")
	fs.StringVar(&f.format, "format", "", "output format (url, json, markdown, html, slack)")
	fs.StringVar(&f.color, "color", "", "colorize output (auto, always, never)")
	fs.BoolVar(&f.all, "all", false, "print every style and skin tone variant")
	fs.StringVar(&f.search, "search", "", "list emoji whose name matches the query")
	fs.IntVar(&f.limit, "limit", 0, "maximum number of search results")
	fs.BoolVar(&f.copy, "copy", false, "copy the output to the clipboard")
	fs.BoolVar(&f.paste, "paste", false, "read emoji from the clipboard")
	fs.BoolVar(&f.pick, "pick", false, "choose an emoji interactively")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return &f, fs.Args(), nil
}

// applyFlags overrides config values with the flags that were given.
func applyFlags(cfg *config.Config, f *flags) error {
	if f.style != "" {
		s, err := fluent.ParseStyle(f.style)
		if err != nil {
			return err
		}
		cfg.DefaultStyle = s
	}
	if f.skinTone != "" {
		t, err := fluent.ParseSkinTone(f.skinTone)
		if err != nil {
			return err
		}
		cfg.DefaultSkinTone = t
	}
	if f.baseURL != "" {
		cfg.BaseURL = f.baseURL
	}
	if f.format != "" {
		cfg.Output.Format = f.format
	}
	if f.color != "" {
		cfg.Output.Color = f.color
	}
	if f.limit != 0 {
		cfg.Search.Limit = f.limit
	}
	return config.Validate(cfg)
}

func run(args []string, stdin io.Reader, stdout io.Writer, clip clipboard.Clipboard) error {
	f, inputs, err := parseFlags(args, stdout)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if f.version {
		fmt.Fprintf(stdout, "%s %s (commit %s, built %s)\n", consts.Name, Version, Commit, Date)
		return nil
	}

	level, err := logger.ParseLevel(f.logLevel)
	if err != nil {
		return err
	}
	closeLog, err := logger.Setup(f.logPath, level)
	if err != nil {
		return err
	}
	defer closeLog()

	slog.Info("starting "+consts.Name, "config", f.configPath, "log", f.logPath)

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	if err := applyFlags(cfg, f); err != nil {
		return err
	}

	conv := fluent.New(fluent.WithConfig(cfg.Fluent()))

	if (f.copy || f.paste) && !clipboard.Available(clip) {
		return clipboard.ErrNoProvider
	}

	var entries []render.Entry
	switch {
	case f.pick:
		res, ok, err := app.New(cfg, conv, clip).Run()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		entries = []render.Entry{{Input: res.Emoji.Character, Result: res, OK: true}}
	case f.search != "":
		entries = searchEntries(conv, cfg, f.search)
	default:
		if f.paste {
			text, err := clip.ReadText()
			if err != nil {
				return err
			}
			inputs = append(inputs, strings.Fields(text)...)
		}
		if len(inputs) == 0 && !isTerminal(stdin) {
			if inputs, err = readInputs(stdin); err != nil {
				return err
			}
		}
		if len(inputs) == 0 {
			return ErrNoInput
		}
		entries = convertEntries(conv, cfg, inputs, f.all)
	}

	opts := render.Options{
		Format:      cfg.Output.Format,
		Color:       useColor(cfg.Output.Color, stdout) && !f.copy,
		SyntaxTheme: cfg.Output.SyntaxTheme,
	}

	if !f.copy {
		return render.Write(stdout, entries, opts)
	}

	var buf bytes.Buffer
	if err := render.Write(&buf, entries, opts); err != nil {
		return err
	}
	if err := clip.WriteText(strings.TrimRight(buf.String(), "\n")); err != nil {
		return err
	}
	_, err = stdout.Write(buf.Bytes())
	return err
}

// convertEntries resolves each input, expanding :shortcode: arguments first.
func convertEntries(conv *fluent.Converter, cfg *config.Config, inputs []string, all bool) []render.Entry {
	var entries []render.Entry
	for _, in := range inputs {
		emoji := shortcode.Expand(in)

		if all {
			variants := conv.Variants(emoji)
			if len(variants) == 0 {
				entries = append(entries, render.Entry{Input: in})
			}
			for _, res := range variants {
				entries = append(entries, render.Entry{Input: in, Result: res, OK: true})
			}
			continue
		}

		res, ok := conv.Resolve(fluent.Options{
			Emoji:    emoji,
			SkinTone: cfg.DefaultSkinTone,
		})
		if !ok {
			entries = append(entries, render.Entry{Input: in})
			continue
		}
		entries = append(entries, render.Entry{Input: in, Result: res, OK: true})
	}
	return entries
}

// searchEntries resolves the best name matches for query.
func searchEntries(conv *fluent.Converter, cfg *config.Config, query string) []render.Entry {
	matches := conv.Search(query, cfg.Search.Limit)
	entries := make([]render.Entry, 0, len(matches))
	for _, e := range matches {
		res, ok := conv.Resolve(fluent.Options{
			Emoji:    e.Character,
			SkinTone: cfg.DefaultSkinTone,
		})
		entries = append(entries, render.Entry{Input: e.Character, Result: res, OK: ok})
	}
	slog.Debug("search", "query", query, "results", len(entries))
	return entries
}

// readInputs reads whitespace-separated emoji from r.
func readInputs(r io.Reader) ([]string, error) {
	var inputs []string
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		inputs = append(inputs, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return inputs, nil
}

// useColor resolves the color mode for w.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return isTerminal(w)
	}
}

// isTerminal reports whether v is a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
