// Command hue colorizes line-oriented text from stdin: inline color
// templates, theme-driven keyword highlighting, automatic URL/version/
// path detection, and optional width formatting.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/dkoosis/hue/internal/browse"
	"github.com/dkoosis/hue/internal/config"
	"github.com/dkoosis/hue/internal/version"
	"github.com/dkoosis/hue/pkg/align"
	"github.com/dkoosis/hue/pkg/autodetect"
	"github.com/dkoosis/hue/pkg/highlight"
	"github.com/dkoosis/hue/pkg/pipeline"
	"github.com/dkoosis/hue/pkg/render"
	"github.com/dkoosis/hue/pkg/theme"
)

// main is the entry point; run() carries the logic so integration tests
// can invoke it without os.Exit terminating the test runner.
func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// Subcommands dispatch before global flag parsing.
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		if args[1] == "theme" {
			return runTheme(args[2:], stdout, stderr)
		}
		fmt.Fprintf(stderr, "Unknown command: %s\n", args[1])
		usage(stderr)
		return 2
	}

	flags, showVersion, err := parseFlags(args[1:], stderr)
	if err != nil {
		return 2
	}
	if showVersion {
		fmt.Fprintln(stdout, version.String())
		return 0
	}

	settings, err := config.Resolve(flags)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	setupLogging(settings.Debug, stderr)

	return runStream(settings, stdin, stdout, stderr)
}

func runStream(s config.Settings, stdin io.Reader, stdout, stderr io.Writer) int {
	var engine *highlight.Engine
	if !s.NoColor {
		det, err := autodetect.New(unicodeLocale())
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}

		var th *theme.Theme
		if s.Filter != "" {
			th, err = theme.Load(s.Theme)
			if err != nil {
				fmt.Fprintf(stderr, "Error: %v\n", err)
				return 1
			}
		}
		engine = highlight.New(th, s.Filter, det)
		log.Debug().
			Stringer("strategy", engine.Kind()).
			Uint64("checksum", engine.Checksum()).
			Msg("highlighting engine ready")
	} else {
		engine = highlight.New(nil, "", nil)
	}

	p := pipeline.New(engine, pipeline.Options{
		Width:   s.Width,
		Align:   align.ParseAlignment(s.Align),
		NoColor: s.NoColor,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := p.Run(ctx, stdin, stdout); err != nil {
		if ctx.Err() != nil {
			return 1
		}
		log.Error().Err(err).Msg("stream failed")
		return 1
	}
	return 0
}

// runTheme handles `hue theme <action> [name]`.
func runTheme(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		themeUsage(stderr)
		return 2
	}
	action := args[0]
	name := ""
	if len(args) > 1 {
		name = args[1]
	}
	ui := render.DefaultUI()

	switch action {
	case "list":
		entries, err := theme.List()
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Fprint(stdout, ui.ThemeList(entries))
		return 0

	case "info":
		th, err := theme.Load(name)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Fprint(stdout, ui.ThemeInfo(th))
		return 0

	case "create":
		if name == "" {
			fmt.Fprintln(stderr, "Error: theme create requires a name")
			return 2
		}
		path, err := theme.Create(name)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "Created %s\n", path)
		return 0

	case "import":
		if name == "" {
			fmt.Fprintln(stderr, "Error: theme import requires a name")
			return 2
		}
		path, err := theme.Import(name)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "Imported to %s\n", path)
		return 0

	case "export":
		if name == "" {
			fmt.Fprintln(stderr, "Error: theme export requires a name")
			return 2
		}
		path, err := theme.Export(name)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "Exported to %s\n", path)
		return 0

	case "edit":
		if name == "" {
			fmt.Fprintln(stderr, "Error: theme edit requires a name")
			return 2
		}
		if err := theme.Edit(name); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0

	case "browse":
		if f, ok := stdout.(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
			fmt.Fprintln(stderr, "Error: theme browse needs a terminal")
			return 1
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := browse.Run(ctx, unicodeLocale()); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0

	default:
		fmt.Fprintf(stderr, "Unknown theme action: %s\n", action)
		themeUsage(stderr)
		return 2
	}
}

func parseFlags(args []string, stderr io.Writer) (config.Flags, bool, error) {
	fs := flag.NewFlagSet("hue", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var flags config.Flags
	var showVersion bool

	fs.BoolVar(&showVersion, "version", false, "Print hue version and exit.")
	fs.BoolVar(&showVersion, "v", false, "Print hue version and exit (shorthand).")
	fs.StringVar(&flags.Theme, "theme", "", "Theme name or path to a theme YAML file.")
	fs.StringVar(&flags.Filter, "filter", "", "Filter within the theme to apply.")
	fs.IntVar(&flags.Width, "width", 0, "Pad or truncate every line to this width.")
	fs.StringVar(&flags.Align, "align", "left", "Alignment when -width is set: left, center, right.")
	fs.BoolVar(&flags.NoColor, "no-color", false, "Strip all color and icon output.")
	fs.BoolVar(&flags.Debug, "debug", false, "Enable debug logging on stderr.")
	fs.Usage = func() { usage(stderr) }

	if err := fs.Parse(args); err != nil {
		return config.Flags{}, false, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "theme":
			flags.ThemeSet = true
		case "filter":
			flags.FilterSet = true
		case "width":
			flags.WidthSet = true
		case "align":
			flags.AlignSet = true
		case "no-color":
			flags.NoColorSet = true
		case "debug":
			flags.DebugSet = true
		}
	})

	if flags.Width < 0 {
		fmt.Fprintln(stderr, "Error: -width must be non-negative")
		return config.Flags{}, false, fmt.Errorf("invalid width %d", flags.Width)
	}
	return flags, showVersion, nil
}

func setupLogging(debug bool, stderr io.Writer) {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// unicodeLocale reports whether the locale advertises UTF-8, which
// gates emoji icons versus ASCII fallbacks.
func unicodeLocale() bool {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		v := strings.ToUpper(os.Getenv(key))
		if v == "" {
			continue
		}
		return strings.Contains(v, "UTF-8") || strings.Contains(v, "UTF8")
	}
	return false
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: hue [flags]           colorize stdin to stdout")
	fmt.Fprintln(w, "       hue theme <action>    manage themes")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -theme NAME     theme name or YAML path")
	fmt.Fprintln(w, "  -filter NAME    filter within the theme")
	fmt.Fprintln(w, "  -width N        pad or truncate lines to N columns")
	fmt.Fprintln(w, "  -align MODE     left, center, or right (with -width)")
	fmt.Fprintln(w, "  -no-color       strip all color and icon output")
	fmt.Fprintln(w, "  -debug          debug logging on stderr")
	fmt.Fprintln(w, "  -version, -v    print version and exit")
}

func themeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: hue theme <action> [name]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Actions:")
	fmt.Fprintln(w, "  list            show discovered themes")
	fmt.Fprintln(w, "  info NAME       show a theme's filters and patterns")
	fmt.Fprintln(w, "  create NAME     scaffold NAME.yml in the current directory")
	fmt.Fprintln(w, "  import NAME     copy NAME.yml from here into the config dir")
	fmt.Fprintln(w, "  export NAME     copy a config-dir theme to NAME.yml here")
	fmt.Fprintln(w, "  edit NAME       open a theme in $EDITOR")
	fmt.Fprintln(w, "  browse          interactive theme browser")
}
