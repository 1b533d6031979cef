package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"tagfield/internal/config"
	"tagfield/internal/debug"
	"tagfield/internal/store"
	"tagfield/internal/theme"
)

func main() {
	if err := config.Initialize(); err != nil {
		fmt.Printf("Error initializing config: %v\n", err)
		os.Exit(1)
	}

	versionFlag := flag.Bool("version", false, "Print version information and exit")
	helpMarkdownFlag := flag.Bool("help-markdown", false, "Print the key reference and exit")
	listFieldsFlag := flag.Bool("list-fields", false, "Print the names of saved tag lists and exit")
	dbPathFlag := flag.String("db-path", config.GetString(config.KeyStorePath), "Path to the tag database file")
	fieldFlag := flag.String("field", config.GetString(config.KeyStoreField), "Name of the tag list to edit")
	themeFlag := flag.String("theme", config.GetString(config.KeyTheme), "Color theme ("+strings.Join(theme.Available(), ", ")+")")
	delimiterFlag := flag.String("delimiter", config.GetString(config.KeyTagsDelimiter), "Separator that commits a tag while typing")
	widthFlag := flag.Int("width", config.GetInt(config.KeyTagsWidth), "Wrap width in columns (0 disables wrapping)")
	noRemoveFlag := flag.Bool("no-remove", !config.GetBool(config.KeyTagsShowRemove), "Hide the remove control on tags")
	debugFlag := flag.Bool("debug", config.GetBool(config.KeyDebugEnabled), "Write a debug log to ~/.tagfield/debug.log")
	flag.Parse()

	if *versionFlag {
		printVersion()
		os.Exit(0)
	}
	if *helpMarkdownFlag {
		fmt.Print(renderKeyHelp(80))
		os.Exit(0)
	}

	visited := map[string]struct{}{}
	flag.CommandLine.Visit(func(f *flag.Flag) {
		visited[f.Name] = struct{}{}
	})

	runtime := computeRuntimeOptions(runtimeFlags{
		dbPath:    dbPathFlag,
		field:     fieldFlag,
		theme:     themeFlag,
		delimiter: delimiterFlag,
		width:     widthFlag,
		noRemove:  noRemoveFlag,
		debug:     debugFlag,
	}, visited)

	if err := debug.Init(runtime.debug, debug.WithPath(config.GetString(config.KeyDebugPath))); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: debug log disabled: %v\n", err)
	}
	defer debug.Close()

	if *listFieldsFlag {
		if err := listFields(context.Background(), runtime.dbPath, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	if runtime.theme != "" && !theme.SetTheme(runtime.theme) {
		fmt.Fprintf(os.Stderr, "Warning: unknown theme %q, using %s\n", runtime.theme, theme.CurrentName())
	}

	if err := run(context.Background(), runtime, func(m *model) programRunner {
		return tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type programRunner interface {
	Run() (tea.Model, error)
}

type programFactory func(*model) programRunner

// run opens the store, loads the field's tags and runs the editor until it
// quits.
func run(ctx context.Context, opts runtimeOptions, factory programFactory) error {
	s, err := store.Open(ctx, opts.dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = s.Close()
	}()

	tags, err := s.Load(ctx, opts.field)
	if err != nil {
		return fmt.Errorf("load %q: %w", opts.field, err)
	}
	m := newModel(ctx, opts, tags, s)
	m.addLog(fmt.Sprintf("Loaded %d tags from %s", len(tags), s.Path()))
	return runProgram(m, factory)
}

// listFields prints the name of every saved tag list, one per line.
func listFields(ctx context.Context, path string, w io.Writer) error {
	s, err := store.Open(ctx, path)
	if err != nil {
		return err
	}
	defer func() {
		_ = s.Close()
	}()

	fields, err := s.Fields(ctx)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		_, err = fmt.Fprintf(w, "No saved tag lists in %s\n", s.Path())
		return err
	}
	for _, f := range fields {
		if _, err := fmt.Fprintln(w, f); err != nil {
			return err
		}
	}
	return nil
}

func runProgram(m *model, factory programFactory) error {
	if factory == nil {
		return fmt.Errorf("program factory is nil")
	}
	prog := factory(m)
	if prog == nil {
		return fmt.Errorf("program is nil")
	}
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run UI: %w", err)
	}
	return nil
}

type runtimeFlags struct {
	dbPath    *string
	field     *string
	theme     *string
	delimiter *string
	width     *int
	noRemove  *bool
	debug     *bool
}

type runtimeOptions struct {
	dbPath     string
	field      string
	theme      string
	delimiter  string
	width      int
	showRemove bool
	debug      bool
}

func computeRuntimeOptions(flags runtimeFlags, visited map[string]struct{}) runtimeOptions {
	opts := runtimeOptions{
		dbPath:     strings.TrimSpace(config.GetString(config.KeyStorePath)),
		field:      strings.TrimSpace(config.GetString(config.KeyStoreField)),
		theme:      strings.TrimSpace(config.GetString(config.KeyTheme)),
		delimiter:  config.GetString(config.KeyTagsDelimiter),
		width:      sanitizeWidth(config.GetInt(config.KeyTagsWidth)),
		showRemove: config.GetBool(config.KeyTagsShowRemove),
		debug:      config.GetBool(config.KeyDebugEnabled),
	}
	if flagWasExplicitlySet("db-path", visited) {
		opts.dbPath = strings.TrimSpace(*flags.dbPath)
	}
	if flagWasExplicitlySet("field", visited) {
		opts.field = strings.TrimSpace(*flags.field)
	}
	if flagWasExplicitlySet("theme", visited) {
		opts.theme = strings.TrimSpace(*flags.theme)
	}
	if flagWasExplicitlySet("delimiter", visited) {
		opts.delimiter = *flags.delimiter
	}
	if flagWasExplicitlySet("width", visited) {
		opts.width = sanitizeWidth(*flags.width)
	}
	if flagWasExplicitlySet("no-remove", visited) {
		opts.showRemove = !*flags.noRemove
	}
	if flagWasExplicitlySet("debug", visited) {
		opts.debug = *flags.debug
	}
	if opts.field == "" {
		opts.field = config.DefaultField
	}
	return opts
}

func flagWasExplicitlySet(name string, visited map[string]struct{}) bool {
	if _, ok := visited[name]; ok {
		return true
	}
	f := flag.CommandLine.Lookup(name)
	if f == nil {
		return false
	}
	return f.Value.String() != f.DefValue
}

func sanitizeWidth(width int) int {
	if width < 0 {
		return 0
	}
	return width
}
