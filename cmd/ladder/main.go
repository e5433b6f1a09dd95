// Package main provides the CLI entrypoint for ladder.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/wordladder/internal/config"
	"github.com/verte-zerg/wordladder/internal/dictionary"
	"github.com/verte-zerg/wordladder/internal/historyui"
	"github.com/verte-zerg/wordladder/internal/ladder"
	"github.com/verte-zerg/wordladder/internal/model"
	"github.com/verte-zerg/wordladder/internal/report"
	"github.com/verte-zerg/wordladder/internal/store"
	"github.com/verte-zerg/wordladder/internal/tui"
)

const (
	defaultHistory = false
	defaultView    = false
)

var (
	searchHistory bool
	searchView    bool

	historyWord  string
	historySince string
	historyLast  int
	historyPlain bool
	historyClear bool

	dictLength int
)

func main() {
	rootCmd := newRootCmd(os.Args[1:])
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the CLI for args. A search invocation gets a root
// without subcommands so a dictionary file named like one (dict, history,
// help) is still searched.
func newRootCmd(args []string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ladder dictionaryFile startWord goalWord",
		Short:         "Find a shortest word ladder between two words",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.ArbitraryArgs,
		RunE:          runSearchCmd,
	}

	rootCmd.Flags().BoolVar(&searchHistory, "history", defaultHistory, "record the search in the history database")
	rootCmd.Flags().BoolVar(&searchView, "view", defaultView, "open the interactive ladder viewer when a ladder is found")

	if isSearchInvocation(args) {
		return rootCmd
	}
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newDictCmd())

	return rootCmd
}

// isSearchInvocation reports whether args hold exactly three positional
// arguments and the first names an existing file. Root flags are boolean,
// so every "-" prefixed argument is a flag on its own.
func isSearchInvocation(args []string) bool {
	var positional []string
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") {
			continue
		}
		positional = append(positional, arg)
	}
	if len(positional) != 3 {
		return false
	}
	info, err := os.Stat(positional[0])
	return err == nil && !info.IsDir()
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) != 3 {
		return report.RenderUsage(out, cmd.Root().Name())
	}

	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		logErrf("ignoring config: %v\n", err)
	}
	applyBoolConfig(cmd, "history", &searchHistory, fileCfg.Search.History)
	applyBoolConfig(cmd, "view", &searchView, fileCfg.Search.View)

	cfg := model.Config{
		DictionaryPath: args[0],
		Start:          args[1],
		Goal:           args[2],
		History:        searchHistory,
		View:           searchView,
	}

	logErrf("Reading dictionary: %s\n", cfg.DictionaryPath)
	dict, err := dictionary.Load(cfg.DictionaryPath)
	if err != nil {
		return err
	}

	if !dict.Contains(cfg.Start) {
		return report.RenderMissingStart(out, cfg.Start)
	}

	startedAt := time.Now()
	res := ladder.FindPath(cfg.Start, cfg.Goal, dict)
	endedAt := time.Now()

	if err := report.RenderLadder(out, cfg.Start, cfg.Goal, res); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if cfg.History {
		recordSearch(model.SearchRecord{
			StartedAt:      startedAt,
			EndedAt:        endedAt,
			DictionaryPath: absPath(cfg.DictionaryPath),
			DictionarySize: dict.Len(),
			Start:          cfg.Start,
			Goal:           cfg.Goal,
			Found:          res.Found,
			Path:           res.Path,
			Expanded:       res.Expanded,
			DurationUs:     endedAt.Sub(startedAt).Microseconds(),
		})
	}

	if cfg.View && res.Found {
		if !isTerminal(out) {
			logErrln("--view needs a terminal; skipping viewer")
			return nil
		}
		program := tea.NewProgram(tui.NewModel(cfg.Start, cfg.Goal, res), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("failed to run viewer: %w", err)
		}
	}
	return nil
}

// recordSearch stores rec in the history database. Failures are reported
// on stderr and never change the search outcome.
func recordSearch(rec model.SearchRecord) {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		logErrf("failed to open db: %v\n", err)
		return
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	if _, err := st.InsertSearch(context.Background(), rec); err != nil {
		logErrf("failed to save search: %v\n", err)
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past searches",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().StringVar(&historyWord, "word", "", "only searches starting or ending at this word")
	cmd.Flags().StringVar(&historySince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N searches")
	cmd.Flags().BoolVar(&historyPlain, "plain", false, "print a plain table instead of the interactive view")
	cmd.Flags().BoolVar(&historyClear, "clear", false, "delete all recorded searches")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	var sinceTime *time.Time
	if historySince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", historySince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}
	if historyLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}

	cfg := model.HistoryConfig{
		Word:  strings.ToLower(strings.TrimSpace(historyWord)),
		Since: sinceTime,
		Last:  historyLast,
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	out := cmd.OutOrStdout()
	ctx := context.Background()
	if historyClear {
		n, err := st.Clear(ctx)
		if err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		_, err = fmt.Fprintf(out, "Deleted %d searches.\n", n)
		return err
	}

	if historyPlain || !isTerminal(out) {
		records, err := st.ListSearches(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}
		return report.RenderHistory(out, records)
	}

	program := tea.NewProgram(historyui.NewModel(st, cfg), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run history TUI: %w", err)
	}
	return nil
}

func newDictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dict dictionaryFile",
		Short: "Summarize a dictionary file",
		Args:  cobra.ExactArgs(1),
		RunE:  runDictCmd,
	}
	cmd.Flags().IntVar(&dictLength, "length", 0, "list the words with this many characters")
	return cmd
}

func runDictCmd(cmd *cobra.Command, args []string) error {
	if dictLength < 0 {
		return fmt.Errorf("--length must be >= 0")
	}
	dict, err := dictionary.Load(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if dictLength == 0 {
		return report.RenderDictionarySummary(out, dict)
	}
	for _, word := range dict.Filter(dictionary.OfLength(dictLength)) {
		if _, err := fmt.Fprintln(out, word); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# ladder configuration
# Uncomment a value to enable it. CLI flags override config values.

[search]
# history = %t            # Record searches in the history database
# view = %t              # Open the interactive viewer when a ladder is found
`,
		defaultHistory,
		defaultView,
	)
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
