// Package main provides the CLI entrypoint for sakura.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/sakura/internal/config"
	"github.com/verte-zerg/sakura/internal/generator"
	"github.com/verte-zerg/sakura/internal/logging"
	"github.com/verte-zerg/sakura/internal/model"
	"github.com/verte-zerg/sakura/internal/session"
	"github.com/verte-zerg/sakura/internal/store"
	"github.com/verte-zerg/sakura/internal/textsource"
	"github.com/verte-zerg/sakura/internal/theme"
	"github.com/verte-zerg/sakura/internal/tui"
	"github.com/verte-zerg/sakura/internal/wordlist"
)

const (
	defaultMode     = string(model.ModePassage)
	defaultDuration = session.DefaultDuration
	defaultWindow   = textsource.DefaultWindowSize
	defaultLang     = "en"
	defaultCaps     = 0.0
	defaultPunct    = 0.0
	defaultLogLevel = "info"
)

const defaultPunctSet = ".,!?;:"

var (
	playMode      string
	playDuration  int
	playWindow    int
	playLang      string
	playWordList  string
	playCaps      float64
	playPunct     float64
	playPunctSet  string
	playNoPersist bool
	logLevel      string

	scoreJSON  bool
	scoreReset bool
)

// settingsStore is what the CLI needs from a settings backend.
type settingsStore interface {
	session.ScoreStore
	tui.ThemeStore
	Theme(ctx context.Context) (model.Theme, error)
	ResetHighScore(ctx context.Context) error
	Close() error
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sakura",
		Short:         "Cherry blossom typing practice",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	rootCmd.Flags().StringVar(&playMode, "mode", defaultMode, "text mode: passage or words")
	rootCmd.Flags().IntVar(&playDuration, "duration", defaultDuration, "session length in seconds")
	rootCmd.Flags().IntVar(&playWindow, "window", defaultWindow, "pending words kept in words mode")
	rootCmd.Flags().StringVar(&playLang, "lang", defaultLang, "word list language")
	rootCmd.Flags().StringVar(&playWordList, "wordlist", "", "word list file (default: XDG wordlists dir)")
	rootCmd.Flags().Float64Var(&playCaps, "caps", defaultCaps, "probability of capitalized first letter in words mode (0-1)")
	rootCmd.Flags().Float64Var(&playPunct, "punct", defaultPunct, "punctuation probability per word in words mode (0-1)")
	rootCmd.Flags().StringVar(&playPunctSet, "punct-set", defaultPunctSet, "punctuation set")
	rootCmd.Flags().BoolVar(&playNoPersist, "no-persist", false, "keep the high score in memory only")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newScoreCmd())
	rootCmd.AddCommand(newThemeCmd())

	return rootCmd
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "mode", &playMode, fileCfg.Game.Mode)
	applyIntConfig(cmd, "duration", &playDuration, fileCfg.Game.Duration)
	applyIntConfig(cmd, "window", &playWindow, fileCfg.Game.WindowSize)
	applyStringConfig(cmd, "lang", &playLang, fileCfg.Game.Lang)
	applyStringConfig(cmd, "wordlist", &playWordList, fileCfg.Game.WordList)
	applyFloatConfig(cmd, "caps", &playCaps, fileCfg.Game.CapsPct)
	applyFloatConfig(cmd, "punct", &playPunct, fileCfg.Game.PunctPct)
	applyStringConfig(cmd, "punct-set", &playPunctSet, fileCfg.Game.PunctSet)
	applyStringConfig(cmd, "log-level", &logLevel, fileCfg.Log.Level)

	cfg := model.Config{
		Mode:       model.Mode(strings.ToLower(strings.TrimSpace(playMode))),
		Duration:   playDuration,
		WindowSize: playWindow,
		Lang:       playLang,
		WordList:   playWordList,
		CapsPct:    playCaps,
		PunctPct:   playPunct,
		PunctSet:   playPunctSet,
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logger, closeLog, err := logging.OpenFile(config.DefaultLogPath(), level)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeLog(); cerr != nil {
			cliLogger().Warn("failed to close log", "err", cerr)
		}
	}()

	st := openSettings(logger, playNoPersist)
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logger.Warn("failed to close db", "err", cerr)
		}
	}()

	source, err := buildSource(cfg, logger)
	if err != nil {
		return err
	}

	initialTheme, err := st.Theme(context.Background())
	if err != nil {
		logger.Warn("failed to load theme", "err", err)
	}

	ticker := tui.NewTicker(time.Second)
	ctrl := session.New(source, st, ticker,
		session.WithLogger(logger),
		session.WithDuration(cfg.Duration),
	)
	defer ctrl.Close()

	m := tui.NewModel(ctrl, ticker, st, initialTheme, logger)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// openSettings opens the SQLite store, falling back to memory when it cannot
// be opened so a broken data dir never blocks play.
func openSettings(logger *slog.Logger, memoryOnly bool) settingsStore {
	if memoryOnly {
		return store.NewMemory()
	}
	path := config.DefaultDBPath()
	st, err := store.Open(path)
	if err != nil {
		logger.Warn("failed to open db; high score will not persist", "path", path, "err", err)
		return store.NewMemory()
	}
	return st
}

func buildSource(cfg model.Config, logger *slog.Logger) (textsource.Source, error) {
	if cfg.Mode == model.ModePassage {
		return textsource.NewPassages(generator.New(nil, generator.Options{}), nil), nil
	}
	var (
		path  = cfg.WordList
		words []string
		from  string
		err   error
	)
	if path != "" {
		words, err = wordlist.LoadWords(path)
		words, from = wordlist.Filter(words, wordlist.FilterForLang(cfg.Lang)), path
	} else {
		path = config.DefaultWordListPath(cfg.Lang)
		words, from, err = wordlist.Resolve(path, cfg.Lang)
	}
	if err != nil {
		return nil, wordListLoadError(cfg.Lang, path, err)
	}
	if len(words) == 0 {
		return nil, wordListLoadError(cfg.Lang, path, fmt.Errorf("no usable words after filtering"))
	}
	logger.Debug("word list loaded", "source", from, "words", len(words))
	gen := generator.New(words, generator.Options{
		CapsPct:  cfg.CapsPct,
		PunctPct: cfg.PunctPct,
		PunctSet: []rune(cfg.PunctSet),
	})
	return textsource.NewWords(gen, cfg.WindowSize), nil
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

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Show or reset the high score",
		Args:  cobra.NoArgs,
		RunE:  runScoreCmd,
	}
	cmd.Flags().BoolVar(&scoreJSON, "json", false, "print as JSON")
	cmd.Flags().BoolVar(&scoreReset, "reset", false, "reset the high score to 0")
	return cmd
}

type scoreReport struct {
	HighScore int    `json:"highScore"`
	Theme     string `json:"theme"`
}

func runScoreCmd(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			cliLogger().Warn("failed to close db", "err", cerr)
		}
	}()

	ctx := context.Background()
	if scoreReset {
		if err := st.ResetHighScore(ctx); err != nil {
			return fmt.Errorf("failed to reset high score: %w", err)
		}
	}
	return writeScore(ctx, cmd.OutOrStdout(), st, scoreJSON)
}

func writeScore(ctx context.Context, w io.Writer, st settingsStore, asJSON bool) error {
	score, err := st.HighScore(ctx)
	if err != nil {
		return fmt.Errorf("failed to read high score: %w", err)
	}
	th, err := st.Theme(ctx)
	if err != nil {
		return fmt.Errorf("failed to read theme: %w", err)
	}
	if asJSON {
		data, err := json.Marshal(scoreReport{HighScore: score, Theme: string(th)})
		if err != nil {
			return fmt.Errorf("failed to encode score: %w", err)
		}
		if _, err := fmt.Fprintln(w, string(data)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	if _, err := fmt.Fprintf(w, "High score: %d\n", score); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newThemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "theme [light|dark]",
		Short: "Show or set the color theme",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runThemeCmd,
	}
}

func runThemeCmd(cmd *cobra.Command, args []string) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			cliLogger().Warn("failed to close db", "err", cerr)
		}
	}()
	return setOrShowTheme(context.Background(), cmd.OutOrStdout(), st, args)
}

func setOrShowTheme(ctx context.Context, w io.Writer, st settingsStore, args []string) error {
	if len(args) == 1 {
		th, err := theme.Parse(args[0])
		if err != nil {
			return err
		}
		if err := st.SetTheme(ctx, th); err != nil {
			return fmt.Errorf("failed to save theme: %w", err)
		}
	}
	th, err := st.Theme(ctx)
	if err != nil {
		return fmt.Errorf("failed to read theme: %w", err)
	}
	if _, err := fmt.Fprintln(w, th); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# sakura configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# mode = %q         # passage or words
# duration = %d          # Session length in seconds
# window = %d           # Pending words kept in words mode
# lang = %q             # Word list language
# wordlist = ""           # Word list file (one word per line)
# caps = %.2f            # Probability of capitalized first letter (0-1)
# punct = %.2f           # Punctuation probability per word (0-1)
# punct-set = %q    # Punctuation set

[log]
# level = %q          # debug, info, warn, error
`,
		defaultMode,
		defaultDuration,
		defaultWindow,
		defaultLang,
		defaultCaps,
		defaultPunct,
		defaultPunctSet,
		defaultLogLevel,
	)
}

func wordListLoadError(lang, path string, err error) error {
	lines := []string{
		fmt.Sprintf("failed to load word list: %v", err),
		fmt.Sprintf("expected word list at: %s", path),
		fmt.Sprintf("language %q not found", lang),
		"Use --wordlist PATH with one word per line, or --lang en for the built-in list",
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

// cliLogger logs to stderr for commands that do not take over the terminal.
func cliLogger() *slog.Logger {
	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	return logging.New(os.Stderr, level)
}
