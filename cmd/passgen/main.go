// Package main provides the CLI entrypoint for passgen.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/passgen/internal/config"
	"github.com/verte-zerg/passgen/internal/generator"
	"github.com/verte-zerg/passgen/internal/model"
	"github.com/verte-zerg/passgen/internal/stats"
	"github.com/verte-zerg/passgen/internal/tui"
)

const (
	defaultLength  = 16
	defaultCount   = 1
	defaultSamples = 1000
	defaultTopN    = 10
)

var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// generateFlags holds the generation flags shared by the root, stats and tui commands.
type generateFlags struct {
	length          int
	count           int
	upper           bool
	lower           bool
	digits          bool
	basicSymbols    bool
	extraSymbols    bool
	avoidRepetition bool
	seed            int64
}

type globalFlags struct {
	configPath string
	verbose    bool
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	global := &globalFlags{}
	gen := &generateFlags{}
	var colorMode string

	rootCmd := &cobra.Command{
		Use:           "passgen [LENGTH]",
		Short:         "Generate random passwords from character classes",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger = newLogger(cmd.ErrOrStderr(), global.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerateCmd(cmd, args, global, gen, colorMode)
		},
	}

	rootCmd.PersistentFlags().StringVar(&global.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/passgen/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&global.verbose, "verbose", "v", false, "log diagnostics to stderr")
	gen.register(rootCmd, true)
	rootCmd.Flags().StringVar(&colorMode, "color", "auto", "colour characters by class: auto, always or never")

	rootCmd.AddCommand(newClassesCmd())
	rootCmd.AddCommand(newConfigCmd(global))
	rootCmd.AddCommand(newStatsCmd(global))
	rootCmd.AddCommand(newTUICmd(global))

	return rootCmd
}

func (f *generateFlags) register(cmd *cobra.Command, withCount bool) {
	cmd.Flags().IntVarP(&f.length, "length", "l", defaultLength, "password length")
	cmd.Flags().BoolVarP(&f.upper, "upper", "u", false, "include uppercase letters (A-Z)")
	cmd.Flags().BoolVarP(&f.lower, "lower", "w", false, "include lowercase letters (a-z)")
	cmd.Flags().BoolVarP(&f.digits, "digits", "d", false, "include digits (0-9)")
	cmd.Flags().BoolVarP(&f.basicSymbols, "math", "m", false, "include math symbols (-+=*/><[]{}())")
	cmd.Flags().BoolVarP(&f.extraSymbols, "extra", "e", false, "include extra symbols (?!@#$%&_|;:)")
	cmd.Flags().BoolVarP(&f.avoidRepetition, "avoid-repetition", "r", false, "redraw characters of a class used twice in the last three positions")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "seed a deterministic (non-cryptographic) random source")
	if withCount {
		cmd.Flags().IntVarP(&f.count, "count", "n", defaultCount, "number of passwords to generate")
	}
}

func runGenerateCmd(cmd *cobra.Command, args []string, global *globalFlags, flags *generateFlags, colorMode string) error {
	cfg, err := resolveRunConfig(cmd, args, global, flags)
	if err != nil {
		return err
	}
	useColor, err := shouldUseColor(colorMode, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if useColor && colorMode == "always" {
		lipgloss.SetColorProfile(termenv.ANSI256)
	}

	gen := newGenerator(cfg.Seed)
	set := generator.NewClassSet(cfg.Config)

	// Generate the whole batch before writing anything.
	lines := make([]string, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		p, err := gen.Trace(cfg.Config)
		if err != nil {
			return fmt.Errorf("failed to generate password: %w", err)
		}
		if useColor {
			lines = append(lines, tui.RenderPassword(set, p))
		} else {
			lines = append(lines, p.Value)
		}
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newClassesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classes",
		Short: "List character classes",
		Args:  cobra.NoArgs,
		RunE:  runClassesCmd,
	}
}

func runClassesCmd(cmd *cobra.Command, _ []string) error {
	for _, class := range generator.AllClasses() {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s\n", class.Name, class.Alphabet); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newConfigCmd(global *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfigCmd(configPath(global))
		},
	}
}

func runConfigCmd(path string) error {
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
		logger.Info("created config file", "path", path)
	}
	return nil
}

func newStatsCmd(global *globalFlags) *cobra.Command {
	flags := &generateFlags{}
	var samples, topN int
	cmd := &cobra.Command{
		Use:   "stats [LENGTH]",
		Short: "Show class distribution over many generated passwords",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveRunConfig(cmd, args, global, flags)
			if err != nil {
				return err
			}
			if samples <= 0 {
				return fmt.Errorf("--samples must be > 0")
			}
			report, err := stats.BuildReport(newGenerator(cfg.Seed), model.StatsConfig{
				Config:  cfg.Config,
				Samples: samples,
				TopN:    topN,
			})
			if err != nil {
				return fmt.Errorf("failed to build report: %w", err)
			}
			return stats.RenderDistribution(cmd.OutOrStdout(), report)
		},
	}
	flags.register(cmd, false)
	cmd.Flags().IntVar(&samples, "samples", defaultSamples, "number of passwords to sample")
	cmd.Flags().IntVar(&topN, "top", defaultTopN, "number of most frequent characters to list")
	return cmd
}

func newTUICmd(global *globalFlags) *cobra.Command {
	flags := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Interactive password generator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveRunConfig(cmd, args, global, flags)
			if err != nil {
				return err
			}
			program := tea.NewProgram(tui.NewModel(newGenerator(cfg.Seed), cfg.Config, cfg.Count), tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("failed to run TUI: %w", err)
			}
			return nil
		},
	}
	flags.register(cmd, true)
	return cmd
}

// resolveRunConfig merges defaults, the config file, the environment, flags and
// the optional LENGTH argument, in increasing precedence.
func resolveRunConfig(cmd *cobra.Command, args []string, global *globalFlags, flags *generateFlags) (model.RunConfig, error) {
	if err := config.LoadDotEnv(); err != nil {
		return model.RunConfig{}, err
	}
	path := configPath(global)
	fileCfg, err := config.LoadConfig(path)
	if err != nil {
		return model.RunConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	envCfg, err := config.LoadEnv()
	if err != nil {
		return model.RunConfig{}, err
	}
	logger.Debug("configuration sources", "config", path, "env_overrides", envCfg.Set())

	file := fileCfg.Generate
	applyConfig(cmd, "length", &flags.length, file.Length, envCfg.Length)
	applyConfig(cmd, "upper", &flags.upper, file.Upper, envCfg.Upper)
	applyConfig(cmd, "lower", &flags.lower, file.Lower, envCfg.Lower)
	applyConfig(cmd, "digits", &flags.digits, file.Digits, envCfg.Digits)
	applyConfig(cmd, "math", &flags.basicSymbols, file.BasicSymbols, envCfg.BasicSymbols)
	applyConfig(cmd, "extra", &flags.extraSymbols, file.ExtraSymbols, envCfg.ExtraSymbols)
	applyConfig(cmd, "avoid-repetition", &flags.avoidRepetition, file.AvoidRepetition, envCfg.AvoidRepetition)
	applyConfig(cmd, "count", &flags.count, file.Count)

	if len(args) > 0 {
		length, err := parseLength(args[0])
		if err != nil {
			return model.RunConfig{}, err
		}
		flags.length = length
	}

	cfg := model.RunConfig{
		Config: model.Config{
			Length:          flags.length,
			Upper:           flags.upper,
			Lower:           flags.lower,
			Digits:          flags.digits,
			BasicSymbols:    flags.basicSymbols,
			ExtraSymbols:    flags.extraSymbols,
			AvoidRepetition: flags.avoidRepetition,
		},
		Count: flags.count,
	}
	if cmd.Flags().Changed("seed") {
		seed := flags.seed
		cfg.Seed = &seed
		logger.Debug("using seeded random source", "seed", seed)
	}
	if cmd.Flags().Lookup("count") == nil {
		cfg.Count = defaultCount
	}
	if !cfg.HasClass() {
		logger.Debug("no character class selected, falling back to upper, lower and digits")
	}
	if err := validateConfig(cfg); err != nil {
		return model.RunConfig{}, err
	}
	return cfg, nil
}

func applyConfig[T any](cmd *cobra.Command, name string, target *T, values ...*T) {
	if cmd.Flags().Changed(name) {
		return
	}
	for _, value := range values {
		if value != nil {
			*target = *value
		}
	}
}

func parseLength(arg string) (int, error) {
	length, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("invalid length %q: must be an integer", arg)
	}
	return length, nil
}

func validateConfig(cfg model.RunConfig) error {
	if cfg.Length < 0 {
		return fmt.Errorf("%w: --length must be >= 0", generator.ErrInvalidLength)
	}
	if cfg.Count < 1 {
		return fmt.Errorf("--count must be > 0")
	}
	return nil
}

func configPath(global *globalFlags) string {
	if global.configPath != "" {
		return global.configPath
	}
	return config.DefaultConfigPath()
}

func newGenerator(seed *int64) *generator.Generator {
	if seed != nil {
		return generator.NewWithSource(generator.NewSeededSource(*seed))
	}
	return generator.New()
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func shouldUseColor(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "never":
		return false, nil
	case "always":
		return true, nil
	case "auto":
		if os.Getenv("NO_COLOR") != "" {
			return false, nil
		}
		file, ok := w.(*os.File)
		if !ok {
			return false, nil
		}
		return term.IsTerminal(int(file.Fd())), nil
	default:
		return false, fmt.Errorf("--color must be one of auto, always, never")
	}
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# passgen configuration
# Uncomment a value to enable it. Environment variables override the file,
# CLI flags override both.

[generate]
# length = %d              # Password length
# count = %d                # Passwords per run
# upper = false            # Uppercase letters (A-Z)
# lower = false            # Lowercase letters (a-z)
# digits = false           # Digits (0-9)
# basic-symbols = false    # Math symbols (-+=*/><[]{}())
# extra-symbols = false    # Extra symbols (?!@#$%%&_|;:)
# avoid-repetition = false # Redraw characters of a class used twice in the last three positions
#
# With no class enabled, upper, lower and digits are used.
`,
		defaultLength,
		defaultCount,
	)
}
