// Package main provides the CLI entrypoint for tuicount.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/tuicount/internal/config"
	"github.com/verte-zerg/tuicount/internal/report"
	"github.com/verte-zerg/tuicount/internal/source"
	"github.com/verte-zerg/tuicount/internal/textstats"
	"github.com/verte-zerg/tuicount/internal/tui"
)

const (
	defaultFormat = report.FormatTable
	defaultTotal  = true
	defaultTheme  = tui.ThemeDark
	defaultLimit  = 5000
	editorName    = "editor"
)

type countOptions struct {
	format string
	total  bool
}

type editOptions struct {
	theme string
	limit int
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	count := &countOptions{}
	edit := &editOptions{}
	rootCmd := &cobra.Command{
		Use:           "tuicount [files...]",
		Short:         "Count words, sentences and paragraphs",
		Long:          "Count words, characters, sentences and paragraphs of files or stdin.\nWith no input and an interactive terminal, opens the live editor.",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && stdinIsTerminal() {
				return runEdit(cmd, edit, "")
			}
			return runCount(cmd, count, args)
		},
	}

	rootCmd.Flags().StringVar(&count.format, "format", defaultFormat, "output format (table, json)")
	rootCmd.Flags().BoolVar(&count.total, "total", defaultTotal, "print a total row for multiple inputs")
	addEditFlags(rootCmd, edit)

	rootCmd.AddCommand(newEditCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func addEditFlags(cmd *cobra.Command, opts *editOptions) {
	cmd.Flags().StringVar(&opts.theme, "theme", defaultTheme, "editor theme (dark, light)")
	cmd.Flags().IntVar(&opts.limit, "limit", defaultLimit, "soft character hint shown under the editor (0 hides it)")
}

func runCount(cmd *cobra.Command, opts *countOptions, paths []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "format", &opts.format, fileCfg.Count.Format)
	applyBoolConfig(cmd, "total", &opts.total, fileCfg.Count.Total)
	if err := validateCount(opts); err != nil {
		return err
	}

	if len(paths) == 0 {
		paths = []string{source.StdinName}
	}
	sources, err := source.ReadPaths(paths, cmd.InOrStdin())
	if err != nil {
		return err
	}
	rows := make([]report.Row, 0, len(sources))
	for _, src := range sources {
		rows = append(rows, report.Row{Name: src.Name, Stats: textstats.Compute(src.Text)})
	}
	return report.Render(cmd.OutOrStdout(), opts.format, rows, opts.total)
}

func newEditCmd() *cobra.Command {
	opts := &editOptions{}
	cmd := &cobra.Command{
		Use:   "edit [file]",
		Short: "Open the live counting editor",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runEdit(cmd, opts, path)
		},
	}
	addEditFlags(cmd, opts)
	return cmd
}

func runEdit(cmd *cobra.Command, opts *editOptions, path string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "theme", &opts.theme, fileCfg.Editor.Theme)
	applyIntConfig(cmd, "limit", &opts.limit, fileCfg.Editor.Limit)
	if err := validateEdit(opts); err != nil {
		return err
	}

	if path == source.StdinName {
		return fmt.Errorf("edit reads keys from the terminal; pass a file path instead of %q", source.StdinName)
	}
	name := editorName
	text := ""
	if path != "" {
		src, err := source.Read(path, cmd.InOrStdin())
		if err != nil {
			return err
		}
		name = src.Name
		text = src.Text
	}

	model := tui.NewModel(tui.Options{Theme: opts.theme, Limit: opts.limit, Text: text})
	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	done, ok := final.(*tui.Model)
	if !ok || !done.Reported() {
		return nil
	}
	return report.RenderTable(cmd.OutOrStdout(), []report.Row{{Name: name, Stats: done.Stats()}}, false)
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
		logErrf("Created %s\n", path)
	}
	return nil
}

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
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
	return fmt.Sprintf(`# tuicount configuration
# Uncomment a value to enable it. CLI flags override config values.

[count]
# format = %q        # Output format: table or json
# total = %t            # Print a total row for multiple inputs

[editor]
# theme = %q          # Editor theme: dark or light
# limit = %d            # Soft character hint under the editor (0 hides it)
`,
		defaultFormat,
		defaultTotal,
		defaultTheme,
		defaultLimit,
	)
}

func validateCount(opts *countOptions) error {
	switch opts.format {
	case report.FormatTable, report.FormatJSON:
		return nil
	default:
		return fmt.Errorf("--format must be %q or %q", report.FormatTable, report.FormatJSON)
	}
}

func validateEdit(opts *editOptions) error {
	if !tui.ValidTheme(opts.theme) {
		return fmt.Errorf("--theme must be %q or %q", tui.ThemeDark, tui.ThemeLight)
	}
	if opts.limit < 0 {
		return fmt.Errorf("--limit must be >= 0")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
