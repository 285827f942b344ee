package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gravitrone/tagdeck/cli/internal/cmd"
	"github.com/gravitrone/tagdeck/cli/internal/config"
	"github.com/gravitrone/tagdeck/cli/internal/ui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func newRootCmd() *cobra.Command {
	var idsFile string
	var debug bool
	root := &cobra.Command{
		Use:   "tagdeck [id...]",
		Short: "tagdeck - tag gallery items from the terminal",
		Long:  "tagdeck: select gallery items, edit their tags and build searches with tag autocomplete.",
		RunE: func(c *cobra.Command, args []string) error {
			ids := args
			if idsFile != "" {
				fromFile, err := readIDsFile(idsFile)
				if err != nil {
					return err
				}
				ids = append(ids, fromFile...)
			}
			return runTUI(c.OutOrStdout(), ids, debug)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Flags().StringVar(&idsFile, "ids-file", "", "file with one item id per line")
	root.Flags().BoolVar(&debug, "debug", false, "log at debug level")

	root.AddCommand(cmd.SetupCmd())
	root.AddCommand(cmd.TagsCmd())
	root.AddCommand(cmd.SuggestCmd())
	return root
}

func runTUI(out io.Writer, ids []string, debug bool) error {
	cfg, client, err := cmd.LoadClient()
	if err != nil {
		return err
	}

	logger, closeLog := openLogger(cfg, debug)
	defer closeLog()
	slog.SetDefault(logger)
	client.WithLogger(logger)
	defer cmd.FlushMetrics(cfg, client)

	app := ui.NewApp(client, cfg, ids, logger)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui error: %w", err)
	}

	if done, ok := final.(ui.App); ok && done.Submitted() != "" {
		fmt.Fprintln(out, client.SearchURL(done.Submitted()))
	}
	return nil
}

// openLogger writes to the configured log file. The terminal belongs to the
// TUI, so a log file that cannot be opened means no logging.
func openLogger(cfg *config.Config, debug bool) (*slog.Logger, func()) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	path := cfg.LogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return slog.New(slog.DiscardHandler), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return slog.New(slog.DiscardHandler), func() {}
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { f.Close() }
}

func readIDsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read ids file: %w", err)
	}
	defer f.Close()

	var ids []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if id := strings.TrimSpace(scanner.Text()); id != "" {
			ids = append(ids, id)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read ids file: %w", err)
	}
	return ids, nil
}
