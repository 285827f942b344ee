package cmd

import (
	"bufio"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gravitrone/tagdeck/cli/internal/api"
	"github.com/gravitrone/tagdeck/cli/internal/config"
)

// RunInteractiveSetup prompts for the server and credentials, then persists config.
func RunInteractiveSetup(in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)

	baseURL := prompt(reader, out, fmt.Sprintf("server url [%s]: ", api.DefaultBaseURL))
	if baseURL == "" {
		baseURL = api.DefaultBaseURL
	}
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid server url %q", baseURL)
	}

	username := prompt(reader, out, "username (empty for none): ")
	password := ""
	if username != "" {
		password = prompt(reader, out, "password: ")
	}

	cfg, err := config.Load()
	if err != nil {
		cfg = &config.Config{}
	}
	cfg.BaseURL = strings.TrimRight(baseURL, "/")
	cfg.Username = username
	cfg.Password = password

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Fprintf(out, "config saved to %s\n", config.Path())
	return nil
}

func prompt(reader *bufio.Reader, out io.Writer, label string) string {
	fmt.Fprint(out, label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

// SetupCmd returns the `tagdeck setup` command.
func SetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Point tagdeck at a gallery server",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return RunInteractiveSetup(c.InOrStdin(), c.OutOrStdout())
		},
	}
}
