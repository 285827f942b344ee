package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gravitrone/tagdeck/cli/internal/api"
	"github.com/gravitrone/tagdeck/cli/internal/tagedit"
)

// TagsCmd returns the `tagdeck tags` command group.
func TagsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List, add and remove tags on gallery items",
	}
	cmd.AddCommand(tagsListCmd())
	cmd.AddCommand(tagsAddCmd())
	cmd.AddCommand(tagsRemoveCmd())
	return cmd
}

func tagsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ls <id>...",
		Aliases: []string{"list"},
		Short:   "Show the tags shared by the given items",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runTagRequest(c, func(tc *tagedit.Client) (tagedit.Request, error) {
				return tc.List(args)
			})
		},
	}
}

func tagsAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <tag> <id>...",
		Short: "Tag every given item",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return runTagRequest(c, func(tc *tagedit.Client) (tagedit.Request, error) {
				return tc.Add(args[0], args[1:])
			})
		},
	}
}

func tagsRemoveCmd() *cobra.Command {
	var cls string
	var yes bool
	cmd := &cobra.Command{
		Use:   "rm <tag> <id>...",
		Short: "Remove a tag from every given item",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			var confirm tagedit.Confirmer = tagedit.Answer(true)
			if !yes {
				confirm = stdinConfirmer(c.InOrStdin(), c.OutOrStdout())
			}
			err := runTagRequest(c, func(tc *tagedit.Client) (tagedit.Request, error) {
				return tc.Remove(args[0], cls, args[1:], confirm)
			})
			if errors.Is(err, tagedit.ErrDeclined) {
				fmt.Fprintln(c.OutOrStdout(), "nothing removed")
				return nil
			}
			return err
		},
	}
	cmd.Flags().StringVar(&cls, "cls", "", "tag class to remove")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

// runTagRequest issues one tag request and prints the resulting aggregate.
func runTagRequest(c *cobra.Command, build func(*tagedit.Client) (tagedit.Request, error)) error {
	cfg, client, err := LoadClient()
	if err != nil {
		return err
	}
	defer FlushMetrics(cfg, client)

	tc := tagedit.NewClient(client, slog.Default())
	req, err := build(tc)
	if err != nil {
		return err
	}
	res := tc.Do(req)
	if res.Err != nil {
		return fmt.Errorf("%s: %w", res.Control, res.Err)
	}
	printRecords(c.OutOrStdout(), res.Records)
	return nil
}

func printRecords(out io.Writer, records []api.TagRecord) {
	if len(records) == 0 {
		fmt.Fprintln(out, "no tags")
		return
	}
	for _, r := range records {
		if r.Cls != "" {
			fmt.Fprintf(out, "%s [%s] (%d)\n", r.Tag, r.Cls, r.Count)
			continue
		}
		fmt.Fprintf(out, "%s (%d)\n", r.Tag, r.Count)
	}
}

func stdinConfirmer(in io.Reader, out io.Writer) tagedit.Confirmer {
	reader := bufio.NewReader(in)
	return tagedit.ConfirmFunc(func(prompt string) bool {
		fmt.Fprintf(out, "%s [y/N] ", prompt)
		line, _ := reader.ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		}
		return false
	})
}
