package cmd

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/gravitrone/tagdeck/cli/internal/api"
	"github.com/gravitrone/tagdeck/cli/internal/suggest"
)

// SuggestCmd returns the `tagdeck suggest` command, a scriptable view of what
// the search box and new-tag input would offer for some text.
func SuggestCmd() *cobra.Command {
	var cursor int
	var mode string
	var lenient bool
	cmd := &cobra.Command{
		Use:   "suggest <text>",
		Short: "Show tag suggestions for the token at the cursor",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			text := args[0]
			if cursor < 0 || cursor > utf8.RuneCountInString(text) {
				cursor = utf8.RuneCountInString(text)
			}

			if m := api.SuggestMode(mode); m != api.ModeSearch && m != api.ModeAddTag {
				return fmt.Errorf("unknown mode %q (want %s or %s)", mode, api.ModeSearch, api.ModeAddTag)
			}

			cfg, client, err := LoadClient()
			if err != nil {
				return err
			}
			defer FlushMetrics(cfg, client)

			widget := suggest.AddTagConfig()
			if api.SuggestMode(mode) == api.ModeSearch {
				widget = suggest.SearchConfig(lenient || cfg.LenientSearch)
			}
			widget.MaxResults = cfg.SuggestionLimit()

			out := c.OutOrStdout()
			fetcher := suggest.New(client, widget)
			req, ok := fetcher.Trigger(text, cursor)
			if !ok {
				fmt.Fprintln(out, "no token at cursor")
				return nil
			}
			res := req.Run()
			if !fetcher.Accept(res) {
				return nil
			}
			if res.Failed {
				return fmt.Errorf("suggestions for %q failed", res.Fragment)
			}
			if len(res.Candidates) == 0 {
				fmt.Fprintln(out, "no suggestions")
				return nil
			}
			for _, cand := range res.Candidates {
				if cand.Highlighted() {
					fmt.Fprintf(out, "%s[%s]%s (%d)\n", cand.Before, cand.Match, cand.After, cand.Count)
				} else {
					fmt.Fprintf(out, "%s (%d)\n", cand.Tag, cand.Count)
				}
			}
			next, pos := fetcher.Select(text, cursor, res.Candidates[0])
			fmt.Fprintf(out, "=> %s (cursor %d)\n", next, pos)
			return nil
		},
	}
	cmd.Flags().IntVar(&cursor, "cursor", -1, "rune offset of the cursor (default end of text)")
	cmd.Flags().StringVar(&mode, "mode", string(api.ModeSearch), "search or addtag")
	cmd.Flags().BoolVar(&lenient, "lenient", false, "treat any word at the cursor as a token")
	return cmd
}
