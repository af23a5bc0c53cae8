package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/scylladb/termtables"
	"github.com/spf13/cobra"

	dateformat "github.com/goliatone/go-dateformat"
)

type globalConfig struct {
	locale    string
	reference string
}

func (g *globalConfig) options() ([]dateformat.Option, error) {
	opts := []dateformat.Option{dateformat.WithLocale(g.locale)}
	if g.reference != "" {
		ref, err := time.Parse(time.RFC3339, g.reference)
		if err != nil {
			return nil, fmt.Errorf("invalid --reference value %q: %w", g.reference, err)
		}
		opts = append(opts, dateformat.WithReferenceTime(ref))
	}
	return opts, nil
}

func main() {
	rootCommand := &cobra.Command{
		Use:           "dateformat",
		Short:         "parse date strings against explicit format templates",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	g := new(globalConfig)
	rootCommand.PersistentFlags().StringVar(&g.locale, "locale", "en", "locale for month/weekday/era names")
	rootCommand.PersistentFlags().StringVar(&g.reference, "reference", "", "RFC3339 `datetime` filling fields absent from the template")

	rootCommand.AddCommand(
		newParseCommand(g),
		newExplainCommand(g),
		newLocalesCommand(),
	)

	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "dateformat: %v\n", err)
		os.Exit(1)
	}
}

func newParseCommand(g *globalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "parse INPUT FORMAT",
		Short: "parse INPUT against FORMAT and print the instant",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := g.options()
			if err != nil {
				return err
			}
			res, err := dateformat.Parse(args[0], args[1], opts...)
			if err != nil {
				return err
			}
			if !res.Valid() {
				return fmt.Errorf("invalid: %s", res.Reason)
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Time.Format(time.RFC3339Nano))
			return nil
		},
	}
}

func newExplainCommand(g *globalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "explain INPUT FORMAT",
		Short: "show every pipeline stage for INPUT against FORMAT",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := g.options()
			if err != nil {
				return err
			}
			rec := dateformat.Explain(args[0], args[1], opts...)

			table := termtables.CreateTable()
			table.AddHeaders("Stage", "Value")
			table.AddRow("input", rec.Input)
			table.AddRow("locale", rec.Locale)
			table.AddRow("tokens", tokensLine(rec.Tokens))
			table.AddRow("pattern", rec.Pattern)
			for _, field := range sortedFieldKeys(rec.RawMatches) {
				table.AddRow("raw."+field, rec.RawMatches[dateformat.Field(field)])
			}
			for _, field := range sortedAnyKeys(rec.Fields) {
				table.AddRow("field."+field, fmt.Sprintf("%v", rec.Fields[dateformat.Field(field)]))
			}
			if rec.Err != nil {
				table.AddRow("error", rec.Err.Error())
			} else if rec.Result.Valid() {
				table.AddRow("result", rec.Result.Time.Format(time.RFC3339Nano))
			} else {
				table.AddRow("result", "invalid: "+string(rec.Result.Reason))
			}
			fmt.Fprintln(cmd.OutOrStdout(), table.Render())
			return nil
		},
	}
}

func newLocalesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "list embedded locales",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, locale := range dateformat.EmbeddedLocales() {
				fmt.Fprintln(cmd.OutOrStdout(), locale)
			}
			return nil
		},
	}
}

func tokensLine(tokens []dateformat.Token) string {
	out := ""
	for i, tok := range tokens {
		if i > 0 {
			out += " "
		}
		out += tok.String()
	}
	return out
}

func sortedFieldKeys(m map[dateformat.Field]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	return keys
}

func sortedAnyKeys(m map[dateformat.Field]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	return keys
}
