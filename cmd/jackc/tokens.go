package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deepnoodle-ai/jackc/internal/lexer"
	"github.com/deepnoodle-ai/jackc/internal/table"
	"github.com/deepnoodle-ai/jackc/token"
	"github.com/deepnoodle-ai/jackc/trace"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file.jack>",
	Short: "Print the tokens of a Jack source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		toks, err := lexer.NewTokenizer(string(source), lexer.WithFile(args[0])).Tokens()
		if err != nil {
			printErrors(cmd.ErrOrStderr(), []error{err})
			return errFailed
		}
		format, _ := cmd.Flags().GetString("output")
		return writeTokens(cmd.OutOrStdout(), toks, format)
	},
}

func init() {
	tokensCmd.Flags().StringP("output", "o", "text", "Output format (text, json, xml)")
	tokensCmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return tokenFormats, cobra.ShellCompDirectiveNoFileComp
	})
}

var tokenFormats = []string{"text", "json", "xml"}

type tokenJSON struct {
	Kind    string `json:"kind"`
	Literal string `json:"literal"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
}

func writeTokens(w io.Writer, toks []token.Token, format string) error {
	switch strings.ToLower(format) {
	case "", "text":
		rows := make([][]string, len(toks))
		for i, tok := range toks {
			rows[i] = []string{
				fmt.Sprintf("%d:%d", tok.Position.LineNumber(), tok.Position.ColumnNumber()),
				tok.Kind.String(),
				tok.Literal,
			}
		}
		return table.NewTable(w).
			WithHeader([]string{"POS", "KIND", "LITERAL"}).
			WithColumnAlignment([]table.Alignment{table.AlignRight, table.AlignLeft, table.AlignLeft}).
			WithRows(rows).
			Render()
	case "json":
		out := make([]tokenJSON, len(toks))
		for i, tok := range toks {
			out[i] = tokenJSON{
				Kind:    tok.Kind.String(),
				Literal: tok.Literal,
				Line:    tok.Position.LineNumber(),
				Column:  tok.Position.ColumnNumber(),
			}
		}
		data, err := marshalJSON(out)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "xml":
		return trace.WriteTokens(w, toks)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
