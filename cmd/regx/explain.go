package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fractalqb/regx"
)

func init() {
	explainCmd.RunE = explainFile
	explainCmd.recipe.addFlags(explainCmd.Flags())
	rootCmd.AddCommand(&explainCmd.Command)
}

var explainCmd = struct {
	cobra.Command
	recipe
}{
	Command: cobra.Command{
		Use:   "explain [file]",
		Short: "Show the columns and column widths of the parsed text",
		Args:  cobra.MaximumNArgs(1),
	},
}

func explainFile(cmd *cobra.Command, args []string) error {
	al, err := explainCmd.recipe.resolve(rootCmd.presetsFile, rootCmd.log)
	if err != nil {
		return err
	}
	var in input
	if len(args) == 0 {
		in, err = readStdin(cmd.InOrStdin())
	} else {
		in, err = readFile(args[0])
	}
	if err != nil {
		return err
	}
	lines, err := al.Parse(in.text)
	if err != nil {
		return fmt.Errorf("%s: %w", in.name, err)
	}
	return explain(cmd.OutOrStdout(), al.regx, lines)
}

func explain(w io.Writer, r regx.Regularizer, lines []regx.ParsedLine) error {
	for i, l := range lines {
		tag := ' '
		if l.Kind() == regx.Sections {
			tag = '|'
		}
		if _, err := fmt.Fprintf(w, "%4d %c%s\n", i+1, tag, l); err != nil {
			return err
		}
	}
	var sb strings.Builder
	sb.WriteString("widths:")
	for c, width := range r.Widths(lines) {
		fmt.Fprintf(&sb, " %d(%d)", width, regx.ColumnLength(lines, c))
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())
	return err
}
