package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fractalqb/regx"
)

func init() {
	alignCmd.RunE = alignFiles
	alignCmd.recipe.addFlags(alignCmd.Flags())
	alignCmd.Flags().BoolVarP(&alignCmd.inPlace, "in-place", "i", false,
		"Rewrite the files instead of printing the result")
	alignCmd.Flags().BoolVarP(&alignCmd.diff, "diff", "d", false,
		"Print a unified diff instead of the result")
	alignCmd.MarkFlagsMutuallyExclusive("in-place", "diff")
	rootCmd.AddCommand(&alignCmd.Command)
}

var alignCmd = struct {
	cobra.Command
	recipe
	inPlace bool
	diff    bool
}{
	Command: cobra.Command{
		Use:   "align [file...]",
		Short: "Align text from files or stdin",
	},
}

type aligned struct {
	input
	out string
}

func (a *aligned) changed() bool { return a.text != a.out }

func alignFiles(cmd *cobra.Command, files []string) error {
	log := rootCmd.log
	al, err := alignCmd.recipe.resolve(rootCmd.presetsFile, log)
	if err != nil {
		return err
	}
	var results []aligned
	if len(files) == 0 {
		if alignCmd.inPlace {
			return errors.New("--in-place needs files")
		}
		in, err := readStdin(cmd.InOrStdin())
		if err != nil {
			return err
		}
		res, err := alignInput(al, in)
		if err != nil {
			return err
		}
		results = []aligned{res}
	} else if results, err = eachFile(cmd.Context(), files,
		func(in input) (aligned, error) { return alignInput(al, in) },
	); err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	for i := range results {
		res := &results[i]
		switch {
		case alignCmd.inPlace:
			err = rewrite(res)
		case alignCmd.diff:
			err = printDiff(w, res)
		default:
			err = regx.WriteText(w, res.out, res.eol)
		}
		if err != nil {
			log.Error("output failed", "file", res.name, "error", err)
			return err
		}
		log.Debug("aligned", "file", res.name, "changed", res.changed())
	}
	return nil
}

func alignInput(al *alignment, in input) (aligned, error) {
	out, err := al.Regularize(in.text)
	if err != nil {
		return aligned{}, fmt.Errorf("%s: %w", in.name, err)
	}
	return aligned{input: in, out: out}, nil
}

func rewrite(res *aligned) error {
	if !res.changed() {
		return nil
	}
	f, err := os.OpenFile(res.name, os.O_WRONLY|os.O_TRUNC, res.mode)
	if err != nil {
		return err
	}
	if err = regx.WriteText(f, res.out, res.eol); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printDiff(w io.Writer, res *aligned) error {
	diff, err := regx.UnifiedDiff(res.name, res.name, res.text, res.out)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, diff)
	return err
}
