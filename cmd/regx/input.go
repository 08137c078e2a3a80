package main

import (
	"context"
	"errors"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/fractalqb/regx"
)

const stdinName = "-"

type input struct {
	name string
	text string
	eol  string
	mode os.FileMode
}

func readInput(name string, r io.Reader) (in input, err error) {
	in.name = name
	in.text, in.eol, err = regx.ReadText(r)
	return in, err
}

func readStdin(stdin io.Reader) (input, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return input{}, errors.New("no input files and stdin is a terminal")
	}
	return readInput(stdinName, stdin)
}

func readFile(name string) (input, error) {
	f, err := os.Open(name)
	if err != nil {
		return input{}, err
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		return input{}, err
	}
	in, err := readInput(name, f)
	in.mode = st.Mode().Perm()
	return in, err
}

// eachFile calls do for all files concurrently. The results are in the
// order of files.
func eachFile[R any](
	ctx context.Context,
	files []string,
	do func(input) (R, error),
) ([]R, error) {
	res := make([]R, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			in, err := readFile(file)
			if err != nil {
				return err
			}
			res[i], err = do(in)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
