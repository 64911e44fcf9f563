package main

import (
	"bytes"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"luapat"
)

// input is one file (or stdin) loaded into memory.
type input struct {
	name string
	data []byte
}

// lines splits data at '\n'. A trailing newline does not produce an empty
// final line.
func (in input) lines() [][]byte {
	if len(in.data) == 0 {
		return nil
	}
	lines := bytes.Split(in.data, []byte("\n"))
	if len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// forEachInput runs fn over every path, or over stdin when paths is empty.
// Files are processed concurrently; each writes into its own buffer and the
// buffers are flushed in argument order once all of them succeed.
func forEachInput(cmd *cobra.Command, paths []string, fn func(in input, out *bytes.Buffer) error) error {
	if len(paths) == 0 {
		data, err := luapat.ReadInput(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		var buf bytes.Buffer
		if err := fn(input{name: "-", data: data}, &buf); err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}

	bufs := make([]bytes.Buffer, len(paths))
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("opening %s: %w", path, err)
			}
			defer f.Close()

			data, err := luapat.ReadInput(f)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			logf("processing %s (%d bytes)", path, len(data))
			if err := fn(input{name: path, data: data}, &bufs[i]); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i := range bufs {
		if _, err := out.Write(bufs[i].Bytes()); err != nil {
			return err
		}
	}
	return nil
}
