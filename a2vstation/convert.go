package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/google/renameio/v2"
	"github.com/stationtools/a2vstation/sysex"
)

type Context struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

/* outputFile is either stdout or a pending file that only replaces the
 * target once the whole conversion succeeded. */
type outputFile struct {
	w       io.Writer
	pending *renameio.PendingFile
}

func createOutput(c *Context, name string) (*outputFile, error) {
	if name == "-" {
		return &outputFile{w: c.stdout}, nil
	}

	f, err := renameio.NewPendingFile(name,
		renameio.WithTempDir(filepath.Dir(name)),
		renameio.WithPermissions(0644))
	if err != nil {
		return nil, err
	}

	return &outputFile{w: f, pending: f}, nil
}

func (o *outputFile) Write(p []byte) (int, error) {
	return o.w.Write(p)
}

func (o *outputFile) commit() error {
	if o.pending == nil {
		return nil
	}
	/* Syncs, closes and renames over the target */
	return o.pending.CloseAtomicallyReplace()
}

func (o *outputFile) abort() {
	if o.pending != nil {
		o.pending.Cleanup()
	}
}

/* describe attaches the text shown on the [ERR] line */
func describe(err error, internal string, format string, param ...interface{}) error {
	return fault.Wrap(err, fmsg.WithDesc(internal, fmt.Sprintf(format, param...)))
}

func openFailed(err error, name string) error {
	return describe(fmt.Errorf("%w: %v", sysex.ErrorFileOpen, err),
		"open "+name, "File open error (%s)", name)
}

func (cli *CLI) Run(c *Context) error {
	var in io.Reader = c.stdin
	if cli.Input != "-" {
		f, err := os.Open(cli.Input)
		if err != nil {
			return openFailed(err, cli.Input)
		}
		defer f.Close()
		in = f
	}

	out, err := createOutput(c, cli.Output)
	if err != nil {
		return openFailed(err, cli.Output)
	}

	if err := cli.convert(c, in, out); err != nil {
		out.abort()
		return err
	}

	if err := out.commit(); err != nil {
		out.abort()
		return describe(fmt.Errorf("%w: %v", sysex.ErrorWrite, err),
			"commit "+cli.Output, "File write error (%s)", cli.Output)
	}

	return nil
}

func (cli *CLI) inputError(err error) error {
	if errors.Is(err, sysex.ErrorNotSysex) {
		return describe(err, "check "+cli.Input, "%s is not *.syx file: %s", cli.Input, err)
	}
	return describe(err, "convert "+cli.Input, "%s: %s", cli.Input, err)
}

func (cli *CLI) convert(c *Context, in io.Reader, out io.Writer) error {
	r := bufio.NewReader(in)
	if err := sysex.CheckContainer(r); err != nil {
		return cli.inputError(err)
	}

	/* Keep stdout clean when the dump itself goes there */
	info := c.stdout
	if cli.Output == "-" {
		info = c.stderr
	}

	t := sysex.New(sysex.Config{
		LogFunc: func(level int, format string, param ...interface{}) {
			if level > 0 {
				return
			}
			fmt.Fprintf(info, "%s %s\n", infoColor.Sprint("[INFO]"), fmt.Sprintf(format, param...))
		},
	})

	/* Each frame reaches out in one Write, nothing is held back between frames */
	if _, err := t.Transcode(r, out); err != nil {
		return cli.inputError(err)
	}

	return nil
}
