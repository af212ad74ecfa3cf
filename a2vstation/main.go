// Command a2vstation converts Novation A-Station program dumps (*.syx) into
// dumps that a K-Station or the V-Station plug-in can load.
//
// The dumps only differ in the device ID byte of the SysEx header, so every
// message is copied unchanged apart from that byte.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Southclaws/fault/fmsg"
	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/stationtools/a2vstation/sysex"
)

const programName = "a2vstation"

type CLI struct {
	Input  string `arg:"" name:"inputfile" help:"A-Station dump to read (.syx), - for stdin."`
	Output string `arg:"" name:"outputfile" help:"V-Station dump to write (.syx), - for stdout."`
}

var (
	infoColor = color.New(color.FgGreen)
	errColor  = color.New(color.FgRed, color.Bold)
)

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s INPUTFILE(.syx) OUTPUTFILE(.syx)\n", programName)
	fmt.Fprintf(w, "[Note] Supported only *.syx files, SMF(*.mid) is not supported.\n")
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cli CLI

	exited := false
	k, err := kong.New(&cli,
		kong.Name(programName),
		kong.Description("Convert A-Station dumps into V-Station readable dumps."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { exited = true }))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	ctx, err := k.Parse(args)
	if exited {
		/* --help was handled by kong */
		return 0
	} else if err != nil {
		fmt.Fprintf(stderr, "%s %s\n", errColor.Sprint("[ERR]"), err)
		usage(stderr)
		return 1
	}

	c := &Context{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}

	if err := ctx.Run(c); err != nil {
		reportError(stderr, err)
		return 1
	}

	return 0
}

func reportError(w io.Writer, err error) {
	/* The fault chain text is for debugging, users get the description */
	msg := fmsg.GetIssue(err)
	if msg == "" {
		msg = err.Error()
	}
	fmt.Fprintf(w, "%s %s\n", errColor.Sprint("[ERR]"), msg)

	var fe *sysex.FrameError
	if errors.As(err, &fe) && len(fe.Header) > 0 && fe.Offset < len(fe.Header) {
		mark := make([]bool, len(fe.Header))
		mark[fe.Offset] = true
		fmt.Fprint(w, hexdump(0, fe.Header, mark))
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
