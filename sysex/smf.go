package sysex

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"gitlab.com/gomidi/midi/v2/smf"
)

var smfSignature = []byte("MThd")

// CheckContainer rejects Standard MIDI Files, which are a common mistake when
// exporting dumps. Nothing is consumed from r unless the input is an SMF.
func CheckContainer(r *bufio.Reader) error {
	sig, err := r.Peek(len(smfSignature))
	if err != nil && err != io.EOF {
		return err
	}

	if !bytes.Equal(sig, smfSignature) {
		return nil
	}

	s, err := smf.ReadFrom(r)
	if err != nil {
		return fmt.Errorf("%w (damaged: %v)", ErrorStandardMIDIFile, err)
	}

	return fmt.Errorf("%w (%d tracks)", ErrorStandardMIDIFile, len(s.Tracks))
}
