package sysex

import (
	"errors"
	"fmt"
)

var (
	ErrorFileOpen          = errors.New("File open error")
	ErrorNotSysex          = errors.New("Not a system exclusive file")
	ErrorUnknownVendorID   = errors.New("Unknown vendor ID")
	ErrorUnknownDeviceType = errors.New("Unknown device type")
	ErrorAlreadyTarget     = errors.New("The input data is V-Station/K-Station dump. No conversion required")
	ErrorUnknownDeviceID   = errors.New("Unknown device ID")
	ErrorWrite             = errors.New("File write error")
	ErrorTruncatedFrame    = errors.New("Frame is not terminated")
	ErrorShortFrame        = errors.New("Frame is shorter than its header")
	ErrorFrameTooLong      = errors.New("Frame exceeds the program pair dump size")
	ErrorStandardMIDIFile  = fmt.Errorf("%w: SMF(*.mid) is not supported", ErrorNotSysex)
)

// FrameError reports a problem at a specific byte of the input.
type FrameError struct {
	Err error

	Frame  int /* Index of the frame in the stream, 0 based */
	Offset int /* Byte offset inside the frame, or inside the stream when Frame < 0 */

	Got, Want byte
	HasValue  bool

	Header []byte
}

func (e *FrameError) Error() string {
	var where string
	if e.Frame < 0 {
		where = fmt.Sprintf("stream offset %d", e.Offset)
	} else {
		where = fmt.Sprintf("frame %d, offset %d", e.Frame, e.Offset)
	}

	if e.HasValue {
		return fmt.Sprintf("%s: %s: Unknown data (%02x), it should be %02x", where, e.Err, e.Got, e.Want)
	}
	return fmt.Sprintf("%s: %s", where, e.Err)
}

func (e *FrameError) Unwrap() error {
	return e.Err
}

func newFrameError(err error, index int, frame []byte, offset int) *FrameError {
	header := frame
	if len(header) > 16 {
		header = header[:16]
	}

	return &FrameError{
		Err:    err,
		Frame:  index,
		Offset: offset,
		Header: append([]byte(nil), header...),
	}
}

func mismatch(err error, index int, frame []byte, offset int, want byte) *FrameError {
	e := newFrameError(err, index, frame, offset)
	e.Got = frame[offset]
	e.Want = want
	e.HasValue = true
	return e
}
