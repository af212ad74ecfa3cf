package sysex

import (
	"fmt"
	"io"

	"gitlab.com/gomidi/midi/v2"
)

type Config struct {
	/* Level 0 is the per frame description, higher levels are progress and debug output */
	LogFunc func(level int, format string, param ...interface{})
}

type Stats struct {
	Frames int
	Bytes  int
}

// Transcoder converts a stream of A-Station dumps into K/V-Station dumps.
// It is not safe for concurrent use.
type Transcoder struct {
	config Config
	buf    []byte
}

func New(config Config) *Transcoder {
	return &Transcoder{
		config: config,
		buf:    make([]byte, 0, MaxFrameSize),
	}
}

func (t *Transcoder) log(level int, format string, param ...interface{}) {
	if t.config.LogFunc != nil {
		t.config.LogFunc(level, format, param...)
	}
}

// Transcode reads frames from r and writes every patched frame to w before
// the next one is read. On error the output contains only the frames that
// preceded the failing one.
func (t *Transcoder) Transcode(r io.ByteReader, w io.Writer) (Stats, error) {
	var stats Stats
	inFrame := false
	t.buf = t.buf[:0]

	for pos := 0; ; pos++ {
		b, err := r.ReadByte()
		if err == io.EOF {
			break
		} else if err != nil {
			return stats, fmt.Errorf("read failed at offset %d: %w", pos, err)
		}

		if b == StartMarker {
			if inFrame {
				return stats, newFrameError(ErrorTruncatedFrame, stats.Frames, t.buf, len(t.buf))
			}
			inFrame = true
			t.buf = append(t.buf[:0], b)
			continue
		}

		if !inFrame {
			return stats, &FrameError{
				Err:      ErrorNotSysex,
				Frame:    -1,
				Offset:   pos,
				Got:      b,
				Want:     StartMarker,
				HasValue: true,
			}
		}

		if len(t.buf) >= MaxFrameSize {
			return stats, newFrameError(ErrorFrameTooLong, stats.Frames, t.buf, len(t.buf))
		}

		t.buf = append(t.buf, b)
		if b != EndMarker {
			continue
		}

		inFrame = false
		if err := t.emit(stats.Frames, w); err != nil {
			return stats, err
		}

		stats.Frames++
		stats.Bytes += len(t.buf)
	}

	if inFrame {
		return stats, newFrameError(ErrorTruncatedFrame, stats.Frames, t.buf, len(t.buf))
	}

	t.log(1, "Converted %d frames, %d bytes", stats.Frames, stats.Bytes)
	return stats, nil
}

func (t *Transcoder) emit(index int, w io.Writer) error {
	frame := t.buf

	if err := work(frame, index, true); err != nil {
		return err
	}

	t.log(1, "Frame %d: %s, %d bytes", index, MessageType(frame[OffsetMsgType]), len(frame))
	t.log(2, "Frame %d: %s", index, midi.Message(frame).String())

	if info, ok := Describe(frame); ok {
		t.log(0, "%s", info)
	}

	n, err := w.Write(frame)
	if err == nil && n != len(frame) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return fmt.Errorf("%w: frame %d: %v", ErrorWrite, index, err)
	}

	return nil
}

// Transcode is a convenience wrapper around New(config).Transcode(r, w).
func Transcode(r io.ByteReader, w io.Writer, config Config) (Stats, error) {
	return New(config).Transcode(r, w)
}
