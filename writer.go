package htmler

import (
	"io"
	"strings"
)

// Writer writes rendered values to an underlying sink as one document.
//
// The document head is written before the first value and the foot by
// [Writer.Close], unless [Options.ContentOnly] is set. All values of a
// Write call are rendered before any of them is written, so a value that
// fails to render leaves no partial markup behind. The caller owns w and
// must close it after closing the Writer.
type Writer struct {
	w       io.Writer
	opts    Options
	started bool
	closed  bool
	err     error
}

// NewWriter returns a Writer that renders to w with opts.
func NewWriter(w io.Writer, opts Options) *Writer {
	return &Writer{w: w, opts: opts}
}

// Write renders each value and writes it on its own line. The first error
// is sticky: later calls return it without writing.
func (hw *Writer) Write(values ...Value) error {
	if hw.closed {
		return ErrClosed
	}
	if hw.err != nil {
		return hw.err
	}
	if len(values) == 0 {
		return nil
	}
	if err := hw.opts.Validate(); err != nil {
		return hw.fail(err)
	}
	rendered := make([]string, len(values))
	for i, v := range values {
		frags, err := Render(v, hw.opts)
		if err != nil {
			return hw.fail(err)
		}
		rendered[i] = strings.Join(frags, "") + "\n"
	}
	if !hw.started {
		hw.started = true
		if !hw.opts.ContentOnly {
			if err := writeHead(hw.w, hw.opts.Title); err != nil {
				return hw.fail(err)
			}
		}
	}
	for _, s := range rendered {
		if _, err := io.WriteString(hw.w, s); err != nil {
			return hw.fail(err)
		}
	}
	return nil
}

// Close writes the document foot if a head was written. It does not close
// the underlying sink. Close is idempotent and returns the first error seen
// by the Writer.
func (hw *Writer) Close() error {
	if hw.closed {
		return hw.err
	}
	hw.closed = true
	if hw.err != nil {
		return hw.err
	}
	if hw.started && !hw.opts.ContentOnly {
		if err := writeFoot(hw.w); err != nil {
			hw.err = err
		}
	}
	return hw.err
}

func (hw *Writer) fail(err error) error {
	hw.err = err
	return err
}
