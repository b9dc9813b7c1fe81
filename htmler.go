package htmler

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrTooDeep       = errors.New("structure too deep")
	ErrClosed        = errors.New("writer closed")
	ErrDecode        = errors.New("decode failed")
	ErrInvalidOption = errors.New("invalid option")
)

// Options controls rendering. Build one with [DefaultOptions] and change the
// fields you need; the zero value has a border and spacing of 0.
//
// The same Options apply at every nesting level, so a table inside a table
// cell gets the same border, spacing, and width as its parent.
type Options struct {
	// TableBorder is the border attribute of every table.
	TableBorder int `yaml:"table_border"`
	// TableSpacing is the cellspacing attribute of every table.
	TableSpacing int `yaml:"table_spacing"`
	// TableWidth is the width attribute of every table. Empty omits it.
	TableWidth string `yaml:"table_width"`
	// TableExpandRightCol stretches the last cell of each row to the
	// remaining width.
	TableExpandRightCol bool `yaml:"table_expand_right_col"`

	// Escape HTML-escapes scalar text and mapping keys. Off by default:
	// text is trusted markup and is written as is.
	Escape bool `yaml:"escape"`
	// CellMaxWidth truncates scalar table cells to this many display
	// columns with "...". Zero means no limit.
	CellMaxWidth int `yaml:"cell_max_width"`
	// MaxDepth fails rendering with [ErrTooDeep] when values nest deeper
	// than this. Zero means no limit.
	MaxDepth int `yaml:"max_depth"`

	// ContentOnly omits the document head and foot written by [Writer].
	ContentOnly bool `yaml:"content_only"`
	// Title is written into the document head.
	Title string `yaml:"title"`
}

// DefaultOptions returns the default rendering options.
func DefaultOptions() Options {
	return Options{
		TableBorder:  1,
		TableSpacing: 1,
	}
}

// Validate reports options that cannot produce sensible markup.
func (o Options) Validate() error {
	switch {
	case o.TableBorder < 0:
		return fmt.Errorf("%w: table border %d is negative", ErrInvalidOption, o.TableBorder)
	case o.TableSpacing < 0:
		return fmt.Errorf("%w: table spacing %d is negative", ErrInvalidOption, o.TableSpacing)
	case o.CellMaxWidth < 0:
		return fmt.Errorf("%w: cell max width %d is negative", ErrInvalidOption, o.CellMaxWidth)
	case o.MaxDepth < 0:
		return fmt.Errorf("%w: max depth %d is negative", ErrInvalidOption, o.MaxDepth)
	}
	return nil
}

// Write renders values as one document and writes it to w. Unless
// opts.ContentOnly is set the output is wrapped in a document head and foot.
func Write(w io.Writer, opts Options, values ...Value) error {
	hw := NewWriter(w, opts)
	if err := hw.Write(values...); err != nil {
		return err
	}
	return hw.Close()
}

// Marshal renders values and returns the bytes.
func Marshal(opts Options, values ...Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, opts, values...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
