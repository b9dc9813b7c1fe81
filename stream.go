package htmler

import (
	"io"
	"iter"
)

// WriteIter renders values from an iterator into one document written to w.
// Each value is rendered and written as it arrives; iteration stops at the
// first error.
func WriteIter(w io.Writer, opts Options, seq iter.Seq[Value]) error {
	hw := NewWriter(w, opts)
	var streamErr error
	seq(func(v Value) bool {
		if err := hw.Write(v); err != nil {
			streamErr = err
			return false
		}
		return true
	})
	if streamErr != nil {
		return streamErr
	}
	return hw.Close()
}

// WriteChan renders values from a channel into one document written to w.
// It is a thin wrapper around [WriteIter].
func WriteChan(w io.Writer, opts Options, ch <-chan Value) error {
	return WriteIter(w, opts, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
