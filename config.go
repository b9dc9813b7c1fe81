package htmler

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadOptions reads options from a YAML file. Keys missing from the file
// keep their [DefaultOptions] value; unknown keys are an error.
//
//	table_border: 0
//	table_width: 80%
//	table_expand_right_col: true
func LoadOptions(path string) (Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return Options{}, fmt.Errorf("reading options: %w", err)
	}
	defer f.Close()
	return ReadOptions(f)
}

// ReadOptions reads YAML options from r. See [LoadOptions].
func ReadOptions(r io.Reader) (Options, error) {
	opts := DefaultOptions()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("%w: options: %s", ErrDecode, err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}
