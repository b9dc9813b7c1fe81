package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/jmespath/go-jmespath"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/htmler"
)

const stdinName = "-"

type renderFlags struct {
	config         string
	input          string
	output         string
	query          string
	title          string
	width          string
	border         int
	spacing        int
	cellMaxWidth   int
	maxDepth       int
	expandRightCol bool
	escape         bool
	contentOnly    bool
	verbose        bool
}

func newRenderCmd() *cobra.Command {
	var f renderFlags
	cmd := &cobra.Command{
		Use:   "render [file...]",
		Short: "Render data files as one HTML document",
		Long: `Render reads YAML or JSON files (or stdin when no file or "-" is given)
and writes one HTML document containing every document in every file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options(cmd)
			if err != nil {
				return err
			}
			if f.input != "auto" && f.input != "yaml" && f.input != "json" {
				return fmt.Errorf("unknown input format %q (want auto, yaml, or json)", f.input)
			}
			if len(args) == 0 {
				args = []string{stdinName}
			}
			log := newLogger(cmd.ErrOrStderr(), f.verbose)
			if err := runRender(cmd, log, f, opts, args); err != nil {
				return runtimeError{err}
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.config, "config", "", "YAML options file")
	fl.StringVar(&f.input, "input", "auto", "Input format (auto, yaml, json)")
	fl.StringVarP(&f.output, "output", "o", "", "Output file path (default: stdout)")
	fl.StringVar(&f.query, "query", "", "JMESPath expression selecting the data to render")
	fl.StringVar(&f.title, "title", "", "Document title")
	fl.StringVar(&f.width, "width", "", "Table width attribute")
	fl.IntVar(&f.border, "border", 1, "Table border attribute")
	fl.IntVar(&f.spacing, "spacing", 1, "Table cellspacing attribute")
	fl.IntVar(&f.cellMaxWidth, "cell-max-width", 0, "Truncate table cells to this many columns (0: no limit)")
	fl.IntVar(&f.maxDepth, "max-depth", 0, "Fail on data nested deeper than this (0: no limit)")
	fl.BoolVar(&f.expandRightCol, "expand-right-col", false, "Stretch the last table column")
	fl.BoolVar(&f.escape, "escape", false, "HTML-escape text")
	fl.BoolVar(&f.contentOnly, "content-only", false, "Omit the document head and foot")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "Log progress to stderr")
	return cmd
}

// options resolves rendering options: defaults, then the config file, then
// flags given on the command line. A config file that cannot be read or
// parsed is a runtime error; invalid flag values are usage errors.
func (f renderFlags) options(cmd *cobra.Command) (htmler.Options, error) {
	opts := htmler.DefaultOptions()
	if f.config != "" {
		var err error
		if opts, err = htmler.LoadOptions(f.config); err != nil {
			return htmler.Options{}, runtimeError{err}
		}
	}
	fl := cmd.Flags()
	if fl.Changed("border") {
		opts.TableBorder = f.border
	}
	if fl.Changed("spacing") {
		opts.TableSpacing = f.spacing
	}
	if fl.Changed("width") {
		opts.TableWidth = f.width
	}
	if fl.Changed("expand-right-col") {
		opts.TableExpandRightCol = f.expandRightCol
	}
	if fl.Changed("escape") {
		opts.Escape = f.escape
	}
	if fl.Changed("cell-max-width") {
		opts.CellMaxWidth = f.cellMaxWidth
	}
	if fl.Changed("max-depth") {
		opts.MaxDepth = f.maxDepth
	}
	if fl.Changed("content-only") {
		opts.ContentOnly = f.contentOnly
	}
	if fl.Changed("title") {
		opts.Title = f.title
	}
	return opts, opts.Validate()
}

func runRender(cmd *cobra.Command, log *slog.Logger, f renderFlags, opts htmler.Options, paths []string) (err error) {
	var values []htmler.Value
	for _, path := range paths {
		data, err := readInput(cmd.InOrStdin(), path)
		if err != nil {
			return err
		}
		format := inputFormat(f.input, path)
		docs, err := decode(data, format, f.query)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		log.Debug("decoded input", "path", path, "format", format, "documents", len(docs))
		values = append(values, docs...)
	}

	var out io.Writer = cmd.OutOrStdout()
	if f.output != "" {
		file, cerr := os.Create(f.output)
		if cerr != nil {
			return fmt.Errorf("creating output: %w", cerr)
		}
		defer func() {
			if cerr := file.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing output: %w", cerr)
			}
		}()
		out = file
	}

	hw := htmler.NewWriter(out, opts)
	if err := hw.Write(values...); err != nil {
		_ = hw.Close()
		return err
	}
	if err := hw.Close(); err != nil {
		return err
	}
	log.Debug("wrote document", "values", len(values), "output", outputName(f.output))
	return nil
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == stdinName {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return data, nil
}

// inputFormat picks the decoder. YAML is the fallback because every JSON
// document is also YAML.
func inputFormat(flag, path string) string {
	if flag != "auto" {
		return flag
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return "json"
	}
	return "yaml"
}

func decode(data []byte, format, query string) ([]htmler.Value, error) {
	if query != "" {
		return decodeQuery(data, format, query)
	}
	if format == "json" {
		v, err := htmler.DecodeJSON(data)
		if err != nil {
			return nil, err
		}
		return []htmler.Value{v}, nil
	}
	return htmler.DecodeYAML(data)
}

// decodeQuery decodes into plain Go data, applies a JMESPath expression to
// each document, and converts the results. YAML tags are not preserved.
func decodeQuery(data []byte, format, query string) ([]htmler.Value, error) {
	expr, err := jmespath.Compile(query)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", query, err)
	}
	docs, err := decodePlain(data, format)
	if err != nil {
		return nil, err
	}
	out := make([]htmler.Value, 0, len(docs))
	for _, doc := range docs {
		res, err := expr.Search(doc)
		if err != nil {
			return nil, fmt.Errorf("query %q: %w", query, err)
		}
		v, err := htmler.From(res)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// jsonAPI decodes numbers as json.Number so large integers keep every digit.
var jsonAPI = sonic.Config{UseNumber: true}.Froze()

func decodePlain(data []byte, format string) ([]any, error) {
	if format == "json" {
		var doc any
		if err := jsonAPI.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: json: %s", htmler.ErrDecode, err)
		}
		return []any{queryNumbers(doc)}, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var docs []any
	for {
		var doc any
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return docs, nil
			}
			return nil, fmt.Errorf("%w: yaml: %s", htmler.ErrDecode, err)
		}
		docs = append(docs, doc)
	}
}

// queryNumbers turns json.Number values that float64 holds exactly into
// float64, the only numeric type JMESPath compares. Integers beyond 2^53
// stay json.Number and render as written.
func queryNumbers(v any) any {
	switch v := v.(type) {
	case json.Number:
		return queryNumber(v)
	case map[string]any:
		for k, item := range v {
			v[k] = queryNumbers(item)
		}
	case []any:
		for i, item := range v {
			v[i] = queryNumbers(item)
		}
	}
	return v
}

const maxExactInt = 1 << 53

func queryNumber(n json.Number) any {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil || i > maxExactInt || i < -maxExactInt {
			return n
		}
	}
	f, err := n.Float64()
	if err != nil {
		return n
	}
	return f
}

func outputName(path string) string {
	if path == "" {
		return "stdout"
	}
	return path
}
