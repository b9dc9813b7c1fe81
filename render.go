package htmler

import (
	"fmt"
	"html"
	"sort"
	"strings"
)

// Render renders v into markup fragments. Concatenated, the fragments form
// well-formed nested markup. The only error is [ErrTooDeep], returned when
// opts.MaxDepth is set and exceeded.
func Render(v Value, opts Options) ([]string, error) {
	r := renderer{opts: opts}
	if err := r.render(v, 0); err != nil {
		return nil, err
	}
	return r.out, nil
}

// RenderString renders v and concatenates the fragments.
func RenderString(v Value, opts Options) (string, error) {
	frags, err := Render(v, opts)
	if err != nil {
		return "", err
	}
	return strings.Join(frags, ""), nil
}

type renderer struct {
	opts Options
	out  []string
}

func (r *renderer) emit(frags ...string) {
	r.out = append(r.out, frags...)
}

func (r *renderer) render(v Value, depth int) error {
	if r.opts.MaxDepth > 0 && depth > r.opts.MaxDepth {
		return fmt.Errorf("%w: nesting exceeds %d levels", ErrTooDeep, r.opts.MaxDepth)
	}
	v, _ = unwrapHeader(v)
	switch Classify(v) {
	case ShapeSequence:
		return r.renderList("ul", v.(List), depth)
	case ShapeOrdered:
		return r.renderList("ol", v.(OrderedList), depth)
	case ShapeTable:
		return r.renderTable(v.(List), depth)
	case ShapeMapping:
		return r.renderMap(v.(Map), depth)
	default:
		r.renderScalar(v)
		return nil
	}
}

func (r *renderer) renderScalar(v Value) {
	switch v := v.(type) {
	case nil:
		r.emit("")
	case Text:
		r.emit(r.text(string(v)))
	case Emphasis:
		r.emit("<em>", r.text(string(v)), "</em>")
	case Heading:
		level := min(max(v.Level, 1), 6)
		r.emit(fmt.Sprintf("<h%d>", level), r.text(v.Text), fmt.Sprintf("</h%d>", level))
	default:
		r.emit(r.text(fmt.Sprint(v)))
	}
}

func (r *renderer) renderMap(m Map, depth int) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	r.emit("<dl>")
	for _, k := range keys {
		r.emit("<dt>", r.text(k), "</dt>", "<dd>")
		if err := r.render(m[k], depth+1); err != nil {
			return err
		}
		r.emit("</dd>")
	}
	r.emit("</dl>")
	return nil
}

func (r *renderer) text(s string) string {
	if r.opts.Escape {
		return html.EscapeString(s)
	}
	return s
}
