package htmler_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bjaus/htmler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- From ---

type recipe struct {
	Name     string
	Serves   int
	Vegan    bool
	Steps    []string
	Notes    map[string]float64
	Secret   string        `htmler:"-"`
	Duration time.Duration `htmler:"time"`
	private  string
}

type node struct {
	Next *node
}

func TestFromScalars(t *testing.T) {
	t.Parallel()
	var nilPtr *recipe
	tests := map[string]struct {
		in   any
		want htmler.Value
	}{
		"nil":      {in: nil, want: htmler.Text("")},
		"string":   {in: "hi", want: htmler.Text("hi")},
		"int":      {in: -12, want: htmler.Text("-12")},
		"uint":     {in: uint8(7), want: htmler.Text("7")},
		"float":    {in: 34.5, want: htmler.Text("34.5")},
		"integral": {in: 12.0, want: htmler.Text("12")},
		"huge":     {in: 1e300, want: htmler.Text("1e+300")},
		"bool":     {in: true, want: htmler.Text("true")},
		"bytes":    {in: []byte("raw"), want: htmler.Text("raw")},
		"stringer": {in: 1500 * time.Millisecond, want: htmler.Text("1.5s")},
		"nil ptr":  {in: nilPtr, want: htmler.Text("")},
		"value":    {in: htmler.Em("x"), want: htmler.Em("x")},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := htmler.From(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromContainers(t *testing.T) {
	t.Parallel()
	in := map[string]any{
		"names":  []string{"bob", "joe"},
		"grid":   [][]int{{1, 2}, {3, 4}},
		"ages":   map[int]string{1: "one"},
		"marked": htmler.Ordered(htmler.Text("a")),
		"array":  [2]bool{true, false},
	}
	got, err := htmler.From(in)
	require.NoError(t, err)
	assert.Equal(t, htmler.Map{
		"names":  htmler.List{htmler.Text("bob"), htmler.Text("joe")},
		"grid":   htmler.List{htmler.List{htmler.Text("1"), htmler.Text("2")}, htmler.List{htmler.Text("3"), htmler.Text("4")}},
		"ages":   htmler.Map{"1": htmler.Text("one")},
		"marked": htmler.Ordered(htmler.Text("a")),
		"array":  htmler.List{htmler.Text("true"), htmler.Text("false")},
	}, got)
	assert.Equal(t, htmler.ShapeTable, htmler.Classify(got.(htmler.Map)["grid"]))
}

func TestFromStruct(t *testing.T) {
	t.Parallel()
	r := &recipe{
		Name:     "Pasta",
		Serves:   2,
		Steps:    []string{"boil", "eat"},
		Notes:    map[string]float64{"salt": 0.5},
		Secret:   "hidden",
		Duration: 10 * time.Minute,
		private:  "skip",
	}
	got, err := htmler.From(r)
	require.NoError(t, err)
	assert.Equal(t, htmler.Map{
		"Name":   htmler.Text("Pasta"),
		"Serves": htmler.Text("2"),
		"Vegan":  htmler.Text("false"),
		"Steps":  htmler.List{htmler.Text("boil"), htmler.Text("eat")},
		"Notes":  htmler.Map{"salt": htmler.Text("0.5")},
		"time":   htmler.Text("10m0s"),
	}, got)
}

func TestFromPointerValue(t *testing.T) {
	t.Parallel()
	text := htmler.Text("hello")
	list := htmler.List{htmler.Text("a"), htmler.Text("b")}
	var nilText *htmler.Text
	tests := map[string]struct {
		in   any
		want htmler.Value
	}{
		"text":    {in: &text, want: htmler.Text("hello")},
		"list":    {in: &list, want: list},
		"nil":     {in: nilText, want: htmler.Text("")},
		"field":   {in: struct{ Name *htmler.Text }{Name: &text}, want: htmler.Map{"Name": htmler.Text("hello")}},
		"wrapped": {in: []any{&text}, want: htmler.List{htmler.Text("hello")}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := htmler.From(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromPointerValueRenders(t *testing.T) {
	t.Parallel()
	text := htmler.Text("hello")
	got, err := htmler.From(struct{ Name *htmler.Text }{Name: &text})
	require.NoError(t, err)
	out, err := htmler.RenderString(got, htmler.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "<dl><dt>Name</dt><dd>hello</dd></dl>", out)
}

func TestFromCycle(t *testing.T) {
	t.Parallel()
	n := &node{}
	n.Next = n
	_, err := htmler.From(n)
	require.ErrorIs(t, err, htmler.ErrTooDeep)
}

// --- JSON ---

func TestDecodeJSON(t *testing.T) {
	t.Parallel()
	got, err := htmler.DecodeJSON([]byte(`{"joe": 34, "bob": 12.5, "ok": true, "none": null, "list": [1, "x"]}`))
	require.NoError(t, err)
	assert.Equal(t, htmler.Map{
		"joe":  htmler.Text("34"),
		"bob":  htmler.Text("12.5"),
		"ok":   htmler.Text("true"),
		"none": htmler.Text(""),
		"list": htmler.List{htmler.Text("1"), htmler.Text("x")},
	}, got)
}

func TestDecodeJSONLargeNumbers(t *testing.T) {
	t.Parallel()
	got, err := htmler.DecodeJSON([]byte(`{"id": 9007199254740993, "n": 12345678901234567891, "exp": 1e3, "neg": -0.25}`))
	require.NoError(t, err)
	assert.Equal(t, htmler.Map{
		"id":  htmler.Text("9007199254740993"),
		"n":   htmler.Text("12345678901234567891"),
		"exp": htmler.Text("1e3"),
		"neg": htmler.Text("-0.25"),
	}, got)
}

func TestDecodeJSONMatchesYAML(t *testing.T) {
	t.Parallel()
	src := []byte(`{"id": 9007199254740993, "n": 12345678901234567891, "list": [1, 2.5]}`)
	fromJSON, err := htmler.DecodeJSON(src)
	require.NoError(t, err)
	fromYAML, err := htmler.DecodeYAML(src)
	require.NoError(t, err)
	require.Len(t, fromYAML, 1)
	assert.Equal(t, fromYAML[0], fromJSON)
}

func TestDecodeJSONInvalid(t *testing.T) {
	t.Parallel()
	_, err := htmler.DecodeJSON([]byte(`{"a": [1, 2`))
	require.ErrorIs(t, err, htmler.ErrDecode)
}

// --- YAML ---

func TestDecodeYAMLTags(t *testing.T) {
	t.Parallel()
	src := `
title: !h2 Pasta
note: !em Serve hot
steps: !ol
  - Boil water
  - Add pasta
table:
  - [!th Item, !th Grams]
  - [pasta, 200]
`
	docs, err := htmler.DecodeYAML([]byte(src))
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, htmler.Map{
		"title": htmler.H(2, "Pasta"),
		"note":  htmler.Em("Serve hot"),
		"steps": htmler.Ordered(htmler.Text("Boil water"), htmler.Text("Add pasta")),
		"table": htmler.List{
			htmler.List{htmler.Header(htmler.Text("Item")), htmler.Header(htmler.Text("Grams"))},
			htmler.List{htmler.Text("pasta"), htmler.Text("200")},
		},
	}, docs[0])
}

func TestDecodeYAMLRendersTable(t *testing.T) {
	t.Parallel()
	docs, err := htmler.DecodeYAML([]byte("- [!th Name, !th Age]\n- [bob, 12]\n"))
	require.NoError(t, err)
	out, err := htmler.RenderString(docs[0], htmler.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, `<table border="1" cellspacing="1"><tr><th>Name</th><th>Age</th></tr><tr><td>bob</td><td>12</td></tr></table>`, out)
}

func TestDecodeYAMLMultipleDocuments(t *testing.T) {
	t.Parallel()
	docs, err := htmler.DecodeYAML([]byte("a\n---\n- b\n"))
	require.NoError(t, err)
	assert.Equal(t, []htmler.Value{htmler.Text("a"), htmler.List{htmler.Text("b")}}, docs)
}

func TestDecodeYAMLNullsAndAliases(t *testing.T) {
	t.Parallel()
	src := "base: &b shared\ncopy: *b\ntilde: ~\nempty:\n"
	docs, err := htmler.DecodeYAML([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, htmler.Map{
		"base":  htmler.Text("shared"),
		"copy":  htmler.Text("shared"),
		"tilde": htmler.Text(""),
		"empty": htmler.Text(""),
	}, docs[0])
}

func TestDecodeYAMLMergeKeys(t *testing.T) {
	t.Parallel()
	src := `
base: &b {x: 1, y: 2}
extra: &e {y: 9, z: 3}
item:
  y: 4
  <<: *b
many:
  <<: [*e, *b]
`
	docs, err := htmler.DecodeYAML([]byte(src))
	require.NoError(t, err)
	require.Len(t, docs, 1)
	m := docs[0].(htmler.Map)
	assert.Equal(t, htmler.Map{"x": htmler.Text("1"), "y": htmler.Text("4")}, m["item"])
	assert.Equal(t, htmler.Map{"x": htmler.Text("1"), "y": htmler.Text("9"), "z": htmler.Text("3")}, m["many"])
	assert.Equal(t, htmler.Map{"x": htmler.Text("1"), "y": htmler.Text("2")}, m["base"])
}

func TestDecodeYAMLIgnoresMisplacedTags(t *testing.T) {
	t.Parallel()
	docs, err := htmler.DecodeYAML([]byte("a: !ol text\nb: !h2 [x]\nc: !h9 y\n"))
	require.NoError(t, err)
	assert.Equal(t, htmler.Map{
		"a": htmler.Text("text"),
		"b": htmler.List{htmler.Text("x")},
		"c": htmler.Text("y"),
	}, docs[0])
}

func TestDecodeYAMLAcceptsJSON(t *testing.T) {
	t.Parallel()
	docs, err := htmler.DecodeYAML([]byte(`{"bob": 12, "joe": [1, 2]}`))
	require.NoError(t, err)
	assert.Equal(t, htmler.Map{
		"bob": htmler.Text("12"),
		"joe": htmler.List{htmler.Text("1"), htmler.Text("2")},
	}, docs[0])
}

func TestDecodeYAMLEmpty(t *testing.T) {
	t.Parallel()
	docs, err := htmler.DecodeYAML(nil)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestDecodeYAMLInvalid(t *testing.T) {
	t.Parallel()
	_, err := htmler.DecodeYAML([]byte("a: [1, 2\n"))
	require.ErrorIs(t, err, htmler.ErrDecode)
}

// --- Options files ---

func TestReadOptions(t *testing.T) {
	t.Parallel()
	src := "table_border: 0\ntable_width: 80%\ntable_expand_right_col: true\nescape: true\n"
	opts, err := htmler.ReadOptions(strings.NewReader(src))
	require.NoError(t, err)
	want := htmler.DefaultOptions()
	want.TableBorder = 0
	want.TableWidth = "80%"
	want.TableExpandRightCol = true
	want.Escape = true
	assert.Equal(t, want, opts)
}

func TestReadOptionsEmpty(t *testing.T) {
	t.Parallel()
	opts, err := htmler.ReadOptions(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, htmler.DefaultOptions(), opts)
}

func TestReadOptionsErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		src  string
		want error
	}{
		"unknown key":     {src: "bogus: 1\n", want: htmler.ErrDecode},
		"wrong type":      {src: "table_border: wide\n", want: htmler.ErrDecode},
		"negative border": {src: "table_border: -1\n", want: htmler.ErrInvalidOption},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := htmler.ReadOptions(strings.NewReader(tt.src))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadOptions(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "opts.yaml")
	require.NoError(t, os.WriteFile(path, []byte("table_spacing: 3\ntitle: Report\n"), 0o600))
	opts, err := htmler.LoadOptions(path)
	require.NoError(t, err)
	assert.Equal(t, 3, opts.TableSpacing)
	assert.Equal(t, 1, opts.TableBorder)
	assert.Equal(t, "Report", opts.Title)
}

func TestLoadOptionsMissingFile(t *testing.T) {
	t.Parallel()
	_, err := htmler.LoadOptions(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, fs.ErrNotExist)
}
