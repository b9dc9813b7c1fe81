// Package htmler renders nested data as HTML for human-readable display.
//
// Data is a tree of [Value] nodes. [Classify] sorts every node into one of
// five shapes and [Render] turns each shape into markup, recursing into
// children:
//
//   - [Text] (and the [Heading] and [Emphasis] hints) → text
//   - [List] → <ul>, one <li> per element
//   - [List] whose elements are all lists → <table>, one <tr> per element
//   - [OrderedList] → <ol>
//   - [Map] → <dl>, entries in ascending key order
//
// A list or table inside a list is nested directly, without an <li> around
// it. Inside a table, [HeaderCell] renders as <th> instead of <td>.
//
//	v := htmler.List{
//		htmler.List{htmler.Header(htmler.Text("Name")), htmler.Header(htmler.Text("Age"))},
//		htmler.List{htmler.Text("bob"), htmler.Text("12")},
//	}
//	s, _ := htmler.RenderString(v, htmler.DefaultOptions())
//
// # Options
//
// [Options] is passed once and applies unchanged at every nesting level.
// Start from [DefaultOptions]: table border and cellspacing default to 1,
// width is unset, and the last column is not stretched. Options can also be
// read from YAML with [LoadOptions].
//
// # Escaping
//
// Text is written verbatim by default, so callers may embed their own
// markup. Set [Options.Escape] when the data is not trusted.
//
// # Input
//
// [From] converts ordinary Go values (maps, slices, structs, scalars).
// [DecodeYAML] and [DecodeJSON] read documents; YAML tags such as !ol and
// !th select ordered lists and header cells.
//
// # Output
//
// [Writer] wraps a sink and writes a complete document: a head before the
// first value and a foot on [Writer.Close]. [Write], [Marshal], [WriteIter],
// and [WriteChan] are one-call wrappers. Set [Options.ContentOnly] to omit
// the head and foot.
//
// # Errors
//
// Rendering never fails for finite, acyclic input. The package exports
// sentinel errors for the remaining cases:
//
//   - [ErrTooDeep] — nesting exceeds [Options.MaxDepth] or the decode limit
//   - [ErrClosed] — write after [Writer.Close]
//   - [ErrDecode] — malformed YAML or JSON
//   - [ErrInvalidOption] — options that fail [Options.Validate]
package htmler
