package htmler

// Value is a node of renderable data. The set of implementations is closed:
// [Text], [Heading], [Emphasis], [List], [OrderedList], [Map], and
// [HeaderCell]. A nil Value renders as empty text.
//
// Values must be acyclic. Use [Options.MaxDepth] to guard against input that
// may not be.
type Value interface {
	value()
}

// Text is a scalar rendered verbatim.
type Text string

// Heading is a scalar rendered as an <hN> element. Levels outside 1..6 are
// clamped.
type Heading struct {
	Level int
	Text  string
}

// Emphasis is a scalar rendered as an <em> element.
type Emphasis string

// List is an ordered collection. It renders as a bulleted list, or as a
// table when every element is itself a [List] or [OrderedList].
type List []Value

// OrderedList is a list rendered as a numbered list.
type OrderedList []Value

// Map associates text keys with values. It renders as a definition list in
// ascending key order.
type Map map[string]Value

// HeaderCell marks a table cell as a header. Outside of a table it renders
// as its inner value.
type HeaderCell struct {
	Value Value
}

func (Text) value()        {}
func (Heading) value()     {}
func (Emphasis) value()    {}
func (List) value()        {}
func (OrderedList) value() {}
func (Map) value()         {}
func (HeaderCell) value()  {}

// H returns text tagged as a heading of the given level.
func H(level int, text string) Heading { return Heading{Level: level, Text: text} }

// Em returns text tagged for emphasis.
func Em(text string) Emphasis { return Emphasis(text) }

// Header marks v as a header cell.
func Header(v Value) HeaderCell { return HeaderCell{Value: v} }

// Ordered returns items as a numbered list.
func Ordered(items ...Value) OrderedList { return OrderedList(items) }
