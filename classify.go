package htmler

// Shape is the structural category a [Value] renders as.
type Shape int

const (
	ShapeScalar   Shape = iota // plain text
	ShapeSequence              // <ul>
	ShapeTable                 // <table>, a list of lists
	ShapeOrdered               // <ol>
	ShapeMapping               // <dl>
)

var shapeNames = [...]string{
	ShapeScalar:   "scalar",
	ShapeSequence: "sequence",
	ShapeTable:    "table",
	ShapeOrdered:  "ordered",
	ShapeMapping:  "mapping",
}

// unwrapHeader strips every [HeaderCell] layer from v and reports whether
// there was one.
func unwrapHeader(v Value) (Value, bool) {
	header := false
	for {
		h, ok := v.(HeaderCell)
		if !ok {
			return v, header
		}
		v, header = h.Value, true
	}
}

// String returns the shape name.
func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return "unknown"
	}
	return shapeNames[s]
}

// Classify reports the shape of v. It never fails: anything that is not a
// container is a scalar. A [HeaderCell] is classified by its inner value,
// however deeply header markers are nested.
func Classify(v Value) Shape {
	v, _ = unwrapHeader(v)
	switch v := v.(type) {
	case OrderedList:
		return ShapeOrdered
	case Map:
		return ShapeMapping
	case List:
		if isTable(v) {
			return ShapeTable
		}
		return ShapeSequence
	default:
		return ShapeScalar
	}
}

// isTable reports whether every element of l is sequence-shaped. An empty
// list is not a table.
func isTable(l List) bool {
	if len(l) == 0 {
		return false
	}
	for _, item := range l {
		if !isSequence(item) {
			return false
		}
	}
	return true
}

func isSequence(v Value) bool {
	switch v.(type) {
	case List, OrderedList:
		return true
	default:
		return false
	}
}

// isListLike reports whether a shape renders as its own list container, so
// that it does not need an <li> wrapper inside a parent list.
func isListLike(s Shape) bool {
	return s == ShapeSequence || s == ShapeOrdered || s == ShapeTable
}
