package htmler

// renderList writes items inside a <ul> or <ol>. Items that are lists or
// tables themselves are nested directly, without an <li> around them.
func (r *renderer) renderList(tag string, items []Value, depth int) error {
	r.emit("<" + tag + ">")
	for _, item := range items {
		if isListLike(Classify(item)) {
			if err := r.render(item, depth+1); err != nil {
				return err
			}
			continue
		}
		r.emit("<li>")
		if err := r.render(item, depth+1); err != nil {
			return err
		}
		r.emit("</li>")
	}
	r.emit("</" + tag + ">")
	return nil
}
