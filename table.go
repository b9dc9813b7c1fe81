package htmler

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// renderTable writes a list of lists as a <table>. Outer elements are rows,
// inner elements are cells.
func (r *renderer) renderTable(rows List, depth int) error {
	r.emit(r.tableOpen())
	for _, row := range rows {
		r.emit("<tr>")
		cells := rowCells(row)
		for i, cell := range cells {
			tag := "td"
			cell, header := unwrapHeader(cell)
			if header {
				tag = "th"
			}
			open := "<" + tag + ">"
			if r.opts.TableExpandRightCol && i == len(cells)-1 {
				open = "<" + tag + ` width="100%">`
			}
			r.emit(open)
			if err := r.render(r.truncateCell(cell), depth+2); err != nil {
				return err
			}
			r.emit("</" + tag + ">")
		}
		r.emit("</tr>")
	}
	r.emit("</table>")
	return nil
}

func (r *renderer) tableOpen() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<table border="%d" cellspacing="%d"`, r.opts.TableBorder, r.opts.TableSpacing)
	if r.opts.TableWidth != "" {
		fmt.Fprintf(&sb, ` width="%s"`, r.text(r.opts.TableWidth))
	}
	sb.WriteString(">")
	return sb.String()
}

func rowCells(row Value) []Value {
	switch row := row.(type) {
	case List:
		return row
	case OrderedList:
		return row
	default:
		return nil
	}
}

// truncateCell shortens scalar text cells to CellMaxWidth display columns.
// Containers are left alone.
func (r *renderer) truncateCell(cell Value) Value {
	if r.opts.CellMaxWidth <= 0 {
		return cell
	}
	switch c := cell.(type) {
	case Text:
		return Text(truncate(string(c), r.opts.CellMaxWidth))
	case Emphasis:
		return Emphasis(truncate(string(c), r.opts.CellMaxWidth))
	default:
		return cell
	}
}

func truncate(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}
