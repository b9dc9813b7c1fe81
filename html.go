package htmler

import (
	"fmt"
	"html"
	"io"
)

// writeHead writes the document boilerplate that precedes rendered content.
func writeHead(w io.Writer, title string) error {
	if _, err := fmt.Fprintln(w, "<!DOCTYPE html>"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "<html>"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "<head>"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, `  <meta charset="utf-8">`); err != nil {
		return err
	}
	if title != "" {
		if _, err := fmt.Fprintf(w, "  <title>%s</title>\n", html.EscapeString(title)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "</head>"); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "<body>")
	return err
}

func writeFoot(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "</body>"); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "</html>")
	return err
}
