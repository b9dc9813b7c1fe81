// Htmler renders YAML and JSON data files as HTML.
//
// Usage:
//
//	htmler render report.yaml > report.html      # full document
//	htmler render --content-only data.json       # markup only
//	htmler render --query 'results[0]' out.json  # render a JMESPath selection
//	cat recipe.yaml | htmler render -o recipe.html
//
// Lists render as bulleted lists, lists of lists as tables, and mappings as
// definition lists. Tag a YAML sequence !ol for a numbered list and a table
// cell !th for a header cell.
package main

import (
	"os"

	"github.com/bjaus/htmler/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
