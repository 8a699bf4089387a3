package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/drawfind"
)

// Run executes the find command.
func (c *FindCmd) Run(deps *Dependencies) error {
	result, err := lookup(deps, c.Code)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Found %s in %s, latest revision %s\n",
		result.Code, result.Backend, revisionLabel(result.Latest.Revision))
	printPages(deps.Stdout, result.Latest)

	if c.All {
		printOlderRevisions(deps.Stdout, result)
	}

	return nil
}

// lookup runs the searcher, reports failed backends on stderr and returns
// the winning result.
func lookup(deps *Dependencies, code string) (*drawfind.Result, error) {
	report, err := deps.Searcher.Search(deps.Ctx, drawfind.Request{Code: code})
	if report != nil {
		for _, a := range report.Failures() {
			fmt.Fprintf(deps.Stderr, "warning: %s: %s\n", a.Backend, errorText(a.Err))
		}
	}
	if err != nil {
		fmt.Fprintln(deps.Stderr, "search stopped")
		return nil, err
	}
	if !report.Found() {
		return nil, fmt.Errorf("drawing %s not found in any archive", code)
	}
	return report.Result, nil
}

func printPages(w io.Writer, sel drawfind.Selection) {
	for _, page := range sel.PageKeys() {
		fmt.Fprintf(w, "Page %s:\n", page)
		for _, f := range sel.Pages[page] {
			fmt.Fprintf(w, "  %s\n", f.Ref)
		}
	}
}

func printOlderRevisions(w io.Writer, result *drawfind.Result) {
	groups := drawfind.GroupMatches(result.Matches)
	for _, rev := range groups.Revisions() {
		if rev == result.Latest.Revision {
			continue
		}
		fmt.Fprintf(w, "Revision %s:\n", revisionLabel(rev))
		for _, m := range result.Matches {
			if m.Revision == rev {
				fmt.Fprintf(w, "  %s\n", m.Ref)
			}
		}
	}
}

func revisionLabel(rev string) string {
	if rev == "" {
		return "(none)"
	}
	return rev
}

// errorText returns the message of an application error, or the full
// error text for anything else.
func errorText(err error) string {
	if drawfind.ErrorCode(err) == drawfind.EINTERNAL {
		return err.Error()
	}
	return drawfind.ErrorMessage(err)
}

// archiveName returns the default file name for a packaged result.
func archiveName(result *drawfind.Result) string {
	parts := []string{string(result.Code), string(result.Backend)}
	if result.Latest.Revision != "" {
		parts = append(parts, result.Latest.Revision)
	}
	return strings.Join(parts, "-") + ".zip"
}
