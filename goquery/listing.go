// Package goquery parses web-served directory index pages using goquery.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/drawfind"
)

var _ drawfind.ListingParser = (*IndexParser)(nil)

// IndexParser turns the hyperlinks of a directory index page (Apache,
// nginx, IIS "browse" pages and the like) into directory entries.
type IndexParser struct {
	// Selector picks the anchors to consider. Defaults to "a[href]".
	Selector string
}

// NewIndexParser creates a new IndexParser matching every anchor.
func NewIndexParser() *IndexParser {
	return &IndexParser{Selector: "a[href]"}
}

// ParseListing returns the page's hyperlinks in document order.
//
// Entry names are the trimmed anchor text with surrounding slashes removed.
// Links are resolved against baseURL, which is always treated as a
// directory. Links resolving to the same URL are reported once, preferring
// the occurrence with non-empty text (fancy indexes link an icon and the
// name separately).
func (p *IndexParser) ParseListing(html string, baseURL string) ([]drawfind.DirectoryEntry, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, drawfind.Errorf(drawfind.EINVALID, "invalid base URL: %v", err)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
		base.RawPath = ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, drawfind.Errorf(drawfind.EINVALID, "failed to parse HTML: %v", err)
	}

	selector := p.Selector
	if selector == "" {
		selector = "a[href]"
	}

	seen := make(map[string]int)
	var entries []drawfind.DirectoryEntry

	doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || strings.TrimSpace(href) == "" {
			return
		}
		if isNonHTTPLink(href) {
			return
		}

		resolved, ok := resolveURL(base, href)
		if !ok {
			return
		}

		entry := drawfind.DirectoryEntry{
			Name:  strings.Trim(strings.TrimSpace(sel.Text()), "/"),
			Ref:   resolved.String(),
			IsDir: strings.HasSuffix(resolved.Path, "/"),
		}

		if idx, ok := seen[entry.Ref]; ok {
			if entries[idx].Name == "" && entry.Name != "" {
				entries[idx] = entry
			}
			return
		}
		seen[entry.Ref] = len(entries)
		entries = append(entries, entry)
	})

	return entries, nil
}

// resolveURL resolves href against base with the fragment stripped.
func resolveURL(base *url.URL, href string) (*url.URL, bool) {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return nil, false
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""
	return resolved, true
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
