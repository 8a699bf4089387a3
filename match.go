package drawfind

import (
	"regexp"
	"slices"
	"strconv"
)

// PageSingle is the page key of a drawing file without a page suffix.
const PageSingle = "single"

// FileMatch is a file whose name satisfies a drawing filename grammar.
type FileMatch struct {
	Name     string // base file name
	Ref      string // URL or absolute path
	Revision string // "" when the name carries no revision letter
	Page     string // page digits, or PageSingle
}

// RemotePattern returns the filename grammar of the web archive:
// CODE(-PAGE)?-REVISION.tif, where the revision letter is mandatory.
// The pattern matches whole file names.
func RemotePattern(code DrawingCode) *regexp.Regexp {
	return regexp.MustCompile(`^` + regexp.QuoteMeta(string(code)) + `(?:-(\d+))?-([A-Z])\.tif$`)
}

// LocalPattern returns the filename grammar of the network shares:
// CODE(-PAGE)?-?REVISION?.tif, where the revision letter is optional.
// The pattern is anchored at the end of the name only.
func LocalPattern(code DrawingCode) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(string(code)) + `(?:-(\d+))?-?([A-Z])?\.tif$`)
}

// MatchFile applies a pattern returned by RemotePattern or LocalPattern to
// a file name. The page and revision are read from the pattern's two
// capture groups.
func MatchFile(pattern *regexp.Regexp, name, ref string) (FileMatch, bool) {
	m := pattern.FindStringSubmatch(name)
	if m == nil {
		return FileMatch{}, false
	}
	page := m[1]
	if page == "" {
		page = PageSingle
	}
	return FileMatch{
		Name:     name,
		Ref:      ref,
		Revision: m[2],
		Page:     page,
	}, true
}

// RevisionGroup maps revision label to page key to the files of that page,
// in the order they were found.
type RevisionGroup map[string]map[string][]FileMatch

// GroupMatches groups matches by revision and then by page.
func GroupMatches(matches []FileMatch) RevisionGroup {
	g := make(RevisionGroup)
	for _, m := range matches {
		pages, ok := g[m.Revision]
		if !ok {
			pages = make(map[string][]FileMatch)
			g[m.Revision] = pages
		}
		pages[m.Page] = append(pages[m.Page], m)
	}
	return g
}

// Revisions returns the revision labels present, latest first.
//
// Labels compare as plain strings in reverse order, so "B" is newer than
// "A" and any letter is newer than the empty label. Multi-character labels
// also compare as strings: "A10" sorts before "A2".
func (g RevisionGroup) Revisions() []string {
	labels := make([]string, 0, len(g))
	for label := range g {
		labels = append(labels, label)
	}
	slices.Sort(labels)
	slices.Reverse(labels)
	return labels
}

// Selection is the winning revision of a set of matches.
type Selection struct {
	Revision string
	Pages    map[string][]FileMatch

	// files keeps the traversal order across pages.
	files []FileMatch
}

// Empty reports whether the selection holds no files.
func (s Selection) Empty() bool {
	return len(s.files) == 0
}

// Files returns every file of the selected revision in traversal order.
func (s Selection) Files() []FileMatch {
	return slices.Clone(s.files)
}

// Refs returns the references of Files.
func (s Selection) Refs() []string {
	refs := make([]string, len(s.files))
	for i, f := range s.files {
		refs[i] = f.Ref
	}
	return refs
}

// PageKeys returns the page keys of the selection: PageSingle first,
// then numbered pages in ascending numeric order.
func (s Selection) PageKeys() []string {
	keys := make([]string, 0, len(s.Pages))
	for k := range s.Pages {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, comparePages)
	return keys
}

func comparePages(a, b string) int {
	if a == b {
		return 0
	}
	if a == PageSingle {
		return -1
	}
	if b == PageSingle {
		return 1
	}
	ai, aerr := strconv.Atoi(a)
	bi, berr := strconv.Atoi(b)
	if aerr == nil && berr == nil && ai != bi {
		if ai < bi {
			return -1
		}
		return 1
	}
	if a < b {
		return -1
	}
	return 1
}

// SelectLatest picks the latest revision among matches and returns its
// files grouped by page. Returns an empty Selection if matches is empty.
func SelectLatest(matches []FileMatch) Selection {
	revisions := GroupMatches(matches).Revisions()
	if len(revisions) == 0 {
		return Selection{}
	}
	latest := revisions[0]

	sel := Selection{
		Revision: latest,
		Pages:    make(map[string][]FileMatch),
	}
	for _, m := range matches {
		if m.Revision != latest {
			continue
		}
		sel.Pages[m.Page] = append(sel.Pages[m.Page], m)
		sel.files = append(sel.files, m)
	}
	return sel
}
