package chapters

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
)

// Page filenames follow {prefix}-p{number}.md where prefix is an optional
// uppercase letter followed by digits, e.g. 101-p01.md or A3-p12.md.
var (
	prefixPattern   = regexp.MustCompile(`^([A-Z]?\d+)-`)
	pageNamePattern = regexp.MustCompile(`^([A-Z]?\d+)-p(\d+)\.md$`)
)

// Info holds the display metadata for a chapter prefix.
type Info struct {
	Category string
	Title    string
}

// InfoMap maps chapter prefixes to their display metadata.
type InfoMap map[string]Info

// Lookup returns the metadata for a prefix, or a generic fallback when the
// prefix is not registered.
func (m InfoMap) Lookup(prefix string) Info {
	if info, ok := m[prefix]; ok {
		return info
	}
	return Info{Category: "Unknown", Title: "Section " + prefix}
}

// Page is one page file within a chapter.
type Page struct {
	Number int
	Path   string
}

// Chapter is an ordered group of page files sharing a prefix.
type Chapter struct {
	Prefix string
	Info   Info
	Pages  []Page
}

// Prefix extracts the chapter prefix from a filename, e.g. "101" from
// "101-routing.md". The second return reports whether the name carried one.
func Prefix(name string) (string, bool) {
	m := prefixPattern.FindStringSubmatch(filepath.Base(name))
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ParsePageName splits a page filename into its prefix and page number.
func ParsePageName(name string) (prefix string, page int, ok bool) {
	m := pageNamePattern.FindStringSubmatch(filepath.Base(name))
	if m == nil {
		return "", 0, false
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return "", 0, false
	}
	return m[1], n, true
}

// PageFileName builds the filename for a page within a chapter,
// zero-padding the page number to two digits.
func PageFileName(prefix string, page int) string {
	return fmt.Sprintf("%s-p%02d.md", prefix, page)
}

// Collate groups page files into chapters ordered by prefix, with pages
// ordered by page number within each chapter. Paths whose base name does
// not match the page pattern are ignored.
func Collate(paths []string, infos InfoMap) []Chapter {
	groups := make(map[string][]Page)
	for _, path := range paths {
		prefix, num, ok := ParsePageName(path)
		if !ok {
			continue
		}
		groups[prefix] = append(groups[prefix], Page{Number: num, Path: path})
	}

	prefixes := make([]string, 0, len(groups))
	for prefix := range groups {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)

	result := make([]Chapter, 0, len(prefixes))
	for _, prefix := range prefixes {
		pages := groups[prefix]
		sort.Slice(pages, func(i, j int) bool { return pages[i].Number < pages[j].Number })
		result = append(result, Chapter{
			Prefix: prefix,
			Info:   infos.Lookup(prefix),
			Pages:  pages,
		})
	}
	return result
}
