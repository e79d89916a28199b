package crawl

import (
	"path"
	"strings"

	"github.com/GBuch1/spider"
)

// IsFragmentLink reports whether link carries a fragment marker.
// Such anchors point inside a document and are never followed.
func IsFragmentLink(link string) bool {
	return strings.Contains(link, "#")
}

// ResolveLink resolves an internal link against the current location by
// replacing everything after the final path separator with link.
// The result is cleaned so that "../" segments cannot mint new locations
// for the same document. Absolute links are only cleaned.
func ResolveLink(current, link string) string {
	if strings.HasPrefix(link, "/") {
		return path.Clean(link)
	}
	dir := ""
	if i := strings.LastIndex(current, "/"); i >= 0 {
		dir = current[:i+1]
	}
	resolved := dir + link
	if resolved == "" {
		return ""
	}
	cleaned := path.Clean(resolved)
	// path.Clean drops a leading "./"; keep relative locations relative.
	if cleaned == "." {
		return ""
	}
	return cleaned
}

// ClassifyLinks filters and resolves raw anchors found at current.
// It returns the candidates in document order and the number of anchors
// dropped as in-document links (empty or carrying a fragment).
func ClassifyLinks(current string, anchors []string, markers []string) (links []string, filtered int) {
	for _, a := range anchors {
		a = strings.TrimSpace(a)
		if a == "" || IsFragmentLink(a) {
			filtered++
			continue
		}
		if spider.IsExternal(markers, a) {
			links = append(links, a)
			continue
		}
		resolved := ResolveLink(current, a)
		if resolved == "" {
			filtered++
			continue
		}
		links = append(links, resolved)
	}
	return links, filtered
}
