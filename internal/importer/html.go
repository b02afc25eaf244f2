package importer

import (
	"io"
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// ParseHTMLPaths parses a Netscape bookmark HTML file and returns the local
// paths of its file:// links in document order. Links with any other scheme
// are skipped.
func ParseHTMLPaths(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var paths []string

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode && strings.ToLower(n.Data) == "a" {
			if p, ok := localPath(getAttr(n, "href")); ok {
				paths = append(paths, p)
			}
			return // Don't recurse into A
		}

		// Recurse into children
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)
	return paths, nil
}

// localPath converts a file:// href to a filesystem path.
func localPath(href string) (string, bool) {
	if href == "" {
		return "", false
	}
	u, err := url.Parse(href)
	if err != nil || !strings.EqualFold(u.Scheme, "file") || u.Path == "" {
		return "", false
	}
	// Only local hosts map onto the filesystem
	if u.Host != "" && u.Host != "localhost" {
		return "", false
	}

	p := u.Path
	// file:///C:/x carries a leading slash before the drive letter
	if len(p) >= 3 && p[0] == '/' && p[2] == ':' {
		p = p[1:]
	}
	return filepath.FromSlash(p), true
}

// getAttr returns the value of an attribute, case-insensitive.
func getAttr(n *html.Node, key string) string {
	key = strings.ToLower(key)
	for _, attr := range n.Attr {
		if strings.ToLower(attr.Key) == key {
			return attr.Val
		}
	}
	return ""
}
