// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/MKhiriev/go-file-syncer/internal/utils"
	"github.com/MKhiriev/go-file-syncer/models"
)

// parseListing extracts file descriptors from an Apache-style autoindex
// page. The layout is the fancy-index table: one <tr> per entry with the
// link in the second cell, the modification date in the third and the
// size in the fourth. Rows that do not fit that shape (header, separator,
// parent-directory link, sort links) are skipped.
func parseListing(r io.Reader, base *url.URL, extension string) ([]models.FileInfo, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListingParse, err)
	}

	table := findElement(doc, "table")
	if table == nil {
		return nil, fmt.Errorf("%w: no file table in response", ErrListingParse)
	}

	suffix := strings.ToLower(extension)

	var files []models.FileInfo
	for _, row := range collectElements(table, "tr") {
		cells := collectElements(row, "td")
		if len(cells) < 4 {
			continue
		}

		link := findElement(cells[1], "a")
		if link == nil {
			continue
		}
		name := attrValue(link, "href")
		if name == "" || strings.HasSuffix(name, "/") || strings.HasPrefix(name, "?") {
			continue
		}
		if suffix != "" && !strings.HasSuffix(strings.ToLower(name), suffix) {
			continue
		}

		ref, err := url.Parse(name)
		if err != nil {
			continue
		}

		files = append(files, models.FileInfo{
			Name:         name,
			URL:          base.ResolveReference(ref).String(),
			Size:         utils.ParseListingSize(textContent(cells[3])),
			LastModified: strings.TrimSpace(textContent(cells[2])),
		})
	}

	return files, nil
}

// findElement returns the first descendant of n (depth-first, n included)
// with the given tag, or nil.
func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// collectElements returns all descendants of n with the given tag in
// document order. n itself is not considered.
func collectElements(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			out = append(out, c)
		}
		out = append(out, collectElements(c, tag)...)
	}
	return out
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
