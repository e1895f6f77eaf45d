// Package snapshot inspects downloaded bookmark assets.
package snapshot

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/net/html"
)

// Info describes a downloaded asset.
type Info struct {
	MIME      string
	Extension string
	// Title is the <title> of an HTML snapshot, empty otherwise.
	Title string
}

// Inspect sniffs the content type of data and, for HTML, extracts the
// document title.
func Inspect(data []byte) (Info, error) {
	mtype := mimetype.Detect(data)
	info := Info{MIME: mtype.String(), Extension: mtype.Extension()}
	if !mtype.Is("text/html") {
		return info, nil
	}

	title, err := Title(data)
	if err != nil {
		return info, err
	}
	info.Title = title
	return info, nil
}

// Title returns the whitespace-normalized text of the first <title>
// element in an HTML document.
func Title(data []byte) (string, error) {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	var title string
	var find func(*html.Node) bool
	find = func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "title" {
			var sb strings.Builder
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.TextNode {
					sb.WriteString(c.Data)
				}
			}
			title = strings.Join(strings.Fields(sb.String()), " ")
			return true
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if find(c) {
				return true
			}
		}
		return false
	}
	find(doc)
	return title, nil
}
