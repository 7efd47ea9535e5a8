// Package htmltext extracts flowable paragraphs from HTML fragments.
//
// It does no interpretation of layout or CSS, but collects the pure text of
// an element together with font spans for the common inline styling tags
// (b, strong, i, em, code).
package htmltext

import (
	"io"
	"strings"

	"github.com/npillmayer/lineflow"
	"golang.org/x/net/html"
)

// Fonts used for the recognized inline styling tags. Clients may swap these
// for fonts matching their metrics collaborator.
var (
	BoldFont   = &lineflow.Font{Name: "bold", Size: 10}
	ItalicFont = &lineflow.Font{Name: "italic", Size: 10}
	MonoFont   = &lineflow.Font{Name: "mono", Size: 10}
)

// InnerParagraph creates a paragraph from the textual content of an HTML
// element node and all its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript, with font spans covering text inside inline styling tags.
func InnerParagraph(n *html.Node) (*lineflow.Paragraph, error) {
	if n == nil {
		return nil, lineflow.ErrIllegalArguments
	}
	c := collector{}
	c.collect(n, nil)
	return c.paragraph(), nil
}

// ParagraphFromHTML creates a paragraph from the textual content of an HTML
// fragment.
func ParagraphFromHTML(input io.Reader) (*lineflow.Paragraph, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	c := collector{}
	for _, n := range nodes {
		c.collect(n, nil)
	}
	return c.paragraph(), nil
}

type collector struct {
	text  strings.Builder
	spans []lineflow.StyleSpan
}

func (c *collector) collect(n *html.Node, font *lineflow.Font) {
	if n.Type == html.ElementNode {
		if f := fontForTag(n.Data); f != nil {
			font = f
		}
	} else if n.Type == html.TextNode && n.Data != "" {
		from := uint64(c.text.Len())
		c.text.WriteString(n.Data)
		if font != nil {
			c.spans = append(c.spans, lineflow.StyleSpan{
				From: from,
				To:   uint64(c.text.Len()),
				Font: font,
			})
		}
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.collect(child, font)
	}
}

func (c *collector) paragraph() *lineflow.Paragraph {
	return &lineflow.Paragraph{Text: c.text.String(), Spans: mergeSpans(c.spans)}
}

func fontForTag(tag string) *lineflow.Font {
	switch tag {
	case "b", "strong":
		return BoldFont
	case "i", "em":
		return ItalicFont
	case "code", "tt", "pre":
		return MonoFont
	}
	return nil
}

// mergeSpans joins adjacent spans carrying the same font, which show up when
// an element contains several text nodes.
func mergeSpans(spans []lineflow.StyleSpan) []lineflow.StyleSpan {
	if len(spans) < 2 {
		return spans
	}
	out := spans[:1]
	for _, sp := range spans[1:] {
		last := &out[len(out)-1]
		if sp.Font == last.Font && sp.From == last.To {
			last.To = sp.To
			continue
		}
		out = append(out, sp)
	}
	return out
}
