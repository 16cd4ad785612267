package ui

import (
	"bytes"
	"io"
	"sort"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RenderOptions controls HTML output.
type RenderOptions struct {
	// Link maps a click action to a fallback URL. Elements whose click
	// action resolves to a non-empty URL are emitted as anchors.
	Link func(Action) string
}

// RenderHTML writes n as an HTML fragment.
func RenderHTML(w io.Writer, n Node, opts RenderOptions) error {
	for _, h := range toHTML(n, opts) {
		if err := html.Render(w, h); err != nil {
			return err
		}
	}
	return nil
}

// HTMLString renders n into a string.
func HTMLString(n Node, opts RenderOptions) (string, error) {
	var buf bytes.Buffer
	if err := RenderHTML(&buf, n, opts); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// toHTML converts n into one or more html nodes; a tagless node with
// children is a fragment.
func toHTML(n Node, opts RenderOptions) []*html.Node {
	if n.Tag == "" {
		var out []*html.Node
		if n.Raw != "" {
			out = append(out, &html.Node{Type: html.RawNode, Data: n.Raw})
		}
		if n.Text != "" {
			out = append(out, &html.Node{Type: html.TextNode, Data: n.Text})
		}
		for _, c := range n.Children {
			out = append(out, toHTML(c, opts)...)
		}
		return out
	}

	tag := n.Tag
	var href string
	if n.On.Click != "" && opts.Link != nil {
		if href = opts.Link(n.On.Click); href != "" {
			tag = "a"
		}
	}

	el := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attributes(n, href),
	}
	if n.Raw != "" {
		el.AppendChild(&html.Node{Type: html.RawNode, Data: n.Raw})
	}
	if n.Text != "" {
		el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Text})
	}
	for _, c := range n.Children {
		for _, h := range toHTML(c, opts) {
			el.AppendChild(h)
		}
	}
	return []*html.Node{el}
}

func attributes(n Node, href string) []html.Attribute {
	var attrs []html.Attribute
	add := func(k, v string) {
		if v != "" {
			attrs = append(attrs, html.Attribute{Key: k, Val: v})
		}
	}
	add("id", n.ID)
	add("class", n.Class)
	add("style", n.Style.String())
	add("href", href)
	add("data-on-click", string(n.On.Click))
	add("data-on-pointerenter", string(n.On.PointerEnter))
	add("data-on-pointerleave", string(n.On.PointerLeave))

	keys := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		attrs = append(attrs, html.Attribute{Key: k, Val: n.Attrs[k]})
	}
	return attrs
}
