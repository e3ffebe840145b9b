package markdown

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alnah/go-mdsite/internal/htmlnode"
)

// DocumentTag is the tag of the root element wrapping all blocks.
const DocumentTag = "div"

// ToHTML converts markdown to an HTML fragment.
func ToHTML(markdown string) (string, error) {
	doc, err := ToDocument(markdown)
	if err != nil {
		return "", err
	}
	return doc.Render()
}

// ToDocument builds the document tree: a <div> whose children are the
// translated blocks in document order. The first failing block aborts.
func ToDocument(markdown string) (*htmlnode.ParentNode, error) {
	blocks := ParseBlocks(markdown)
	root := htmlnode.NewParent(DocumentTag, make([]htmlnode.Node, 0, len(blocks)))
	for i, block := range blocks {
		node, err := BlockToNode(block)
		if err != nil {
			return nil, fmt.Errorf("block %d (%s): %w", i+1, block.Type, err)
		}
		root.Append(node)
	}
	return root, nil
}

// BlockToNode strips the block markers of b and builds its subtree.
func BlockToNode(b Block) (htmlnode.Node, error) {
	switch b.Type {
	case Paragraph:
		return spansParent("p", strings.ReplaceAll(b.Text, "\n", " "))
	case Heading:
		level := clampLevel(b.Level)
		return spansParent("h"+strconv.Itoa(level), stripHeadingMarker(b.Text))
	case CodeBlock:
		return spansParent("code", stripCodeFences(b.Text))
	case Quote:
		return spansParent("blockquote", stripQuoteMarkers(b.Text))
	case UnorderedList:
		return listParent("ul", b.Text, func(line string) string {
			return strings.TrimPrefix(line, listPrefix)
		})
	case OrderedList:
		return listParent("ol", b.Text, func(line string) string {
			return orderedItemPattern.ReplaceAllString(line, "")
		})
	default:
		return nil, fmt.Errorf("unknown block type %s", b.Type)
	}
}

// SpanToNode maps a span to its leaf element.
func SpanToNode(s Span) (*htmlnode.LeafNode, error) {
	switch s.Kind {
	case PlainText:
		return htmlnode.Text(s.Content), nil
	case Bold:
		return htmlnode.NewLeaf("b", s.Content), nil
	case Italic:
		return htmlnode.NewLeaf("i", s.Content), nil
	case Code:
		return htmlnode.NewLeaf("code", s.Content), nil
	case Link:
		return htmlnode.NewLeaf("a", s.Content, htmlnode.Attr("href", s.Target)), nil
	case Image:
		return htmlnode.NewLeaf("img", "",
			htmlnode.Attr("src", s.Target),
			htmlnode.Attr("alt", s.Content),
		), nil
	default:
		return nil, fmt.Errorf("unknown span kind %s", s.Kind)
	}
}

// TextToNodes tokenizes text and maps every span to a leaf.
func TextToNodes(text string) ([]htmlnode.Node, error) {
	spans, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	nodes := make([]htmlnode.Node, 0, len(spans))
	for _, span := range spans {
		leaf, err := SpanToNode(span)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, leaf)
	}
	return nodes, nil
}

func spansParent(tag, text string) (*htmlnode.ParentNode, error) {
	children, err := TextToNodes(text)
	if err != nil {
		return nil, err
	}
	return htmlnode.NewParent(tag, children), nil
}

// listParent builds one <li> per line of text.
func listParent(tag, text string, stripMarker func(string) string) (*htmlnode.ParentNode, error) {
	lines := strings.Split(text, "\n")
	items := make([]htmlnode.Node, 0, len(lines))
	for _, line := range lines {
		item, err := spansParent("li", stripMarker(line))
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return htmlnode.NewParent(tag, items), nil
}

func stripHeadingMarker(text string) string {
	return headingPattern.ReplaceAllString(text, "")
}

func stripCodeFences(text string) string {
	text = strings.TrimPrefix(text, codeFence)
	return strings.TrimSuffix(text, codeFence)
}

func stripQuoteMarkers(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if stripped, ok := strings.CutPrefix(line, quotePrefix); ok {
			lines[i] = stripped
			continue
		}
		lines[i] = strings.TrimPrefix(line, ">")
	}
	return strings.Join(lines, "\n")
}
