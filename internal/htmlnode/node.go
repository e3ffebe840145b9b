// Package htmlnode provides a minimal HTML element tree and its renderer.
//
// A tree is built bottom-up from two variants: LeafNode holds text (optionally
// wrapped in a tag), ParentNode wraps an ordered list of children. Rendering
// is strict: structural violations are reported as errors instead of being
// repaired. Attribute values and text are emitted verbatim (no escaping).
package htmlnode

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for render violations.
var (
	ErrMissingTag      = errors.New("parent node requires a tag")
	ErrMissingChildren = errors.New("parent node requires at least one child")
	ErrMissingValue    = errors.New("leaf node requires a value")
)

// voidElements cannot hold content, so an empty value is their only legal form.
var voidElements = map[string]bool{
	"br":  true,
	"hr":  true,
	"img": true,
}

// Node is an element of the tree. The set of implementations is closed:
// only *LeafNode and *ParentNode satisfy it.
type Node interface {
	// Render returns the markup for the node and its descendants.
	Render() (string, error)

	renderTo(b *strings.Builder) error
}

// Compile-time interface implementation checks.
var (
	_ Node = (*LeafNode)(nil)
	_ Node = (*ParentNode)(nil)
)

// LeafNode is a terminal node. An empty Tag renders the value as bare text.
type LeafNode struct {
	Tag   string
	Value string
	Attrs Attributes
}

// NewLeaf creates a LeafNode.
func NewLeaf(tag, value string, attrs ...Attribute) *LeafNode {
	return &LeafNode{Tag: tag, Value: value, Attrs: attrs}
}

// Text creates an untagged LeafNode.
func Text(value string) *LeafNode {
	return &LeafNode{Value: value}
}

// Render returns the leaf markup.
func (n *LeafNode) Render() (string, error) {
	var b strings.Builder
	if err := n.renderTo(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (n *LeafNode) renderTo(b *strings.Builder) error {
	if n.Tag == "" {
		b.WriteString(n.Value)
		return nil
	}
	if n.Value == "" {
		if voidElements[n.Tag] {
			b.WriteString("<" + n.Tag)
			n.Attrs.renderTo(b)
			b.WriteString(">")
			return nil
		}
		return fmt.Errorf("%w: <%s>", ErrMissingValue, n.Tag)
	}
	b.WriteString("<" + n.Tag)
	n.Attrs.renderTo(b)
	b.WriteString(">")
	b.WriteString(n.Value)
	b.WriteString("</" + n.Tag + ">")
	return nil
}

// String implements fmt.Stringer for debugging output.
func (n *LeafNode) String() string {
	return fmt.Sprintf("LeafNode(%q, %q, %v)", n.Tag, n.Value, n.Attrs)
}

// ParentNode is a composite node. It exclusively owns its children.
type ParentNode struct {
	Tag      string
	Children []Node
	Attrs    Attributes
}

// NewParent creates a ParentNode.
func NewParent(tag string, children []Node, attrs ...Attribute) *ParentNode {
	return &ParentNode{Tag: tag, Children: children, Attrs: attrs}
}

// Append adds children in order.
func (n *ParentNode) Append(children ...Node) {
	n.Children = append(n.Children, children...)
}

// Render returns the markup of the parent and all descendants.
// The first violation found in document order aborts rendering.
func (n *ParentNode) Render() (string, error) {
	var b strings.Builder
	if err := n.renderTo(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (n *ParentNode) renderTo(b *strings.Builder) error {
	if n.Tag == "" {
		return ErrMissingTag
	}
	if len(n.Children) == 0 {
		return fmt.Errorf("%w: <%s>", ErrMissingChildren, n.Tag)
	}
	b.WriteString("<" + n.Tag)
	n.Attrs.renderTo(b)
	b.WriteString(">")
	for _, child := range n.Children {
		if child == nil {
			return fmt.Errorf("%w: <%s> has a nil child", ErrMissingChildren, n.Tag)
		}
		if err := child.renderTo(b); err != nil {
			return err
		}
	}
	b.WriteString("</" + n.Tag + ">")
	return nil
}

// String implements fmt.Stringer for debugging output.
func (n *ParentNode) String() string {
	parts := make([]string, len(n.Children))
	for i, c := range n.Children {
		parts[i] = fmt.Sprint(c)
	}
	return fmt.Sprintf("ParentNode(%q, [%s], %v)", n.Tag, strings.Join(parts, ", "), n.Attrs)
}
