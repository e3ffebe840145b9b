package htmlnode

import "strings"

// Attribute is a single key/value pair on an element.
type Attribute struct {
	Key   string
	Value string
}

// Attr creates an Attribute.
func Attr(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Attributes is an ordered attribute list. Render order is insertion order.
type Attributes []Attribute

// Get returns the value for key and whether it was present.
func (a Attributes) Get(key string) (string, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// Set replaces the value for an existing key in place, or appends it.
func (a Attributes) Set(key, value string) Attributes {
	for i := range a {
		if a[i].Key == key {
			a[i].Value = value
			return a
		}
	}
	return append(a, Attribute{Key: key, Value: value})
}

// Render returns the attributes as ` key="value"` pairs.
// Values are not escaped.
func (a Attributes) Render() string {
	var b strings.Builder
	a.renderTo(&b)
	return b.String()
}

func (a Attributes) renderTo(b *strings.Builder) {
	for _, attr := range a {
		b.WriteString(" ")
		b.WriteString(attr.Key)
		b.WriteString(`="`)
		b.WriteString(attr.Value)
		b.WriteString(`"`)
	}
}
