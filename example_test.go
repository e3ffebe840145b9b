package mdsite_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/alnah/go-mdsite"
)

// Example converts one page with the embedded default template.
func Example() {
	conv, err := mdsite.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := conv.Convert(context.Background(), mdsite.Input{
		Markdown: "# Tolkien Fan Club\n\nThe **Silmarillion** is _underrated_.",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(result.Title)
	fmt.Println(result.Fragment)
	// Output:
	// Tolkien Fan Club
	// <div><h1>Tolkien Fan Club</h1><p>The <b>Silmarillion</b> is <i>underrated</i>.</p></div>
}

// ExampleMarkdownToHTML shows the native engine on its own.
func ExampleMarkdownToHTML() {
	html, err := mdsite.MarkdownToHTML("> All that is gold\n> does not glitter\n\n1. Frodo\n2. Sam")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(html)
	// Output: <div><blockquote>All that is gold
	// does not glitter</blockquote><ol><li>Frodo</li><li>Sam</li></ol></div>
}

// ExampleConverter_Convert_malformed shows sentinel matching on failure.
func ExampleConverter_Convert_malformed() {
	conv, err := mdsite.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	_, err = conv.Convert(context.Background(), mdsite.Input{Markdown: "# T\n\nan `unclosed span"})
	fmt.Println(errors.Is(err, mdsite.ErrMalformedMarkdown))
	// Output: true
}
