package markdown

import (
	"fmt"
	"regexp"
	"strings"
)

// BlockType identifies the syntax of a block.
type BlockType int

// Block types, in no particular order. Classification priority is fixed by
// Classify, not by these values.
const (
	Paragraph BlockType = iota
	Heading
	CodeBlock
	Quote
	UnorderedList
	OrderedList
)

// String returns the lower-case name of the block type.
func (t BlockType) String() string {
	switch t {
	case Paragraph:
		return "paragraph"
	case Heading:
		return "heading"
	case CodeBlock:
		return "code"
	case Quote:
		return "quote"
	case UnorderedList:
		return "unordered_list"
	case OrderedList:
		return "ordered_list"
	default:
		return fmt.Sprintf("BlockType(%d)", int(t))
	}
}

// Heading level bounds.
const (
	MinHeadingLevel = 1
	MaxHeadingLevel = 6
)

// Block markers.
const (
	blockSeparator = "\n\n"
	codeFence      = "```"
	quotePrefix    = "> "
	listPrefix     = "- "
)

var (
	headingPattern     = regexp.MustCompile(`^(#{1,6}) `)
	orderedItemPattern = regexp.MustCompile(`^\d+\. `)
)

// Block is a classified paragraph-sized unit of markdown.
// Level is set for headings only.
type Block struct {
	Text  string
	Type  BlockType
	Level int
}

// SplitBlocks cuts markdown on blank lines. Each block is trimmed of
// surrounding whitespace and blocks that end up empty are dropped.
// Document order is preserved.
func SplitBlocks(markdown string) []string {
	var blocks []string
	for _, chunk := range strings.Split(markdown, blockSeparator) {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		blocks = append(blocks, chunk)
	}
	return blocks
}

// Classify determines the block type of text. First match wins:
// heading, code, quote, unordered list, ordered list, paragraph.
//
// A heading needs one to six '#' followed by a space, so "####### x" is a
// paragraph. Ordered list numbering is not validated.
func Classify(text string) Block {
	if m := headingPattern.FindStringSubmatch(text); m != nil {
		return Block{Text: text, Type: Heading, Level: clampLevel(len(m[1]))}
	}
	if strings.HasPrefix(text, codeFence) && strings.HasSuffix(text, codeFence) {
		return Block{Text: text, Type: CodeBlock}
	}
	if strings.HasPrefix(text, quotePrefix) {
		return Block{Text: text, Type: Quote}
	}
	if strings.HasPrefix(text, listPrefix) {
		return Block{Text: text, Type: UnorderedList}
	}
	if orderedItemPattern.MatchString(text) {
		return Block{Text: text, Type: OrderedList}
	}
	return Block{Text: text, Type: Paragraph}
}

// ParseBlocks splits and classifies markdown in one step.
func ParseBlocks(markdown string) []Block {
	texts := SplitBlocks(markdown)
	blocks := make([]Block, len(texts))
	for i, text := range texts {
		blocks[i] = Classify(text)
	}
	return blocks
}

func clampLevel(level int) int {
	if level < MinHeadingLevel {
		return MinHeadingLevel
	}
	if level > MaxHeadingLevel {
		return MaxHeadingLevel
	}
	return level
}
