// Package markdown converts a small Markdown dialect into an htmlnode tree.
//
// The conversion runs in stages:
//
//  1. SplitBlocks cuts the document on blank lines.
//  2. Classify assigns each block a BlockType by its leading markers.
//  3. Tokenize splits block text into inline Spans (bold, italic, code,
//     links and images).
//  4. BlockToNode strips block markers and builds the block's subtree.
//
// ToDocument wraps every block subtree in a single <div> root, and ToHTML
// renders it. Every stage is a pure function over its input string; any
// malformed construct aborts the whole document with a sentinel error.
//
// The dialect is intentionally small: no nested lists, no escaping, no raw
// HTML and no reference links.
package markdown
