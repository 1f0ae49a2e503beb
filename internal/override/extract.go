package override

import "strings"

// TagBlock is one override block found in cue text.
type TagBlock struct {
	// Raw is the block content without its braces.
	Raw string
	// Offset indexes the cleared text, where the block's edits are spliced.
	Offset int
	// SourceOffset indexes the normalized source text.
	SourceOffset int
}

// ExtractBlocks removes every {...} block from text, leftmost first, and
// records where each one sat. An opening brace without a closing one is not a
// block and stays in the text.
func ExtractBlocks(text string) ([]TagBlock, string) {
	var blocks []TagBlock
	removed := 0
	for {
		start, end, ok := nextBlock(text)
		if !ok {
			break
		}
		blocks = append(blocks, TagBlock{
			Raw:          text[start+1 : end-1],
			Offset:       start,
			SourceOffset: start + removed,
		})
		text = text[:start] + text[end:]
		removed += end - start
	}
	return blocks, text
}

// nextBlock locates the leftmost brace pair. end is exclusive.
func nextBlock(text string) (int, int, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return 0, 0, false
	}
	closing := strings.IndexByte(text[start:], '}')
	if closing < 0 {
		return 0, 0, false
	}
	return start, start + closing + 1, true
}
