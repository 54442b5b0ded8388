package quillmark

import "strings"

// The block delimiter is a fixed three-character token occupying its own
// line. It is always structural: a document that needs a visual rule in
// rendered output must use a different token (***, ___).
const delimiter = "---"

// rawBlock is one delimiter-separated unit: an optional header span plus a
// body span. Produced by splitBlocks and consumed immediately by parseHeader.
type rawBlock struct {
	header     string
	hasHeader  bool
	headerLoc  Location // first header content line
	openerLoc  Location // the opening delimiter line
	body       string
	bodyOffset int
}

// isDelimiterLine reports whether the line (without its terminator) is
// exactly the delimiter token, tolerating a trailing carriage return.
func isDelimiterLine(line string) bool {
	return strings.TrimSuffix(line, "\r") == delimiter
}

// splitBlocks partitions the document into raw blocks. Partitioning is
// greedy: the first delimiter line opens a header, the next one closes it,
// and text up to the next delimiter line (or end of input) is the body. A
// document with no delimiter lines yields exactly one headerless block.
func splitBlocks(src string, lim Limits) ([]rawBlock, *ParseError) {
	lines, offsets := splitLines(src)

	var blocks []rawBlock

	i := 0
	if len(lines) == 0 || !isDelimiterLine(lines[0]) {
		// Leading text before any delimiter forms a headerless block.
		next := nextDelimiter(lines, 0)
		end := len(src)
		if next < len(lines) {
			end = offsets[next]
		}
		blocks = append(blocks, rawBlock{
			body:       src[:end],
			bodyOffset: 0,
		})
		i = next
	}

	for i < len(lines) {
		openerLoc := Location{Line: i + 1, Column: 1, Offset: offsets[i]}

		closing := nextDelimiter(lines, i+1)
		if closing >= len(lines) {
			return nil, parseErrf(CodeMalformedStructure, &openerLoc,
				"metadata block opened but never closed with %q", delimiter)
		}

		headerStart := offsets[i+1]
		headerEnd := offsets[closing]
		header := src[headerStart:headerEnd]
		if int64(len(header)) > lim.MaxHeaderBytes {
			return nil, limitErrf(&openerLoc,
				"metadata block too large: %d bytes (max %d)", len(header), lim.MaxHeaderBytes)
		}

		bodyStart := len(src)
		if closing+1 < len(lines) {
			bodyStart = offsets[closing+1]
		}
		next := nextDelimiter(lines, closing+1)
		bodyEnd := len(src)
		if next < len(lines) {
			bodyEnd = offsets[next]
		}

		blocks = append(blocks, rawBlock{
			header:     header,
			hasHeader:  true,
			headerLoc:  Location{Line: i + 2, Column: 1, Offset: headerStart},
			openerLoc:  openerLoc,
			body:       src[bodyStart:bodyEnd],
			bodyOffset: bodyStart,
		})
		i = next
	}

	if len(blocks) == 0 {
		blocks = append(blocks, rawBlock{body: src})
	}
	return blocks, nil
}

// splitLines returns the document's lines (without terminators stripped,
// except that each element excludes its trailing \n) together with the byte
// offset of each line start.
func splitLines(src string) ([]string, []int) {
	if src == "" {
		return nil, nil
	}
	var lines []string
	var offsets []int
	start := 0
	for start <= len(src)-1 {
		offsets = append(offsets, start)
		idx := strings.IndexByte(src[start:], '\n')
		if idx < 0 {
			lines = append(lines, src[start:])
			break
		}
		lines = append(lines, src[start:start+idx])
		start += idx + 1
	}
	return lines, offsets
}

func nextDelimiter(lines []string, from int) int {
	for j := from; j < len(lines); j++ {
		if isDelimiterLine(lines[j]) {
			return j
		}
	}
	return len(lines)
}
