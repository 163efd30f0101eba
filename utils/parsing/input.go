// Package parsing provides a small cursor over a string, shared by the CSS
// tokenizer and by the helpers reading SVG attribute values (numbers, lists).
package parsing

import "unicode/utf8"

// Input is a cursor over a bounded string.
// It is a plain value: copying an Input saves its position,
// assigning the copy back restores it.
type Input struct {
	data string
	pos  int
}

// NewInput returns a cursor at the start of s.
func NewInput(s string) Input { return Input{data: s} }

// Peek returns the byte n positions after the cursor,
// or 0 if that position is past the end of the input.
func (in Input) Peek(n int) byte {
	if i := in.pos + n; i >= 0 && i < len(in.data) {
		return in.data[i]
	}
	return 0
}

// PeekRune decodes the rune at the cursor, returning its size in bytes.
// It returns (utf8.RuneError, 0) at the end of the input.
func (in Input) PeekRune() (rune, int) {
	if in.pos >= len(in.data) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(in.data[in.pos:])
}

// Advance moves the cursor n bytes forward, stopping at the end of the input.
func (in *Input) Advance(n int) {
	in.pos += n
	if in.pos > len(in.data) {
		in.pos = len(in.data)
	}
}

// Empty returns true when the whole input has been consumed.
func (in Input) Empty() bool { return in.pos >= len(in.data) }

// Len returns the number of bytes remaining.
func (in Input) Len() int { return len(in.data) - in.pos }

// Pos returns the current offset in the input.
func (in Input) Pos() int { return in.pos }

// Since returns the input between the offset start and the cursor.
func (in Input) Since(start int) string { return in.data[start:in.pos] }

// Remaining returns the part of the input not consumed yet.
func (in Input) Remaining() string { return in.data[in.pos:] }

// SkipString advances past s if the input starts with it.
func (in *Input) SkipString(s string) bool {
	if len(in.data)-in.pos < len(s) || in.data[in.pos:in.pos+len(s)] != s {
		return false
	}
	in.pos += len(s)
	return true
}
