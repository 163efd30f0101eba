package parser

import (
	"testing"

	tu "github.com/benoitkugler/svgstyle/utils/testutils"
)

func ident(s string) Token { return Token{Kind: KIdent, Data: s} }

var ws = Token{Kind: KWhitespace}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input    string
		expected []Token
	}{
		{"", nil},
		{"a  b", []Token{ident("a"), ws, ident("b")}},
		{"a\r\n\t b", []Token{ident("a"), ws, ident("b")}},
		{"-3.5e2px", []Token{{Kind: KDimension, Number: -350, NumberType: Number, Sign: SignMinus, Data: "px"}}},
		{`\41 BC`, []Token{ident("ABC")}},
		{`a\:b`, []Token{ident("a:b")}},
		{"1em", []Token{{Kind: KDimension, Number: 1, Data: "em"}}},
		{"1e3", []Token{{Kind: KNumber, Number: 1000, NumberType: Number}}},
		{"50%", []Token{{Kind: KPercentage, Number: 50}}},
		{"+5", []Token{{Kind: KNumber, Number: 5, Sign: SignPlus}}},
		{".5", []Token{{Kind: KNumber, Number: 0.5, NumberType: Number}}},
		{"-foo", []Token{ident("-foo")}},
		{"--x", []Token{ident("--x")}},
		{"- 1", []Token{{Kind: KDelim, Delim: '-'}, ws, {Kind: KNumber, Number: 1}}},
		{"#foo #1a", []Token{{Kind: KHash, HashType: HashIdentifier, Data: "foo"}, ws, {Kind: KHash, Data: "1a"}}},
		{"# a", []Token{{Kind: KDelim, Delim: '#'}, ws, ident("a")}},
		{"@import", []Token{{Kind: KAtKeyword, Data: "import"}}},
		{"<!-- -->", []Token{{Kind: KCDO}, ws, {Kind: KCDC}}},
		{"/* c */a/**/", []Token{ident("a")}},
		{"/* unterminated", nil},
		{`"abc" 'it\'s'`, []Token{{Kind: KString, Data: "abc"}, ws, {Kind: KString, Data: "it's"}}},
		{"\"a\\\nb\"", []Token{{Kind: KString, Data: "ab"}}},
		{"\"abc\nx", []Token{{Kind: KBadString}, ws, ident("x")}},
		{`"open`, []Token{{Kind: KString, Data: "open"}}},
		{"url( foo.png )", []Token{{Kind: KURL, Data: "foo.png"}}},
		{`url(a\)b)`, []Token{{Kind: KURL, Data: "a)b"}}},
		{"url(#clip", []Token{{Kind: KURL, Data: "#clip"}}},
		{"url(a b) c", []Token{{Kind: KBadURL}, ws, ident("c")}},
		{`url( "foo")`, []Token{{Kind: KFunction, Data: "url"}, ws, {Kind: KString, Data: "foo"}, {Kind: KRightParenthesis}}},
		{"rgb(1,2)", []Token{
			{Kind: KFunction, Data: "rgb"}, {Kind: KNumber, Number: 1}, {Kind: KComma},
			{Kind: KNumber, Number: 2}, {Kind: KRightParenthesis},
		}},
		{"a{b:c;}", []Token{
			ident("a"), {Kind: KLeftCurlyBracket}, ident("b"), {Kind: KColon},
			ident("c"), {Kind: KSemicolon}, {Kind: KRightCurlyBracket},
		}},
		{"[x]>~", []Token{
			{Kind: KLeftSquareBracket}, ident("x"), {Kind: KRightSquareBracket},
			{Kind: KDelim, Delim: '>'}, {Kind: KDelim, Delim: '~'},
		}},
		{"a\x00b", []Token{ident("a\uFFFDb")}},
		{"été", []Token{ident("été")}},
		{`\0`, []Token{ident("\uFFFD")}},
	}
	for _, tt := range tests {
		got := Tokenize(tt.input)
		tu.AssertEqual(t, got, tt.expected, tt.input)
	}
}

func TestKeepComments(t *testing.T) {
	z := NewTokenizer("/* c */a")
	z.KeepComments = true
	tu.AssertEqual(t, z.Tokenize(), []Token{{Kind: KComment}, ident("a")}, "comments")
}

func TestTokenHelpers(t *testing.T) {
	tokens := Tokenize("Inherit 12 1.5 > 3px")
	if !tokens[0].IsIdent("inherit") || tokens[0].IsIdent("initial") {
		t.Fatal("IsIdent should ignore case")
	}
	if !tokens[2].IsInt() || tokens[2].Int() != 12 {
		t.Fatalf("unexpected integer %v", tokens[2])
	}
	if tokens[4].IsInt() {
		t.Fatal("1.5 is not an integer")
	}
	if !tokens[6].IsDelim('>') {
		t.Fatal("expected delimiter")
	}
	tu.AssertEqual(t, tokens[8].String(), `<dimension 3 "px">`, "String")
}
