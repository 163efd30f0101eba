package parsing

import (
	"reflect"
	"testing"
)

func TestInputBounds(t *testing.T) {
	in := NewInput("ab")
	if in.Peek(0) != 'a' || in.Peek(1) != 'b' || in.Peek(2) != 0 || in.Peek(10) != 0 {
		t.Fatal("unexpected peek")
	}
	saved := in
	in.Advance(5)
	if !in.Empty() || in.Len() != 0 || in.Pos() != 2 {
		t.Fatalf("advance should stop at the end, got %d", in.Pos())
	}
	in = saved
	if in.Pos() != 0 || in.Remaining() != "ab" {
		t.Fatal("copy should restore the position")
	}
	if r, w := in.PeekRune(); r != 'a' || w != 1 {
		t.Fatalf("unexpected rune %q", r)
	}
	if !in.SkipString("ab") || in.Since(0) != "ab" {
		t.Fatal("SkipString")
	}
	if in.SkipString("c") {
		t.Fatal("SkipString past the end")
	}
}

func TestParseInteger(t *testing.T) {
	tests := []struct {
		input string
		want  int
		ok    bool
		rest  string
	}{
		{"12n", 12, true, "n"},
		{"-3", -3, true, ""},
		{"+7 ", 7, true, " "},
		{"-n", 0, false, "-n"},
		{"", 0, false, ""},
	}
	for _, tt := range tests {
		in := NewInput(tt.input)
		got, ok := ParseInteger(&in)
		if got != tt.want || ok != tt.ok || in.Remaining() != tt.rest {
			t.Errorf("ParseInteger(%q) = %d, %v (rest %q)", tt.input, got, ok, in.Remaining())
		}
	}
}

func TestParseNumberList(t *testing.T) {
	tests := []struct {
		input string
		want  []float64
		ok    bool
	}{
		{"0 0 10 20", []float64{0, 0, 10, 20}, true},
		{" 1.5,2e1 , -3", []float64{1.5, 20, -3}, true},
		{".4 0 .5", []float64{0.4, 0, 0.5}, true},
		{"", nil, true},
		{"15,abc", nil, false},
	}
	for _, tt := range tests {
		got, ok := ParseNumberList(tt.input)
		if ok != tt.ok || !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseNumberList(%q) = %v, %v", tt.input, got, ok)
		}
	}
}
