package parser

// TokenStream is a cursor over a slice of tokens.
// It is a cheap value: sub-streams (blocks, declaration spans)
// are views into the same backing slice.
type TokenStream struct {
	tokens []Token
}

func NewTokenStream(tokens []Token) TokenStream { return TokenStream{tokens: tokens} }

// Tokens returns the tokens not consumed yet.
func (s TokenStream) Tokens() []Token { return s.tokens }

func (s TokenStream) Len() int { return len(s.tokens) }

func (s TokenStream) Empty() bool { return len(s.tokens) == 0 }

// Peek returns the current token, or an EndOfFile token when the stream is exhausted.
func (s TokenStream) Peek() Token {
	if len(s.tokens) == 0 {
		return Token{Kind: KEndOfFile}
	}
	return s.tokens[0]
}

// Consume skips the current token. It is a no-op on an empty stream.
func (s *TokenStream) Consume() {
	if len(s.tokens) != 0 {
		s.tokens = s.tokens[1:]
	}
}

// ConsumeWhitespace skips the whitespace tokens at the current position.
func (s *TokenStream) ConsumeWhitespace() {
	for len(s.tokens) != 0 && s.tokens[0].Kind == KWhitespace {
		s.tokens = s.tokens[1:]
	}
}

// ConsumeIncludingWhitespace skips the current token and the following whitespace.
func (s *TokenStream) ConsumeIncludingWhitespace() {
	s.Consume()
	s.ConsumeWhitespace()
}

// componentLength returns the number of tokens making up the component value
// starting the non empty `tokens`: a single token, or a whole block
// including its closing token. `closed` is false for a block
// reaching the end of the tokens without its closing token.
func componentLength(tokens []Token) (n int, closed bool) {
	closer := tokens[0].Kind.closing()
	if closer == KEndOfFile {
		return 1, true
	}
	n = 1
	for n < len(tokens) {
		if tokens[n].Kind == closer {
			return n + 1, true
		}
		l, _ := componentLength(tokens[n:])
		n += l
	}
	return n, false
}

// ConsumeComponent skips one component value: a single token,
// or a block with its nested content.
func (s *TokenStream) ConsumeComponent() {
	if len(s.tokens) != 0 {
		n, _ := componentLength(s.tokens)
		s.tokens = s.tokens[n:]
	}
}

// ConsumeBlock must be called when the current token opens a block
// (a function, '(', '[' or '{'). It skips the whole block and returns its content,
// without the opening and closing tokens. An unterminated block extends to the end of the stream.
func (s *TokenStream) ConsumeBlock() TokenStream {
	if len(s.tokens) == 0 {
		return TokenStream{}
	}
	n, closed := componentLength(s.tokens)
	end := n
	if closed && n > 1 {
		end = n - 1
	}
	content := s.tokens[1:end]
	s.tokens = s.tokens[n:]
	return TokenStream{tokens: content}
}

// Until returns the tokens of `s` located before `rest`,
// which must be a later position of the same stream.
func (s TokenStream) Until(rest TokenStream) TokenStream {
	return TokenStream{tokens: s.tokens[:len(s.tokens)-len(rest.tokens)]}
}

// Guard saves the position of a stream, so that a failed parse
// leaves it untouched:
//
//	g := NewGuard(&input)
//	defer g.Restore()
//	... // parse, returning early on failure
//	g.Release()
type Guard struct {
	stream   *TokenStream
	saved    TokenStream
	released bool
}

func NewGuard(s *TokenStream) *Guard {
	return &Guard{stream: s, saved: *s}
}

// Release commits the tokens consumed since the guard creation.
func (g *Guard) Release() { g.released = true }

// Restore rewinds the stream, unless Release has been called.
func (g *Guard) Restore() {
	if !g.released {
		*g.stream = g.saved
	}
}
