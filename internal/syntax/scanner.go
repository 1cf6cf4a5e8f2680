package syntax

import (
	"io"
	"strings"
)

// TokenSource is an ordered, front-consumable token stream ending in
// the _EOF sentinel. The parser reads from a TokenSource only.
type TokenSource interface {
	Next()           // advance to the next token
	Token() Token    // current token
	Literal() string // current token text
	Pos() Pos        // current token position
}

// Scanner splits BL source text into tokens.
type Scanner struct {
	source

	tok    Token
	lit    string
	tokPos Pos

	litBuf strings.Builder
}

var _ TokenSource = (*Scanner)(nil)

// NewScanner creates a new Scanner for the given source.
// The errh function is called for each lexical error; if nil, errors are
// silently ignored.
func NewScanner(filename string, src io.Reader, errh func(line, col uint32, msg string)) *Scanner {
	return &Scanner{source: *newSource(filename, src, errh)}
}

// Next advances to the next token. Once the end of input is reached it
// keeps returning _EOF.
func (s *Scanner) Next() {
redo:
	for isWhitespace(s.ch) {
		s.nextch()
	}

	// '#' starts a comment that runs to the end of the line
	if s.ch == '#' {
		for s.ch != '\n' && s.ch >= 0 {
			s.nextch()
		}
		goto redo
	}

	s.tokPos = s.pos()

	switch {
	case s.ch < 0:
		s.tok = _EOF
		s.lit = ""

	case isWordChar(s.ch):
		s.scanWord()

	default:
		s.scanJunk()
	}
}

// Token returns the current token type.
func (s *Scanner) Token() Token { return s.tok }

// Literal returns the current token text.
func (s *Scanner) Literal() string { return s.lit }

// Pos returns the current token's start position.
func (s *Scanner) Pos() Pos { return s.tokPos }

// scanWord scans a maximal run of word characters and classifies it.
func (s *Scanner) scanWord() {
	s.litBuf.Reset()
	for isWordChar(s.ch) {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
	s.lit = s.litBuf.String()
	s.tok = Lookup(s.lit)
}

// scanJunk scans a run of characters that cannot appear in a BL word.
// The result is always _Illegal; the parser reports it in context.
func (s *Scanner) scanJunk() {
	s.litBuf.Reset()
	for s.ch >= 0 && !isWhitespace(s.ch) && !isWordChar(s.ch) && s.ch != '#' {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
	s.lit = s.litBuf.String()
	s.tok = _Illegal
}

// Tokens scans the whole input and returns the token texts followed by
// the EndOfInput sentinel, the queue form accepted by NewTokenSource.
func Tokens(filename string, src io.Reader) []string {
	s := NewScanner(filename, src, nil)
	var toks []string
	for s.Next(); s.tok != _EOF; s.Next() {
		toks = append(toks, s.lit)
	}
	return append(toks, EndOfInput)
}

// queue is a TokenSource over pre-split token texts.
type queue struct {
	toks []string
	i    int  // number of tokens consumed
	done bool // sentinel reached

	tok Token
	lit string
}

// NewTokenSource returns a TokenSource reading the given tokens in order.
// The EndOfInput sentinel as the last token, or running off the end,
// yields _EOF. A sentinel followed by more tokens is skipped so that the
// parser sees the remaining tokens as trailing input.
func NewTokenSource(tokens []string) TokenSource {
	return &queue{toks: tokens}
}

func (q *queue) Next() {
	if q.done || q.i >= len(q.toks) {
		q.done = true
		q.tok = _EOF
		q.lit = ""
		return
	}
	q.lit = q.toks[q.i]
	q.i++
	if q.lit == EndOfInput {
		if q.i < len(q.toks) {
			q.Next()
			return
		}
		q.done = true
		q.tok = _EOF
		q.lit = ""
		return
	}
	q.tok = Lookup(q.lit)
}

func (q *queue) Token() Token    { return q.tok }
func (q *queue) Literal() string { return q.lit }
func (q *queue) Pos() Pos        { return tokenPos(q.i) }
