// Package syntax implements lexical and syntactic analysis for BL, the
// robot-control teaching language, together with its AST, renderer and
// tree utilities.
package syntax

import "fmt"

// Token represents the type of a lexical token.
type Token uint

const (
	// Special tokens
	_EOF     Token = iota // end of input sentinel
	_Illegal              // a word that is neither keyword, condition nor identifier

	_Name // identifier, including primitive instruction names
	_Cond // condition word: next-is-wall, random, ...

	// Keywords
	_Begin
	_Do
	_Else
	_End
	_If
	_Instruction
	_Is
	_Program
	_Then
	_While

	tokenCount
)

var tokenNames = [...]string{
	_EOF:     "EOF",
	_Illegal: "ILLEGAL",
	_Name:    "IDENTIFIER",
	_Cond:    "CONDITION",

	_Begin:       "BEGIN",
	_Do:          "DO",
	_Else:        "ELSE",
	_End:         "END",
	_If:          "IF",
	_Instruction: "INSTRUCTION",
	_Is:          "IS",
	_Program:     "PROGRAM",
	_Then:        "THEN",
	_While:       "WHILE",
}

// String returns the string representation of the token.
func (t Token) String() string {
	if t < tokenCount {
		return tokenNames[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// IsKeyword reports whether t is a keyword token.
func (t Token) IsKeyword() bool {
	return t >= _Begin && t <= _While
}

// IsEOF reports whether t is the end of input sentinel.
func (t Token) IsEOF() bool {
	return t == _EOF
}

// keywords maps keyword spellings to their token. Keywords are upper case
// and case sensitive: "begin" is an ordinary identifier.
var keywords = map[string]Token{
	"BEGIN":       _Begin,
	"DO":          _Do,
	"ELSE":        _Else,
	"END":         _End,
	"IF":          _If,
	"INSTRUCTION": _Instruction,
	"IS":          _Is,
	"PROGRAM":     _Program,
	"THEN":        _Then,
	"WHILE":       _While,
}

// EndOfInput is the sentinel literal that may terminate a pre-split token
// queue. It can never be produced by the scanner because it contains
// spaces.
const EndOfInput = "### END OF INPUT ###"

// Primitives lists the primitive BL instructions in canonical order.
var Primitives = [...]string{"move", "turnleft", "turnright", "infect", "skip"}

// IsPrimitive reports whether name is one of the five primitive
// instructions.
func IsPrimitive(name string) bool {
	switch name {
	case "move", "turnleft", "turnright", "infect", "skip":
		return true
	}
	return false
}

// IsKeyword reports whether s is a reserved keyword or condition word.
func IsKeyword(s string) bool {
	if _, ok := keywords[s]; ok {
		return true
	}
	_, ok := LookupCondition(s)
	return ok
}

// IsIdentifier reports whether s is a syntactically valid identifier: a
// letter followed by letters, digits and dashes, that is not a keyword or
// condition word. Primitive instruction names are identifiers.
func IsIdentifier(s string) bool {
	if s == "" || !isLetter(rune(s[0])) {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := rune(s[i])
		if !isLetter(c) && !isDigit(c) && c != '-' {
			return false
		}
	}
	return !IsKeyword(s)
}

// Lookup classifies a single word.
func Lookup(word string) Token {
	if tok, ok := keywords[word]; ok {
		return tok
	}
	if _, ok := LookupCondition(word); ok {
		return _Cond
	}
	if IsIdentifier(word) {
		return _Name
	}
	return _Illegal
}
