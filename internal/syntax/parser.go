package syntax

import (
	"errors"
	"fmt"
	"io"
)

// ErrorKind classifies a SyntaxError.
type ErrorKind uint8

const (
	UnexpectedToken      ErrorKind = iota // wrong keyword or token
	MalformedIdentifier                   // word that is not a valid identifier
	ReservedName                          // instruction declared with a primitive name
	DuplicateInstruction                  // instruction declared twice
	NameMismatch                          // identifier after END differs from the opening name
	TrailingTokens                        // input continues after END of program
	InvalidSource                         // unreadable or badly encoded input
)

var errorKindNames = [...]string{
	UnexpectedToken:      "unexpected token",
	MalformedIdentifier:  "malformed identifier",
	ReservedName:         "reserved name",
	DuplicateInstruction: "duplicate instruction",
	NameMismatch:         "name mismatch",
	TrailingTokens:       "trailing tokens",
	InvalidSource:        "invalid source",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

// SyntaxError is a fatal syntax or semantic violation. Parsing stops at
// the first one.
type SyntaxError struct {
	Pos      Pos
	Kind     ErrorKind
	Expected string // expected construct, e.g. `Keyword "IS"`
	Found    string // text of the offending token
	Msg      string
}

func (e *SyntaxError) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// Parser performs syntax analysis on a BL token stream. It is
// single-pass with one token of lookahead, never backtracks and aborts
// on the first error.
type Parser struct {
	src TokenSource

	// Current token info (cached from src)
	tok Token
	lit string
	pos Pos

	errh  func(pos Pos, msg string)
	first *SyntaxError
	abort bool
}

// NewParser creates a Parser reading BL source text from src.
// If errh is non-nil it is called with the error that aborts the parse.
func NewParser(filename string, src io.Reader, errh func(pos Pos, msg string)) *Parser {
	p := &Parser{errh: errh}
	scanErrh := func(line, col uint32, msg string) {
		p.errorAt(NewPos(filename, line, col), InvalidSource, "", "", msg)
	}
	p.src = NewScanner(filename, src, scanErrh)
	p.next()
	return p
}

// NewTokenParser creates a Parser reading from an existing token source.
func NewTokenParser(src TokenSource, errh func(pos Pos, msg string)) *Parser {
	p := &Parser{src: src, errh: errh}
	p.next()
	return p
}

// Parse parses BL source text into a Program.
func Parse(filename string, src io.Reader) (*Program, error) {
	return NewParser(filename, src, nil).Parse()
}

// ParseTokens parses a pre-split token queue into a Program.
func ParseTokens(tokens []string) (*Program, error) {
	return NewTokenParser(NewTokenSource(tokens), nil).Parse()
}

// ----------------------------------------------------------------------------
// Token navigation

func (p *Parser) next() {
	if p.abort {
		return
	}
	p.src.Next()
	p.tok = p.src.Token()
	p.lit = p.src.Literal()
	p.pos = p.src.Pos()
}

// got reports whether the current token is tok and consumes it if so.
func (p *Parser) got(tok Token) bool {
	if p.tok == tok {
		p.next()
		return true
	}
	return false
}

// want consumes the current token if it matches tok.
// Otherwise, reports an error.
func (p *Parser) want(tok Token) {
	if !p.got(tok) {
		p.unexpected(describe(tok))
	}
}

// name consumes an identifier and returns its text.
func (p *Parser) name() string {
	if p.tok != _Name {
		p.wantName(describe(_Name))
		return ""
	}
	s := p.lit
	p.next()
	return s
}

// describe names the construct a token stands for in error messages.
func describe(tok Token) string {
	switch {
	case tok.IsKeyword():
		return fmt.Sprintf("Keyword %q", tok.String())
	case tok == _EOF:
		return "end of input"
	}
	return tok.String()
}

// ----------------------------------------------------------------------------
// Error handling

// found describes the current token for error messages.
func (p *Parser) found() string {
	if p.tok == _EOF {
		return EndOfInput
	}
	return p.lit
}

// unexpected reports that expected was wanted but the current token was
// found instead.
func (p *Parser) unexpected(expected string) {
	p.unexpectedKind(UnexpectedToken, expected)
}

// wantName reports a missing identifier. A word that only fails the
// identifier rules is a malformed identifier rather than a wrong token.
func (p *Parser) wantName(expected string) {
	if p.tok == _Illegal {
		p.unexpectedKind(MalformedIdentifier, expected)
		return
	}
	p.unexpected(expected)
}

func (p *Parser) unexpectedKind(kind ErrorKind, expected string) {
	found := p.found()
	p.errorAt(p.pos, kind, expected, found, fmt.Sprintf("%s expected, found: %q", expected, found))
}

// errorAt records the first error and aborts the parse. Later errors are
// consequences of the first and are dropped.
func (p *Parser) errorAt(pos Pos, kind ErrorKind, expected, found, msg string) {
	if p.abort {
		return
	}
	p.first = &SyntaxError{Pos: pos, Kind: kind, Expected: expected, Found: found, Msg: msg}
	p.abort = true
	if p.errh != nil {
		p.errh(pos, msg)
	}
	p.tok = _EOF
	p.lit = ""
}

// Err returns the error that aborted the parse, or nil.
func (p *Parser) Err() error {
	if p.first == nil {
		return nil
	}
	return p.first
}

// ----------------------------------------------------------------------------
// Entry points

// Parse parses a complete program. On error no partial program is
// returned.
func (p *Parser) Parse() (*Program, error) {
	prog := p.program()
	if p.first != nil {
		return nil, p.first
	}
	return prog, nil
}

// ParseBlock parses a statement sequence that makes up the whole input.
func (p *Parser) ParseBlock() (*Block, error) {
	b := p.block()
	if p.tok != _EOF {
		p.trailing()
	}
	if p.first != nil {
		return nil, p.first
	}
	return b, nil
}

func (p *Parser) trailing() {
	found := p.found()
	p.errorAt(p.pos, TrailingTokens, describe(_EOF), found,
		fmt.Sprintf("found %q beyond end of program source", found))
}

// ----------------------------------------------------------------------------
// Program and instructions

// program parses: PROGRAM id IS {Instruction} BEGIN Block END id
func (p *Parser) program() *Program {
	prog := &Program{Context: NewContext()}
	prog.pos = p.pos

	p.want(_Program)
	prog.Name = p.name()
	p.want(_Is)

	if p.tok != _Instruction && p.tok != _Begin {
		p.unexpected(`Keywords "BEGIN" or "INSTRUCTION"`)
	}

	for !p.abort && p.tok == _Instruction {
		inst := p.instruction()
		if p.abort {
			break
		}
		if err := prog.Context.Insert(inst); err != nil {
			if errors.Is(err, ErrDuplicate) {
				p.errorAt(inst.pos, DuplicateInstruction, "new instruction name", inst.Name,
					fmt.Sprintf("Instruction %q cannot be already defined", inst.Name))
			} else {
				p.errorAt(inst.pos, ReservedName, "new instruction name", inst.Name, err.Error())
			}
			break
		}
	}

	p.want(_Begin)
	prog.Body = p.block()
	p.want(_End)

	endPos := p.pos
	end := p.name()
	if !p.abort && end != prog.Name {
		p.errorAt(endPos, NameMismatch, fmt.Sprintf("%q", prog.Name), end,
			fmt.Sprintf("IDENTIFIER %q at end of program %q must match program name", end, prog.Name))
	}

	if !p.abort && p.tok != _EOF {
		p.trailing()
	}
	return prog
}

// instruction parses: INSTRUCTION id IS Block END id
func (p *Parser) instruction() *Instruction {
	inst := &Instruction{}
	inst.pos = p.pos

	p.want(_Instruction)
	namePos := p.pos
	inst.Name = p.name()
	if !p.abort && IsPrimitive(inst.Name) {
		p.errorAt(namePos, ReservedName, "new instruction name", inst.Name,
			fmt.Sprintf("New instruction name must not be name of primitive instruction %q", inst.Name))
	}
	p.want(_Is)

	inst.Body = p.block()
	p.want(_End)

	endPos := p.pos
	end := p.name()
	if !p.abort && end != inst.Name {
		p.errorAt(endPos, NameMismatch, fmt.Sprintf("%q", inst.Name), end,
			fmt.Sprintf("IDENTIFIER %q at end of instruction %q must match instruction name", end, inst.Name))
	}
	return inst
}

// ----------------------------------------------------------------------------
// Statements

// block parses statements until END, ELSE or the end of input.
func (p *Parser) block() *Block {
	b := &Block{}
	b.pos = p.pos

	for !p.abort && p.tok != _End && p.tok != _Else && p.tok != _EOF {
		if s := p.stmt(); s != nil {
			b.Stmts = append(b.Stmts, s)
		}
	}
	return b
}

// stmt parses a single statement.
func (p *Parser) stmt() Stmt {
	switch p.tok {
	case _If:
		return p.ifStmt()
	case _While:
		return p.whileStmt()
	case _Name:
		return p.callStmt()
	}
	p.wantName(`"IF", "WHILE" or IDENTIFIER`)
	return nil
}

// ifStmt parses: IF cond [THEN] Block [ELSE Block] END IF
func (p *Parser) ifStmt() Stmt {
	pos := p.pos

	p.want(_If)
	cond := p.condition()
	p.got(_Then)
	then := p.block()

	var s Stmt
	if p.got(_Else) {
		ie := &IfElseStmt{Cond: cond, Then: then, Else: p.block()}
		ie.pos = pos
		s = ie
	} else {
		is := &IfStmt{Cond: cond, Body: then}
		is.pos = pos
		s = is
	}

	p.want(_End)
	p.want(_If)
	return s
}

// whileStmt parses: WHILE cond [DO] Block END WHILE
func (p *Parser) whileStmt() Stmt {
	s := &WhileStmt{}
	s.pos = p.pos

	p.want(_While)
	s.Cond = p.condition()
	p.got(_Do)
	s.Body = p.block()

	p.want(_End)
	p.want(_While)
	return s
}

// callStmt parses a call. Calls are not resolved: instructions may be
// used before they are declared.
func (p *Parser) callStmt() Stmt {
	s := &CallStmt{Name: p.lit}
	s.pos = p.pos
	p.next()
	return s
}

// condition parses a condition word.
func (p *Parser) condition() Condition {
	if p.tok != _Cond {
		p.unexpected(describe(_Cond))
		return CondInvalid
	}
	c, _ := LookupCondition(p.lit)
	p.next()
	return c
}
