package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// A BL program is a name, a context of user-defined instructions and a
// body. Statements form a closed set of five shapes; the marker methods
// keep implementations inside this package so a type switch over
// *Block, *IfStmt, *IfElseStmt, *WhileStmt and *CallStmt is exhaustive.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos // position of the first token belonging to the node
	aNode()
}

// Stmt is the interface for the five statement shapes.
type Stmt interface {
	Node
	Kind() StmtKind
	aStmt()
}

// StmtKind names the shape of a statement.
type StmtKind uint8

const (
	BLOCK StmtKind = iota
	IF
	IF_ELSE
	WHILE
	CALL
)

var stmtKindNames = [...]string{
	BLOCK:   "BLOCK",
	IF:      "IF",
	IF_ELSE: "IF_ELSE",
	WHILE:   "WHILE",
	CALL:    "CALL",
}

func (k StmtKind) String() string {
	if int(k) < len(stmtKindNames) {
		return stmtKindNames[k]
	}
	return "StmtKind(?)"
}

// ----------------------------------------------------------------------------
// Base node types

type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) aNode()   {}

type stmt struct{ node }

func (*stmt) aStmt() {}

// ----------------------------------------------------------------------------
// Program and instructions

// Program is a parsed BL program. It owns its context and body.
type Program struct {
	node
	Name    string   // program name; equals the identifier after the final END
	Context *Context // user-defined instructions
	Body    *Block   // main body
}

// NewProgram returns an empty program with the given name.
func NewProgram(name string) *Program {
	return &Program{Name: name, Context: NewContext(), Body: NewBlock()}
}

// Instruction is a user-defined instruction declaration.
type Instruction struct {
	node
	Name string // never a primitive name
	Body *Block
}

// NewInstruction returns an instruction declaration with the given body.
func NewInstruction(name string, body *Block) *Instruction {
	return &Instruction{Name: name, Body: body}
}

// ----------------------------------------------------------------------------
// Statements

// Block is an ordered sequence of statements.
type Block struct {
	stmt
	Stmts []Stmt
}

// IfStmt is IF cond THEN body END IF.
type IfStmt struct {
	stmt
	Cond Condition
	Body *Block
}

// IfElseStmt is IF cond THEN then ELSE else END IF.
type IfElseStmt struct {
	stmt
	Cond Condition
	Then *Block
	Else *Block
}

// WhileStmt is WHILE cond DO body END WHILE.
type WhileStmt struct {
	stmt
	Cond Condition
	Body *Block
}

// CallStmt calls a primitive or user-defined instruction.
type CallStmt struct {
	stmt
	Name string
}

func (*Block) Kind() StmtKind      { return BLOCK }
func (*IfStmt) Kind() StmtKind     { return IF }
func (*IfElseStmt) Kind() StmtKind { return IF_ELSE }
func (*WhileStmt) Kind() StmtKind  { return WHILE }
func (*CallStmt) Kind() StmtKind   { return CALL }

// Constructors for building trees outside the parser. The resulting
// nodes carry NoPos.

// NewBlock returns a block holding stmts in order.
func NewBlock(stmts ...Stmt) *Block {
	return &Block{Stmts: stmts}
}

// NewIf returns IF cond THEN body END IF.
func NewIf(cond Condition, body *Block) *IfStmt {
	return &IfStmt{Cond: cond, Body: body}
}

// NewIfElse returns IF cond THEN then ELSE els END IF.
func NewIfElse(cond Condition, then, els *Block) *IfElseStmt {
	return &IfElseStmt{Cond: cond, Then: then, Else: els}
}

// NewWhile returns WHILE cond DO body END WHILE.
func NewWhile(cond Condition, body *Block) *WhileStmt {
	return &WhileStmt{Cond: cond, Body: body}
}

// NewCall returns a call of name.
func NewCall(name string) *CallStmt {
	return &CallStmt{Name: name}
}
