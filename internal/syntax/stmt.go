package syntax

// CodeBlock is the typed view of a braced statement block.
type CodeBlock struct {
	Node
}

func (b CodeBlock) LeftBrace() Token {
	tok, _ := b.child(0).Token()
	return tok
}

func (b CodeBlock) Statements() StmtList {
	return StmtList{b.child(1)}
}

func (b CodeBlock) RightBrace() Token {
	tok, _ := b.child(2).Token()
	return tok
}

// WithStatements returns a copy of the block with the statement list
// replaced; the braces are shared with the receiver.
func (b CodeBlock) WithStatements(stmts StmtList) CodeBlock {
	return CodeBlock{b.WithChild(1, stmts.Node)}
}

// MakeCodeBlock builds a braced statement block.
func MakeCodeBlock(leftBrace Token, statements StmtList, rightBrace Token) CodeBlock {
	return CodeBlock{MakeLayout(KindCodeBlock, []Node{
		leftBrace.Node,
		statements.Node,
		rightBrace.Node,
	})}
}

// MakeBlankCodeBlock builds the all-missing block placeholder.
func MakeBlankCodeBlock() CodeBlock {
	return CodeBlock{MakeBlank(KindCodeBlock)}
}

// FallthroughStmt is the typed view of a fallthrough statement.
type FallthroughStmt struct {
	Node
}

func (s FallthroughStmt) FallthroughKeyword() Token {
	tok, _ := s.child(0).Token()
	return tok
}

// MakeFallthroughStmt builds a fallthrough statement.
func MakeFallthroughStmt(fallthroughKeyword Token) FallthroughStmt {
	return FallthroughStmt{MakeLayout(KindFallthroughStmt, []Node{
		fallthroughKeyword.Node,
	})}
}

// MakeBlankFallthroughStmt builds the placeholder with the keyword missing.
func MakeBlankFallthroughStmt() FallthroughStmt {
	return FallthroughStmt{MakeBlank(KindFallthroughStmt)}
}

// BreakStmt is the typed view of a break statement with an optional
// destination label.
type BreakStmt struct {
	Node
}

func (s BreakStmt) BreakKeyword() Token {
	tok, _ := s.child(0).Token()
	return tok
}

func (s BreakStmt) Label() (Token, bool) {
	c, ok := s.Child(1)
	if !ok {
		return Token{}, false
	}
	return c.Token()
}

// MakeBreakStmt builds a break statement. The label is optional; pass the
// zero Token to omit it.
func MakeBreakStmt(breakKeyword, label Token) BreakStmt {
	return BreakStmt{MakeLayout(KindBreakStmt, []Node{
		breakKeyword.Node,
		label.Node,
	})}
}

// MakeBlankBreakStmt builds the placeholder with the keyword missing and no
// label.
func MakeBlankBreakStmt() BreakStmt {
	return BreakStmt{MakeBlank(KindBreakStmt)}
}

// StmtList is the typed view of an ordered statement list.
type StmtList struct {
	Node
}

// Len returns the statement count.
func (l StmtList) Len() int {
	return l.NumChildren()
}

// At returns the i-th statement.
func (l StmtList) At(i int) Stmt {
	return Stmt{l.child(i)}
}

// MakeStmtList builds a statement list in source order.
func MakeStmtList(stmts []Stmt) StmtList {
	children := make([]Node, len(stmts))
	for i, s := range stmts {
		children[i] = s.Node
	}
	return StmtList{MakeLayout(KindStmtList, children)}
}

// MakeBlankStmtList builds the empty statement list.
func MakeBlankStmtList() StmtList {
	return StmtList{MakeBlank(KindStmtList)}
}
