package lang

// Node is the interface all AST nodes implement.
type Node interface {
	nodeTag()
}

// ValueLit represents a number literal with an optional unit suffix.
type ValueLit struct {
	// Raw is the literal text, kept so re-printing never drifts.
	Raw  string
	Unit Unit
	// Value is the literal converted to its base unit.
	Value float64
}

// Dimension returns the dimension of the literal's unit.
func (n *ValueLit) Dimension() Dimension {
	return n.Unit.Dimension()
}

// UnitExpr applies a unit to a parenthesized unitless expression, e.g. "(2+3) mm".
type UnitExpr struct {
	Expr Node
	Unit Unit
}

// UnaryExpr represents a unary '+' or '-'.
type UnaryExpr struct {
	Op      byte
	Operand Node
}

// ParenExpr records parentheses present in the source.
type ParenExpr struct {
	Expr Node
}

// BinaryExpr represents a binary operation.
type BinaryExpr struct {
	Op    byte // '+', '-', '*', '/'
	Left  Node
	Right Node
}

func (*ValueLit) nodeTag()   {}
func (*UnitExpr) nodeTag()   {}
func (*UnaryExpr) nodeTag()  {}
func (*ParenExpr) nodeTag()  {}
func (*BinaryExpr) nodeTag() {}
