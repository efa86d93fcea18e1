package lang

import "strings"

// QuantityKind is the caller's declared expectation for a whole expression.
type QuantityKind int

const (
	QuantityLength QuantityKind = iota
	QuantityAngle
	QuantityInteger
	QuantityReal
)

func (k QuantityKind) String() string {
	switch k {
	case QuantityLength:
		return "LENGTH"
	case QuantityAngle:
		return "ANGLE"
	case QuantityInteger:
		return "INTEGER"
	case QuantityReal:
		return "REAL"
	default:
		return "QuantityKind(?)"
	}
}

// ParseQuantityKind maps "LENGTH", "ANGLE", "INTEGER" or "REAL" (any case)
// to a QuantityKind.
func ParseQuantityKind(s string) (QuantityKind, bool) {
	for _, k := range []QuantityKind{QuantityLength, QuantityAngle, QuantityInteger, QuantityReal} {
		if strings.EqualFold(strings.TrimSpace(s), k.String()) {
			return k, true
		}
	}
	return QuantityLength, false
}

// IsUnitless reports whether literals of this kind may carry no unit at all.
func (k QuantityKind) IsUnitless() bool {
	return k == QuantityInteger || k == QuantityReal
}

// HasUnits reports whether bare numbers of this kind adopt a display unit.
func (k QuantityKind) HasUnits() bool {
	return k == QuantityLength || k == QuantityAngle
}

// Eval evaluates an AST node, checking every literal against kind and every
// operator against the dimensions of its operands.
func Eval(node Node, kind QuantityKind) (ValueWithUnits, error) {
	switch n := node.(type) {
	case *ValueLit:
		dim := n.Dimension()
		if kind.IsUnitless() && dim != DimNumber {
			return ValueWithUnits{}, dimErr("Number cannot have " + dim.String() + " unit " + n.Unit.String())
		}
		if kind == QuantityAngle && dim == DimLength {
			return ValueWithUnits{}, dimErr("Angle cannot have length unit " + n.Unit.String())
		}
		return ValueWithUnits{Value: n.Value, Dim: dim}, nil

	case *UnitExpr:
		inner, err := Eval(n.Expr, kind)
		if err != nil {
			return ValueWithUnits{}, err
		}
		if inner.Dim != DimNumber {
			return ValueWithUnits{}, dimErr("Cannot add unit to " + inner.Dim.String() + " expression")
		}
		return ValueWithUnits{Value: inner.Value * n.Unit.Factor(), Dim: n.Unit.Dimension()}, nil

	case *UnaryExpr:
		operand, err := Eval(n.Operand, kind)
		if err != nil {
			return ValueWithUnits{}, err
		}
		if n.Op == '-' {
			operand.Value = -operand.Value
		}
		return operand, nil

	case *ParenExpr:
		return Eval(n.Expr, kind)

	case *BinaryExpr:
		left, err := Eval(n.Left, kind)
		if err != nil {
			return ValueWithUnits{}, err
		}
		right, err := Eval(n.Right, kind)
		if err != nil {
			return ValueWithUnits{}, err
		}
		switch n.Op {
		case '+':
			return valAdd(left, right)
		case '-':
			return valSub(left, right)
		case '*':
			return valMul(left, right)
		case '/':
			return valDiv(left, right)
		default:
			return ValueWithUnits{}, &SyntaxError{Msg: "unknown operator " + string(n.Op)}
		}

	default:
		return ValueWithUnits{}, &SyntaxError{Msg: "unknown node type"}
	}
}

func dimErr(msg string) error {
	return &EvalError{Kind: ErrDimension, Msg: msg}
}

func valAdd(a, b ValueWithUnits) (ValueWithUnits, error) {
	if a.Dim != b.Dim {
		return ValueWithUnits{}, dimErr("Cannot add " + a.Dim.String() + " and " + b.Dim.String())
	}
	return ValueWithUnits{Value: a.Value + b.Value, Dim: a.Dim}, nil
}

func valSub(a, b ValueWithUnits) (ValueWithUnits, error) {
	if a.Dim != b.Dim {
		return ValueWithUnits{}, dimErr("Cannot subtract " + a.Dim.String() + " and " + b.Dim.String())
	}
	return ValueWithUnits{Value: a.Value - b.Value, Dim: a.Dim}, nil
}

// valMul allows number * x and x * number; the result takes x's dimension.
func valMul(a, b ValueWithUnits) (ValueWithUnits, error) {
	switch {
	case a.Dim == DimNumber:
		return ValueWithUnits{Value: a.Value * b.Value, Dim: b.Dim}, nil
	case b.Dim == DimNumber:
		return ValueWithUnits{Value: a.Value * b.Value, Dim: a.Dim}, nil
	}
	return ValueWithUnits{}, dimErr("Cannot multiply " + a.Dim.String() + " and " + b.Dim.String())
}

// valDiv allows x / number only; inverse and ratio units are not supported.
func valDiv(a, b ValueWithUnits) (ValueWithUnits, error) {
	if b.Dim != DimNumber {
		return ValueWithUnits{}, dimErr("Cannot divide " + a.Dim.String() + " by " + b.Dim.String())
	}
	zero, err := TolerantEquals(b, ValueWithUnits{Dim: b.Dim})
	if err != nil {
		return ValueWithUnits{}, err
	}
	if zero {
		return ValueWithUnits{}, &EvalError{Kind: ErrDivideByZero, Msg: "Cannot divide by 0"}
	}
	return ValueWithUnits{Value: a.Value / b.Value, Dim: a.Dim}, nil
}
