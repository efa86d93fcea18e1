package lang

import (
	"math"
	"strconv"
	"strings"
)

// Stringify re-renders an AST with the literal text of every number,
// single spaces around binary operators, and short unit codes.
func Stringify(node Node) string {
	var b strings.Builder
	writeNode(&b, node)
	return b.String()
}

func writeNode(b *strings.Builder, node Node) {
	switch n := node.(type) {
	case *ValueLit:
		b.WriteString(n.Raw)
		if n.Dimension() != DimNumber {
			b.WriteByte(' ')
			b.WriteString(n.Unit.Code())
		}
	case *UnitExpr:
		writeNode(b, n.Expr)
		b.WriteByte(' ')
		b.WriteString(n.Unit.Code())
	case *UnaryExpr:
		b.WriteByte(n.Op)
		writeNode(b, n.Operand)
	case *ParenExpr:
		b.WriteByte('(')
		writeNode(b, n.Expr)
		b.WriteByte(')')
	case *BinaryExpr:
		writeNode(b, n.Left)
		b.WriteByte(' ')
		b.WriteByte(n.Op)
		b.WriteByte(' ')
		writeNode(b, n.Right)
	default:
		panic("lang: cannot stringify node")
	}
}

// RoundToPrecision rounds num to precision decimals and prints it without
// trailing zeros. Halves round toward positive infinity.
func RoundToPrecision(num float64, precision uint) string {
	factor := math.Pow10(int(precision))
	r := math.Floor(num*factor+0.5) / factor
	if math.IsInf(factor, 0) {
		r = num
	}
	if r == 0 {
		r = 0 // drop the sign of negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// FormatValue renders v in displayUnit rounded to precision, followed by the
// unit's code when it has one, e.g. "12.5 mm" or "42".
func FormatValue(v ValueWithUnits, displayUnit Unit, precision uint) string {
	s := RoundToPrecision(v.In(displayUnit), precision)
	if code := displayUnit.Code(); code != "" {
		s += " " + code
	}
	return s
}
