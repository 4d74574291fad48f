package script

import (
	"fmt"
	"math"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/sketchsnap/pkg/geom"
)

// sexpPoint carries a geom.Point2D between builtins.
type sexpPoint struct {
	p geom.Point2D
}

func (s *sexpPoint) SexpString(*zygo.PrintState) string {
	return fmt.Sprintf("(pt %g %g)", s.p.X, s.p.Y)
}

func (s *sexpPoint) Type() *zygo.RegisteredType { return nil }

// sexpEntityRef is what every entity builtin evaluates to.
type sexpEntityRef struct {
	id   string
	kind string
}

func (r *sexpEntityRef) SexpString(*zygo.PrintState) string {
	return fmt.Sprintf("(%s %q)", r.kind, r.id)
}

func (r *sexpEntityRef) Type() *zygo.RegisteredType { return nil }

// kwPrefix marks the string literals rewriteSource makes from keywords.
const kwPrefix = "__kw_"

func keywordName(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	return strings.CutPrefix(str.S, kwPrefix)
}

// callArgs is a builtin's argument list split into positional values and
// keyword values.
type callArgs struct {
	pos   []zygo.Sexp
	named map[string]zygo.Sexp
}

// splitArgs separates keywords from positional arguments. A keyword
// directly followed by another keyword, or ending the list, is a flag
// and maps to SexpNull.
func splitArgs(args []zygo.Sexp) callArgs {
	ca := callArgs{named: make(map[string]zygo.Sexp)}
	for i := 0; i < len(args); i++ {
		name, ok := keywordName(args[i])
		if !ok {
			ca.pos = append(ca.pos, args[i])
			continue
		}
		val := zygo.Sexp(zygo.SexpNull)
		if i+1 < len(args) {
			if _, kw := keywordName(args[i+1]); !kw {
				i++
				val = args[i]
			}
		}
		ca.named[name] = val
	}
	return ca
}

func expected(what string, s zygo.Sexp) error {
	return fmt.Errorf("expected %s, got %s", what, s.SexpString(nil))
}

// toNumber accepts integers and floats.
func toNumber(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	default:
		return 0, expected("number", s)
	}
}

// toInt accepts integers and integral floats.
func toInt(s zygo.Sexp) (int, error) {
	f, err := toNumber(s)
	if err != nil || f != math.Trunc(f) {
		return 0, expected("integer", s)
	}
	return int(f), nil
}

func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", expected("string", s)
}

// toBool treats a keyword flag as true.
func toBool(s zygo.Sexp) (bool, error) {
	if s == zygo.SexpNull {
		return true, nil
	}
	if b, ok := s.(*zygo.SexpBool); ok {
		return b.Val, nil
	}
	return false, expected("boolean", s)
}

// toPoint accepts (pt x y) or a two-element list or array of numbers.
func toPoint(s zygo.Sexp) (geom.Point2D, error) {
	if p, ok := s.(*sexpPoint); ok {
		return p.p, nil
	}
	items, err := elements(s)
	if err != nil || len(items) != 2 {
		return geom.Point2D{}, expected("point", s)
	}
	var xy [2]float64
	for i, item := range items {
		if xy[i], err = toNumber(item); err != nil {
			return geom.Point2D{}, fmt.Errorf("point coordinate %d: %w", i, err)
		}
	}
	return geom.Pt(xy[0], xy[1]), nil
}

// toPoints converts a list or array of points.
func toPoints(s zygo.Sexp) ([]geom.Point2D, error) {
	items, err := elements(s)
	if err != nil {
		return nil, err
	}
	pts := make([]geom.Point2D, len(items))
	for i, item := range items {
		if pts[i], err = toPoint(item); err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
	}
	return pts, nil
}

// elements flattens a list or array. The empty list has no elements.
func elements(s zygo.Sexp) ([]zygo.Sexp, error) {
	if s == zygo.SexpNull {
		return nil, nil
	}
	switch v := s.(type) {
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	case *zygo.SexpArray:
		return v.Val, nil
	default:
		return nil, expected("list or array", s)
	}
}
