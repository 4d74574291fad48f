package script

import (
	"fmt"
	"math"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/sketchsnap/pkg/geom"
	"github.com/chazu/sketchsnap/pkg/sketch"
)

// builder collects the entities created by one evaluation.
type builder struct {
	sk     *sketch.Sketch
	counts map[sketch.Kind]int
}

// attrs reads the keywords every entity builtin shares: :id and
// :construction. Entities without :id get kind-numbered IDs (line1,
// line2, ...) that skip any ID the script already used.
func (b *builder) attrs(kind sketch.Kind, pa callArgs) (sketch.EntityID, bool, error) {
	var id sketch.EntityID
	if v, ok := pa.named["id"]; ok {
		s, err := toString(v)
		if err != nil {
			return "", false, fmt.Errorf("id: %w", err)
		}
		if s == "" {
			return "", false, fmt.Errorf("id must not be empty")
		}
		id = sketch.EntityID(s)
		if b.sk.Get(id) != nil {
			return "", false, fmt.Errorf("duplicate id %q", s)
		}
	} else {
		for {
			b.counts[kind]++
			id = sketch.EntityID(fmt.Sprintf("%s%d", kind, b.counts[kind]))
			if b.sk.Get(id) == nil {
				break
			}
		}
	}

	construction := false
	if v, ok := pa.named["construction"]; ok {
		c, err := toBool(v)
		if err != nil {
			return "", false, fmt.Errorf("construction: %w", err)
		}
		construction = c
	}
	return id, construction, nil
}

// entity is the shared body of every entity builtin: it parses the
// arguments, checks the positional count, reads the shared keywords and
// adds whatever build returns to the sketch.
func (b *builder) entity(kind sketch.Kind, usage string, npos int,
	build func(id sketch.EntityID, pa callArgs) (sketch.Entity, error)) zygo.ZlispUserFunction {

	return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := splitArgs(args)
		if len(pa.pos) != npos {
			return zygo.SexpNull, fmt.Errorf("%s: expected %s, got %d positional arguments", name, usage, len(pa.pos))
		}
		id, construction, err := b.attrs(kind, pa)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: %w", name, err)
		}
		e, err := build(id, pa)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: %w", name, err)
		}
		if construction {
			e = sketch.WithConstruction(e, true)
		}
		b.sk.Add(e)
		return &sexpEntityRef{id: string(id), kind: kind.String()}, nil
	}
}

// floats reads the positional arguments at idx as numbers.
func floats(pa callArgs, names []string, idx ...int) ([]float64, error) {
	out := make([]float64, len(idx))
	for i, j := range idx {
		f, err := toNumber(pa.pos[j])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", names[i], err)
		}
		out[i] = f
	}
	return out, nil
}

func points(pa callArgs, names []string, idx ...int) ([]geom.Point2D, error) {
	out := make([]geom.Point2D, len(idx))
	for i, j := range idx {
		p, err := toPoint(pa.pos[j])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", names[i], err)
		}
		out[i] = p
	}
	return out, nil
}

// optAngle reads an optional angle keyword in degrees.
func optAngle(pa callArgs, key string) (float64, error) {
	v, ok := pa.named[key]
	if !ok {
		return 0, nil
	}
	deg, err := toNumber(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return deg * degToRad, nil
}

// registerBuiltins installs the sketch DSL builtins into a zygomys
// environment. Entity builtins add to sk as they run and return a
// reference naming the entity.
//
// Source code must be preprocessed with rewriteSource before
// evaluation so that :keyword tokens are converted to recognizable
// string literals. Angles are written in degrees.
func registerBuiltins(env *zygo.Zlisp, sk *sketch.Sketch) {
	b := &builder{sk: sk, counts: make(map[sketch.Kind]int)}

	// (pt 10 20)
	env.AddFunction("pt", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("pt requires exactly 2 arguments, got %d", len(args))
		}
		x, err := toNumber(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("pt: x: %w", err)
		}
		y, err := toNumber(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("pt: y: %w", err)
		}
		return &sexpPoint{p: geom.Pt(x, y)}, nil
	})

	// (line (pt 0 0) (pt 10 0) :id "base" :construction true)
	env.AddFunction("line", b.entity(sketch.KindLine, "start and end points", 2,
		func(id sketch.EntityID, pa callArgs) (sketch.Entity, error) {
			p, err := points(pa, []string{"start", "end"}, 0, 1)
			if err != nil {
				return nil, err
			}
			return sketch.NewLine(id, p[0], p[1])
		}))

	// (circle (pt 0 0) 5)
	env.AddFunction("circle", b.entity(sketch.KindCircle, "center and radius", 2,
		func(id sketch.EntityID, pa callArgs) (sketch.Entity, error) {
			c, err := toPoint(pa.pos[0])
			if err != nil {
				return nil, fmt.Errorf("center: %w", err)
			}
			f, err := floats(pa, []string{"radius"}, 1)
			if err != nil {
				return nil, err
			}
			return sketch.NewCircle(id, c, f[0])
		}))

	// (arc (pt 0 0) 5 0 90) with start and end angles in degrees
	env.AddFunction("arc", b.entity(sketch.KindArc, "center, radius, start and end angles", 4,
		func(id sketch.EntityID, pa callArgs) (sketch.Entity, error) {
			c, err := toPoint(pa.pos[0])
			if err != nil {
				return nil, fmt.Errorf("center: %w", err)
			}
			f, err := floats(pa, []string{"radius", "start", "end"}, 1, 2, 3)
			if err != nil {
				return nil, err
			}
			return sketch.NewArc(id, c, f[0], f[1]*degToRad, f[2]*degToRad)
		}))

	// (arc3 (pt 5 0) (pt 0 5) (pt -5 0))
	env.AddFunction("arc3", b.entity(sketch.KindArc, "three points", 3,
		func(id sketch.EntityID, pa callArgs) (sketch.Entity, error) {
			p, err := points(pa, []string{"first", "through", "last"}, 0, 1, 2)
			if err != nil {
				return nil, err
			}
			return sketch.ArcFromThreePoints(id, p[0], p[1], p[2])
		}))

	// (rect (pt 0 0) (pt 40 20))
	env.AddFunction("rect", b.entity(sketch.KindRectangle, "two opposite corners", 2,
		func(id sketch.EntityID, pa callArgs) (sketch.Entity, error) {
			p, err := points(pa, []string{"corner1", "corner2"}, 0, 1)
			if err != nil {
				return nil, err
			}
			return sketch.NewRectangle(id, p[0], p[1])
		}))

	// (point (pt 3 4))
	env.AddFunction("point", b.entity(sketch.KindPoint, "a position", 1,
		func(id sketch.EntityID, pa callArgs) (sketch.Entity, error) {
			p, err := toPoint(pa.pos[0])
			if err != nil {
				return nil, fmt.Errorf("position: %w", err)
			}
			return sketch.NewPoint(id, p)
		}))

	// (ellipse (pt 0 0) 10 4 :rotation 30)
	env.AddFunction("ellipse", b.entity(sketch.KindEllipse, "center, major and minor axes", 3,
		func(id sketch.EntityID, pa callArgs) (sketch.Entity, error) {
			c, err := toPoint(pa.pos[0])
			if err != nil {
				return nil, fmt.Errorf("center: %w", err)
			}
			f, err := floats(pa, []string{"major", "minor"}, 1, 2)
			if err != nil {
				return nil, err
			}
			rot, err := optAngle(pa, "rotation")
			if err != nil {
				return nil, err
			}
			return sketch.NewEllipse(id, c, f[0], f[1], rot)
		}))

	// (ellipse-axes (pt 0 0) (pt 10 0) (pt 2 4)): center, end of the major
	// axis, and a point whose distance from the major axis is the minor
	// axis.
	env.AddFunction("ellipse_axes", b.entity(sketch.KindEllipse, "center, major axis end and minor point", 3,
		func(id sketch.EntityID, pa callArgs) (sketch.Entity, error) {
			p, err := points(pa, []string{"center", "major", "minor"}, 0, 1, 2)
			if err != nil {
				return nil, err
			}
			return sketch.EllipseFromAxes(id, p[0], p[1], p[2])
		}))

	// (polygon (pt 0 0) 10 6 :rotation 15)
	env.AddFunction("polygon", b.entity(sketch.KindPolygon, "center, radius and side count", 3,
		func(id sketch.EntityID, pa callArgs) (sketch.Entity, error) {
			c, err := toPoint(pa.pos[0])
			if err != nil {
				return nil, fmt.Errorf("center: %w", err)
			}
			f, err := floats(pa, []string{"radius"}, 1)
			if err != nil {
				return nil, err
			}
			sides, err := toInt(pa.pos[2])
			if err != nil {
				return nil, fmt.Errorf("sides: %w", err)
			}
			rot, err := optAngle(pa, "rotation")
			if err != nil {
				return nil, err
			}
			return sketch.NewPolygon(id, c, f[0], sides, rot)
		}))

	// (slot (pt 0 0) (pt 20 0) 6)
	env.AddFunction("slot", b.entity(sketch.KindSlot, "start, end and width", 3,
		func(id sketch.EntityID, pa callArgs) (sketch.Entity, error) {
			p, err := points(pa, []string{"start", "end"}, 0, 1)
			if err != nil {
				return nil, err
			}
			f, err := floats(pa, []string{"width"}, 2)
			if err != nil {
				return nil, err
			}
			return sketch.NewSlot(id, p[0], p[1], f[0])
		}))

	// (spline (list (pt 0 0) (pt 5 5) (pt 10 0)) :degree 2 :closed false)
	env.AddFunction("spline", b.entity(sketch.KindSpline, "a list of control points", 1,
		func(id sketch.EntityID, pa callArgs) (sketch.Entity, error) {
			cps, err := toPoints(pa.pos[0])
			if err != nil {
				return nil, fmt.Errorf("control points: %w", err)
			}
			degree := defaultSplineDegree
			if v, ok := pa.named["degree"]; ok {
				if degree, err = toInt(v); err != nil {
					return nil, fmt.Errorf("degree: %w", err)
				}
			}
			closed := false
			if v, ok := pa.named["closed"]; ok {
				if closed, err = toBool(v); err != nil {
					return nil, fmt.Errorf("closed: %w", err)
				}
			}
			return sketch.NewSpline(id, cps, degree, closed)
		}))
}

const (
	degToRad            = math.Pi / 180
	defaultSplineDegree = 3
)
