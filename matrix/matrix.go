// Package matrix implements the 2D affine transformations
// used by the SVG 'transform' family of attributes.
package matrix

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/benoitkugler/svgstyle/utils/parsing"
)

// Transform encode a (2D) linear transformation
//
// The encoded transformation is given by :
//
//	x_new = a * x + c * y + e
//	y_new = b * x + d * y + f
//
// which is the SVG matrix(a, b, c, d, e, f).
type Transform struct {
	A, B, C, D, E, F float64
}

// Identity returns a new matrix initialized to the identity.
func Identity() Transform { return Transform{1, 0, 0, 1, 0, 0} }

// Translation returns the translation by (tx, ty).
func Translation(tx, ty float64) Transform { return Transform{1, 0, 0, 1, tx, ty} }

// Scaling returns the scaling by (sx, sy).
func Scaling(sx, sy float64) Transform { return Transform{sx, 0, 0, sy, 0, 0} }

// Rotation returns a rotation of `degrees`, positive angles
// rotating from the positive X axis toward the positive Y axis.
func Rotation(degrees float64) Transform {
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	return Transform{cos, sin, -sin, cos, 0, 0}
}

// Skew returns a skew transformation, with angles in degrees.
func Skew(degreesX, degreesY float64) Transform {
	return Transform{1, math.Tan(degreesY * math.Pi / 180), math.Tan(degreesX * math.Pi / 180), 1, 0, 0}
}

// Determinant returns the determinant of the matrix, which is
// non zero if and only if the transformation is reversible.
func (t Transform) Determinant() float64 { return t.A*t.D - t.B*t.C }

// Mul returns the transform T * U, which apply U then T.
func Mul(T, U Transform) Transform {
	return Transform{
		A: T.A*U.A + T.C*U.B,
		B: T.B*U.A + T.D*U.B,
		C: T.A*U.C + T.C*U.D,
		D: T.B*U.C + T.D*U.D,
		E: T.A*U.E + T.C*U.F + T.E,
		F: T.B*U.E + T.D*U.F + T.F,
	}
}

// Invert modify the matrix in place. Return an error
// if the transformation is not bijective.
func (T *Transform) Invert() error {
	det := T.Determinant()
	if det == 0 {
		return errors.New("transformation is not invertible")
	}
	T.A, T.D = T.D/det, T.A/det
	T.B = -T.B / det
	T.C = -T.C / det
	e := -(T.A*T.E + T.C*T.F)
	f := -(T.B*T.E + T.D*T.F)
	T.E, T.F = e, f
	return nil
}

// Apply transforms the point `(x, y)` by this matrix.
func (T Transform) Apply(x, y float64) (outX, outY float64) {
	return T.A*x + T.C*y + T.E, T.B*x + T.D*y + T.F
}

var errParamMismatch = errors.New("number of parameters mismatch")

// Parse parses a transform list, like "translate(10) rotate(45 5 5)".
// The transformations are composed from left to right, and an empty
// list is the identity.
func Parse(attr string) (Transform, error) {
	out := Identity()
	for _, t := range strings.Split(attr, ")") {
		t = strings.TrimLeft(strings.TrimSpace(t), ",")
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		name, args, ok := strings.Cut(t, "(")
		if !ok {
			return Transform{}, fmt.Errorf("invalid transform %q", t)
		}
		values, ok := parsing.ParseNumberList(args)
		if !ok {
			return Transform{}, fmt.Errorf("invalid transform arguments %q", args)
		}
		tr, err := newTransform(strings.ToLower(strings.TrimSpace(name)), values)
		if err != nil {
			return Transform{}, fmt.Errorf("invalid transform %q: %w", t, err)
		}
		out = Mul(out, tr)
	}
	return out, nil
}

func newTransform(kind string, args []float64) (Transform, error) {
	L := len(args)
	switch kind {
	case "matrix":
		if L == 6 {
			return Transform{args[0], args[1], args[2], args[3], args[4], args[5]}, nil
		}
	case "translate":
		if L == 1 {
			return Translation(args[0], 0), nil
		} else if L == 2 {
			return Translation(args[0], args[1]), nil
		}
	case "scale":
		if L == 1 {
			return Scaling(args[0], args[0]), nil
		} else if L == 2 {
			return Scaling(args[0], args[1]), nil
		}
	case "rotate":
		if L == 1 {
			return Rotation(args[0]), nil
		} else if L == 3 {
			cx, cy := args[1], args[2]
			return Mul(Translation(cx, cy), Mul(Rotation(args[0]), Translation(-cx, -cy))), nil
		}
	case "skewx":
		if L == 1 {
			return Skew(args[0], 0), nil
		}
	case "skewy":
		if L == 1 {
			return Skew(0, args[0]), nil
		}
	default:
		return Transform{}, fmt.Errorf("unknown transformation %s", kind)
	}
	return Transform{}, errParamMismatch
}
