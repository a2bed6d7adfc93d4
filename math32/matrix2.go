// Copyright (c) 2026, The svg2vector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"strconv"
	"strings"
)

// Epsilon is the tolerance used by the [Matrix2] classification
// predicates ([Matrix2.IsIdentity], [Matrix2.IsTranslationOnly],
// [Matrix2.HasScale]) and by [Matrix2.Determinant] degeneracy checks.
// Transforms closer to the identity than this are treated as the
// identity when deciding whether a structural simplification is safe.
const Epsilon = 1.0e-4

// Matrix2 is a 2D affine transform, homogeneous to a 3x3 matrix with
// an implicit (0, 0, 1) bottom row:
//
//	| XX XY X0 |
//	| YX YY Y0 |
//	|  0  0  1 |
//
// A point (x, y) maps to (XX*x + XY*y + X0, YX*x + YY*y + Y0).
// XX and YY carry scale, YX and XY carry skew/rotation, and X0 and Y0
// carry translation.
type Matrix2 struct {
	XX, YX, XY, YY, X0, Y0 float32
}

// Identity2 returns a new identity [Matrix2].
func Identity2() Matrix2 {
	return Matrix2{XX: 1, YY: 1}
}

// Translate2D returns a new [Matrix2] translating by the given amounts.
func Translate2D(x, y float32) Matrix2 {
	return Matrix2{XX: 1, YY: 1, X0: x, Y0: y}
}

// Scale2D returns a new [Matrix2] scaling by the given amounts.
func Scale2D(x, y float32) Matrix2 {
	return Matrix2{XX: x, YY: y}
}

// Rotate2D returns a new [Matrix2] rotating by the given angle
// in radians, counter-clockwise for a Y-down coordinate system.
func Rotate2D(angle float32) Matrix2 {
	c := Cos(angle)
	s := Sin(angle)
	return Matrix2{XX: c, YX: s, XY: -s, YY: c}
}

// RotateAbout2D returns a new [Matrix2] rotating by the given angle in
// radians about the given pivot point, composed as translate(pivot),
// rotate, translate(-pivot).
func RotateAbout2D(angle, px, py float32) Matrix2 {
	return Translate2D(px, py).Mul(Rotate2D(angle)).Mul(Translate2D(-px, -py))
}

// Shear2D returns a new [Matrix2] shearing by the given
// proportional amounts.
func Shear2D(x, y float32) Matrix2 {
	return Matrix2{XX: 1, YX: y, XY: x, YY: 1}
}

// Skew2D returns a new [Matrix2] skewing by the given angles in radians.
func Skew2D(x, y float32) Matrix2 {
	return Shear2D(Tan(x), Tan(y))
}

// Mul returns a * b, the composite that applies b first and then a
// when mapping a point.
func (a Matrix2) Mul(b Matrix2) Matrix2 {
	return Matrix2{
		XX: a.XX*b.XX + a.XY*b.YX,
		YX: a.YX*b.XX + a.YY*b.YX,
		XY: a.XX*b.XY + a.XY*b.YY,
		YY: a.YX*b.XY + a.YY*b.YY,
		X0: a.XX*b.X0 + a.XY*b.Y0 + a.X0,
		Y0: a.YX*b.X0 + a.YY*b.Y0 + a.Y0,
	}
}

// SetMul concatenates the given matrix onto this one: a = a * b,
// so that b applies first when mapping a point.
func (a *Matrix2) SetMul(b Matrix2) {
	*a = a.Mul(b)
}

// PreMul returns b * a, the composite that applies a first and then b
// when mapping a point.
func (a Matrix2) PreMul(b Matrix2) Matrix2 {
	return b.Mul(a)
}

// SetPreMul pre-concatenates the given matrix onto this one: a = b * a,
// so that b applies last when mapping a point.
func (a *Matrix2) SetPreMul(b Matrix2) {
	*a = b.Mul(*a)
}

// Translate post-concatenates a translation by the given amounts;
// the translation applies before the existing transform when
// mapping a point.
func (a Matrix2) Translate(x, y float32) Matrix2 {
	return a.Mul(Translate2D(x, y))
}

// Scale post-concatenates a scale by the given amounts.
func (a Matrix2) Scale(x, y float32) Matrix2 {
	return a.Mul(Scale2D(x, y))
}

// Rotate post-concatenates a rotation by the given angle in radians.
func (a Matrix2) Rotate(angle float32) Matrix2 {
	return a.Mul(Rotate2D(angle))
}

// Shear post-concatenates a shear by the given proportional amounts.
func (a Matrix2) Shear(x, y float32) Matrix2 {
	return a.Mul(Shear2D(x, y))
}

// MulVector2AsPoint returns the vector transformed by the full affine
// map, including translation.
func (a Matrix2) MulVector2AsPoint(v Vector2) Vector2 {
	return Vec2(a.XX*v.X+a.XY*v.Y+a.X0, a.YX*v.X+a.YY*v.Y+a.Y0)
}

// MulVector2AsVector returns the vector transformed by the linear part
// of the map only, ignoring translation. Use for directions and deltas
// rather than points.
func (a Matrix2) MulVector2AsVector(v Vector2) Vector2 {
	return Vec2(a.XX*v.X+a.XY*v.Y, a.YX*v.X+a.YY*v.Y)
}

// MapPoints transforms count coordinate pairs from src starting at
// srcOff into dst starting at dstOff. Each pair occupies two
// consecutive values. src and dst may be the same slice and the
// offsets may overlap: pairs are processed back to front when the
// destination region starts past the source region, so no source pair
// is overwritten before it is read.
func (a Matrix2) MapPoints(src []float32, srcOff int, dst []float32, dstOff int, count int) {
	mp := func(i int) {
		x := src[srcOff+2*i]
		y := src[srcOff+2*i+1]
		dst[dstOff+2*i] = a.XX*x + a.XY*y + a.X0
		dst[dstOff+2*i+1] = a.YX*x + a.YY*y + a.Y0
	}
	if dstOff > srcOff {
		for i := count - 1; i >= 0; i-- {
			mp(i)
		}
		return
	}
	for i := 0; i < count; i++ {
		mp(i)
	}
}

// Determinant returns the determinant of the linear 2x2 block.
// A zero determinant signals a degenerate, non-invertible transform.
func (a Matrix2) Determinant() float32 {
	return a.XX*a.YY - a.XY*a.YX
}

// Inverse returns the inverse of this transform.
// The inverse of a degenerate transform is the identity.
func (a Matrix2) Inverse() Matrix2 {
	det := a.Determinant()
	if Abs(det) < Epsilon {
		return Identity2()
	}
	id := 1 / det
	return Matrix2{
		XX: a.YY * id,
		YX: -a.YX * id,
		XY: -a.XY * id,
		YY: a.XX * id,
		X0: (a.XY*a.Y0 - a.YY*a.X0) * id,
		Y0: (a.YX*a.X0 - a.XX*a.Y0) * id,
	}
}

// IsIdentity reports whether the linear part is the identity and the
// translation is zero, within [Epsilon].
func (a Matrix2) IsIdentity() bool {
	return a.IsTranslationOnly() && Abs(a.X0) < Epsilon && Abs(a.Y0) < Epsilon
}

// IsTranslationOnly reports whether the linear part is the identity,
// within [Epsilon]; the translation may be nonzero.
func (a Matrix2) IsTranslationOnly() bool {
	return Abs(a.XX-1) < Epsilon && Abs(a.YY-1) < Epsilon &&
		Abs(a.YX) < Epsilon && Abs(a.XY) < Epsilon
}

// HasScale reports whether the images of the two unit basis vectors do
// not both have unit length, within [Epsilon]. This is tolerant of pure
// rotation, which preserves basis lengths.
func (a Matrix2) HasScale() bool {
	return Abs(Hypot(a.XX, a.YX)-1) > Epsilon || Abs(Hypot(a.XY, a.YY)-1) > Epsilon
}

// ExtractRot extracts the rotation component, in radians.
func (a Matrix2) ExtractRot() float32 {
	return Atan2(a.YX, a.XX)
}

// ExtractScale extracts the x and y scale factors, as the lengths of
// the images of the unit basis vectors.
func (a Matrix2) ExtractScale() (scx, scy float32) {
	scx = Hypot(a.XX, a.YX)
	scy = Hypot(a.XY, a.YY)
	if a.Determinant() < 0 {
		scx = -scx
	}
	return
}

// ExtractTranslation extracts the translation component.
func (a Matrix2) ExtractTranslation() Vector2 {
	return Vec2(a.X0, a.Y0)
}

// SetString processes the standard SVG-style transform string to set
// the matrix. Multiple operations compose left to right, each applied
// before the accumulated transform when mapping a point. Angles in the
// string are in degrees per the SVG syntax.
func (a *Matrix2) SetString(str string) error {
	errmsg := "math32.Matrix2.SetString"
	str = strings.ToLower(strings.TrimSpace(str))
	*a = Identity2()
	if str == "none" || str == "" {
		return nil
	}
	// could have multiple transforms
	for {
		pidx := strings.IndexByte(str, '(')
		if pidx < 0 {
			err := fmt.Errorf("%s: no params for transform: %q", errmsg, str)
			return err
		}
		cmd := strings.TrimSpace(str[:pidx])
		vals := str[pidx+1:]
		nxt := ""
		eidx := strings.IndexByte(vals, ')')
		if eidx > 0 {
			nxt = strings.TrimSpace(vals[eidx+1:])
			if strings.HasPrefix(nxt, ";") {
				nxt = strings.TrimSpace(strings.TrimPrefix(nxt, ";"))
			}
			vals = vals[:eidx]
		}
		pts, err := ReadPoints(vals)
		if err != nil {
			return err
		}
		switch cmd {
		case "matrix":
			if len(pts) != 6 {
				return errParamMismatch(errmsg, cmd, pts)
			}
			a.SetMul(Matrix2{pts[0], pts[1], pts[2], pts[3], pts[4], pts[5]})
		case "translate":
			switch len(pts) {
			case 1:
				a.SetMul(Translate2D(pts[0], 0))
			case 2:
				a.SetMul(Translate2D(pts[0], pts[1]))
			default:
				return errParamMismatch(errmsg, cmd, pts)
			}
		case "scale":
			switch len(pts) {
			case 1:
				a.SetMul(Scale2D(pts[0], pts[0]))
			case 2:
				a.SetMul(Scale2D(pts[0], pts[1]))
			default:
				return errParamMismatch(errmsg, cmd, pts)
			}
		case "rotate":
			switch len(pts) {
			case 1:
				a.SetMul(Rotate2D(DegToRad(pts[0])))
			case 3:
				a.SetMul(RotateAbout2D(DegToRad(pts[0]), pts[1], pts[2]))
			default:
				return errParamMismatch(errmsg, cmd, pts)
			}
		case "skewx":
			if len(pts) != 1 {
				return errParamMismatch(errmsg, cmd, pts)
			}
			a.SetMul(Skew2D(DegToRad(pts[0]), 0))
		case "skewy":
			if len(pts) != 1 {
				return errParamMismatch(errmsg, cmd, pts)
			}
			a.SetMul(Skew2D(0, DegToRad(pts[0])))
		default:
			return fmt.Errorf("%s: unknown command: %q", errmsg, cmd)
		}
		if nxt == "" {
			break
		}
		if !strings.Contains(nxt, "(") {
			break
		}
		str = nxt
	}
	return nil
}

func errParamMismatch(errmsg, cmd string, pts []float32) error {
	return fmt.Errorf("%s: %s: bad number of params: %d", errmsg, cmd, len(pts))
}

// ReadPoints reads a comma- or space-separated list of numbers,
// as used in transform parameters and polygon/polyline points.
func ReadPoints(pstr string) ([]float32, error) {
	lastIndex := -1
	var pts []float32
	lr := ' '
	for i, r := range pstr {
		if !isNumPart(r, lr) {
			if lastIndex != -1 {
				p, err := strconv.ParseFloat(pstr[lastIndex:i], 32)
				if err != nil {
					return nil, err
				}
				pts = append(pts, float32(p))
			}
			if r == '-' {
				lastIndex = i
			} else {
				lastIndex = -1
			}
		} else if lastIndex == -1 {
			lastIndex = i
		}
		lr = r
	}
	if lastIndex != -1 {
		p, err := strconv.ParseFloat(pstr[lastIndex:], 32)
		if err != nil {
			return nil, err
		}
		pts = append(pts, float32(p))
	}
	return pts, nil
}

// isNumPart reports whether r continues a number whose previous rune is lr.
func isNumPart(r, lr rune) bool {
	if r >= '0' && r <= '9' || r == '.' || r == 'e' {
		return true
	}
	return (r == '-' || r == '+') && lr == 'e'
}

// String returns the SVG-style transform string representation of the
// matrix, using the most specific form that fully captures it.
func (a Matrix2) String() string {
	if a.IsIdentity() {
		return "none"
	}
	if a.YX == 0 && a.XY == 0 { // no rotation, emit scale and translate
		str := ""
		if a.X0 != 0 || a.Y0 != 0 {
			str += fmt.Sprintf("translate(%g,%g)", a.X0, a.Y0)
		}
		if a.XX != 1 || a.YY != 1 {
			if str != "" {
				str += " "
			}
			str += fmt.Sprintf("scale(%g,%g)", a.XX, a.YY)
		}
		return str
	}
	return fmt.Sprintf("matrix(%g,%g,%g,%g,%g,%g)", a.XX, a.YX, a.XY, a.YY, a.X0, a.Y0)
}
