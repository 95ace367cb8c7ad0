package geom

import "fmt"

// Point2 is an integer position on a plane. Y grows downwards for
// screen-style grids and upwards for height-style simulations; the type
// itself does not care.
type Point2 struct {
	X, Y int
}

// Point3 is an integer position in space.
type Point3 struct {
	X, Y, Z int
}

// Common unit steps on the plane.
var (
	Origin2 = Point2{}
	Up      = Point2{X: 0, Y: -1}
	Down    = Point2{X: 0, Y: 1}
	Left    = Point2{X: -1, Y: 0}
	Right   = Point2{X: 1, Y: 0}
)

// Conn4 lists the orthogonal neighbour offsets in N, E, S, W order.
var Conn4 = []Point2{Up, Right, Down, Left}

// Conn8 lists all eight neighbour offsets clockwise from N.
var Conn8 = []Point2{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// Face6 lists the six face-sharing neighbour offsets of a unit cube.
var Face6 = []Point3{
	{-1, 0, 0}, {1, 0, 0},
	{0, -1, 0}, {0, 1, 0},
	{0, 0, -1}, {0, 0, 1},
}

// Add returns p+q.
func (p Point2) Add(q Point2) Point2 { return Point2{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point2) Sub(q Point2) Point2 { return Point2{p.X - q.X, p.Y - q.Y} }

// Scale multiplies both components by k.
func (p Point2) Scale(k int) Point2 { return Point2{p.X * k, p.Y * k} }

// Sign maps each component to -1, 0 or 1.
func (p Point2) Sign() Point2 { return Point2{sign(p.X), sign(p.Y)} }

// Abs returns the component-wise absolute value.
func (p Point2) Abs() Point2 { return Point2{abs(p.X), abs(p.Y)} }

// Min returns the component-wise minimum of p and q.
func (p Point2) Min(q Point2) Point2 { return Point2{min(p.X, q.X), min(p.Y, q.Y)} }

// Max returns the component-wise maximum of p and q.
func (p Point2) Max(q Point2) Point2 { return Point2{max(p.X, q.X), max(p.Y, q.Y)} }

// Manhattan returns |p.X-q.X| + |p.Y-q.Y|.
func (p Point2) Manhattan(q Point2) int { return abs(p.X-q.X) + abs(p.Y-q.Y) }

// Compare orders points lexicographically by X, then Y.
// It returns -1, 0 or +1.
func (p Point2) Compare(q Point2) int {
	switch {
	case p.X != q.X:
		return cmpInt(p.X, q.X)
	default:
		return cmpInt(p.Y, q.Y)
	}
}

// Less reports whether p sorts before q.
func (p Point2) Less(q Point2) bool { return p.Compare(q) < 0 }

func (p Point2) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Add returns p+q.
func (p Point3) Add(q Point3) Point3 { return Point3{p.X + q.X, p.Y + q.Y, p.Z + q.Z} }

// Sub returns p-q.
func (p Point3) Sub(q Point3) Point3 { return Point3{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }

// Scale multiplies every component by k.
func (p Point3) Scale(k int) Point3 { return Point3{p.X * k, p.Y * k, p.Z * k} }

// Sign maps each component to -1, 0 or 1.
func (p Point3) Sign() Point3 { return Point3{sign(p.X), sign(p.Y), sign(p.Z)} }

// Abs returns the component-wise absolute value.
func (p Point3) Abs() Point3 { return Point3{abs(p.X), abs(p.Y), abs(p.Z)} }

// Min returns the component-wise minimum of p and q.
func (p Point3) Min(q Point3) Point3 {
	return Point3{min(p.X, q.X), min(p.Y, q.Y), min(p.Z, q.Z)}
}

// Max returns the component-wise maximum of p and q.
func (p Point3) Max(q Point3) Point3 {
	return Point3{max(p.X, q.X), max(p.Y, q.Y), max(p.Z, q.Z)}
}

// Manhattan returns the sum of absolute component differences.
func (p Point3) Manhattan(q Point3) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y) + abs(p.Z-q.Z)
}

// Compare orders points lexicographically by X, Y, then Z.
func (p Point3) Compare(q Point3) int {
	switch {
	case p.X != q.X:
		return cmpInt(p.X, q.X)
	case p.Y != q.Y:
		return cmpInt(p.Y, q.Y)
	default:
		return cmpInt(p.Z, q.Z)
	}
}

// Less reports whether p sorts before q.
func (p Point3) Less(q Point3) bool { return p.Compare(q) < 0 }

func (p Point3) String() string { return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z) }

// Bounds2 returns the component-wise minimum and maximum over pts.
// ok is false when pts is empty.
func Bounds2(pts ...Point2) (lo, hi Point2, ok bool) {
	if len(pts) == 0 {
		return Point2{}, Point2{}, false
	}
	lo, hi = pts[0], pts[0]
	for _, p := range pts[1:] {
		lo = lo.Min(p)
		hi = hi.Max(p)
	}

	return lo, hi, true
}

// Bounds3 is the 3D counterpart of Bounds2.
func Bounds3(pts ...Point3) (lo, hi Point3, ok bool) {
	if len(pts) == 0 {
		return Point3{}, Point3{}, false
	}
	lo, hi = pts[0], pts[0]
	for _, p := range pts[1:] {
		lo = lo.Min(p)
		hi = hi.Max(p)
	}

	return lo, hi, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
