package math3d

import "math"

// Matrix is a 4x4 homogeneous transform stored row-major: M[r][c] is row r,
// column c, both zero-indexed. Points are row vectors, so applying a
// transform is p*M and composing A.Multiply(B) means "apply A, then B".
// Translation lives in row 3 (the fourth row), matching the row-vector
// convention throughout this package.
type Matrix struct {
	M [4][4]float64
}

// Identity returns the 4x4 identity matrix.
func Identity() Matrix {
	var m Matrix
	m.M[0][0] = 1
	m.M[1][1] = 1
	m.M[2][2] = 1
	m.M[3][3] = 1
	return m
}

// NewProjection builds the combined viewport+perspective-projection matrix
// for a width x height viewport, a field of view in degrees, and near/far
// clip distances. Its affine apply (MultiplyPoint) maps clip space into
// viewport space; its projective apply (ProjectPoint) additionally performs
// the perspective divide.
func NewProjection(width, height int, fovDegrees, zNear, zFar float64) Matrix {
	halfWidth := float64(width) / 2.0
	halfHeight := float64(height) / 2.0

	viewport := Identity()
	viewport.M[0][0] = -halfWidth
	viewport.M[1][1] = halfHeight
	viewport.M[3][0] = halfWidth
	viewport.M[3][1] = halfHeight

	fovRads := (fovDegrees / 180.0) * math.Pi
	aspect := halfWidth / halfHeight
	cotFovy2 := math.Cos(fovRads/2.0) / math.Sin(fovRads/2.0)

	projection := Identity()
	projection.M[0][0] = cotFovy2 / aspect
	projection.M[1][1] = cotFovy2
	projection.M[2][2] = -(zFar + zNear) / (zNear - zFar)
	projection.M[2][3] = -1
	projection.M[3][2] = -(2.0 * zFar * zNear) / (zNear - zFar)

	projection.Multiply(viewport)
	return projection
}

// MultiplyPoint applies the affine part of the matrix to p: it treats p as
// (x, y, z, 1), reads only the 3x3 sub-block plus the translation row, and
// never performs a perspective divide.
func (m Matrix) MultiplyPoint(p Vec3) Vec3 {
	x := m.M[0][0]*p.X + m.M[1][0]*p.Y + m.M[2][0]*p.Z + m.M[3][0]
	y := m.M[0][1]*p.X + m.M[1][1]*p.Y + m.M[2][1]*p.Z + m.M[3][1]
	z := m.M[0][2]*p.X + m.M[1][2]*p.Y + m.M[2][2]*p.Z + m.M[3][2]
	return Vec3{x, y, z}
}

// ProjectPoint applies the full projective transform to p, dividing by the
// homogeneous w. The returned point carries 1/w in its Z component — every
// downstream rasterization operation relies on this convention for
// perspective-correct interpolation and depth testing.
func (m Matrix) ProjectPoint(p Vec3) Vec3 {
	x := m.M[0][0]*p.X + m.M[1][0]*p.Y + m.M[2][0]*p.Z + m.M[3][0]
	y := m.M[0][1]*p.X + m.M[1][1]*p.Y + m.M[2][1]*p.Z + m.M[3][1]
	w := m.M[0][3]*p.X + m.M[1][3]*p.Y + m.M[2][3]*p.Z + m.M[3][3]
	return Vec3{x / w, y / w, 1 / w}
}

// Multiply post-multiplies m by other in the row-vector sense: m <- m*other,
// so that applying the new m equals applying the old m first, then other.
// The new matrix is built in a scratch value before any field of m is
// overwritten, since several entries of the result read more than one
// field of the original m.
func (m *Matrix) Multiply(other Matrix) {
	var tmp Matrix
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m.M[r][k] * other.M[k][c]
			}
			tmp.M[r][c] = sum
		}
	}
	*m = tmp
}

// Translate sets the translation row to the affine apply of (x, y, z)
// through the matrix's current state — it translates in the matrix's
// current frame, not the world frame.
func (m *Matrix) Translate(x, y, z float64) {
	p := m.MultiplyPoint(Vec3{x, y, z})
	m.M[3][0] = p.X
	m.M[3][1] = p.Y
	m.M[3][2] = p.Z
}

// TranslateX translates along the matrix's current X axis.
func (m *Matrix) TranslateX(x float64) { m.Translate(x, 0, 0) }

// TranslateY translates along the matrix's current Y axis.
func (m *Matrix) TranslateY(y float64) { m.Translate(0, y, 0) }

// TranslateZ translates along the matrix's current Z axis.
func (m *Matrix) TranslateZ(z float64) { m.Translate(0, 0, z) }

// Scale post-multiplies m by a scale transform.
func (m *Matrix) Scale(x, y, z float64) {
	tmp := Identity()
	tmp.M[0][0] = x
	tmp.M[1][1] = y
	tmp.M[2][2] = z
	m.Multiply(tmp)
}

// ScaleX scales uniformly along X only.
func (m *Matrix) ScaleX(x float64) { m.Scale(x, 1, 1) }

// ScaleY scales uniformly along Y only.
func (m *Matrix) ScaleY(y float64) { m.Scale(1, y, 1) }

// ScaleZ scales uniformly along Z only.
func (m *Matrix) ScaleZ(z float64) { m.Scale(1, 1, z) }

// RotateX post-multiplies m by a rotation of degrees about the X axis.
func (m *Matrix) RotateX(degrees float64) {
	tmp := Identity()
	rad := (degrees / 180.0) * math.Pi
	tmp.M[2][2] = math.Cos(rad)
	tmp.M[1][1] = tmp.M[2][2]
	tmp.M[2][1] = math.Sin(rad)
	tmp.M[1][2] = -tmp.M[2][1]
	m.Multiply(tmp)
}

// RotateY post-multiplies m by a rotation of degrees about the Y axis.
func (m *Matrix) RotateY(degrees float64) {
	tmp := Identity()
	rad := (degrees / 180.0) * math.Pi
	tmp.M[2][2] = math.Cos(rad)
	tmp.M[0][0] = tmp.M[2][2]
	tmp.M[0][2] = math.Sin(rad)
	tmp.M[2][0] = -tmp.M[0][2]
	m.Multiply(tmp)
}

// RotateZ post-multiplies m by a rotation of degrees about the Z axis.
func (m *Matrix) RotateZ(degrees float64) {
	tmp := Identity()
	rad := (degrees / 180.0) * math.Pi
	tmp.M[1][1] = math.Cos(rad)
	tmp.M[0][0] = tmp.M[1][1]
	tmp.M[1][0] = math.Sin(rad)
	tmp.M[0][1] = -tmp.M[1][0]
	m.Multiply(tmp)
}

// RotateOriginX rotates about the X axis around origin instead of the
// matrix's own origin, by translating to origin, rotating, and translating
// back. The translate steps are done by directly overwriting the
// translation row of a scratch matrix (an affine-only shortcut), not by
// calling Translate.
func (m *Matrix) RotateOriginX(origin Vec3, degrees float64) {
	move := Identity()
	move.M[3][0], move.M[3][1], move.M[3][2] = -origin.X, -origin.Y, -origin.Z
	m.Multiply(move)

	m.RotateX(degrees)

	move.M[3][0], move.M[3][1], move.M[3][2] = origin.X, origin.Y, origin.Z
	m.Multiply(move)
}

// RotateOriginY is RotateOriginX's Y-axis counterpart.
func (m *Matrix) RotateOriginY(origin Vec3, degrees float64) {
	move := Identity()
	move.M[3][0], move.M[3][1], move.M[3][2] = -origin.X, -origin.Y, -origin.Z
	m.Multiply(move)

	m.RotateY(degrees)

	move.M[3][0], move.M[3][1], move.M[3][2] = origin.X, origin.Y, origin.Z
	m.Multiply(move)
}

// RotateOriginZ is RotateOriginX's Z-axis counterpart.
func (m *Matrix) RotateOriginZ(origin Vec3, degrees float64) {
	move := Identity()
	move.M[3][0], move.M[3][1], move.M[3][2] = -origin.X, -origin.Y, -origin.Z
	m.Multiply(move)

	m.RotateZ(degrees)

	move.M[3][0], move.M[3][1], move.M[3][2] = origin.X, origin.Y, origin.Z
	m.Multiply(move)
}

// Clone returns an independent copy of m. Since Matrix holds no pointers,
// this is a plain value copy, but the method is kept for parity with the
// rest of this package's construct/transform/clone lifecycle.
func (m Matrix) Clone() Matrix {
	return m
}

func minor(a [16]float64, r0, r1, r2, c0, c1, c2 int) float64 {
	return a[4*r0+c0]*(a[4*r1+c1]*a[4*r2+c2]-a[4*r2+c1]*a[4*r1+c2]) -
		a[4*r0+c1]*(a[4*r1+c0]*a[4*r2+c2]-a[4*r2+c0]*a[4*r1+c2]) +
		a[4*r0+c2]*(a[4*r1+c0]*a[4*r2+c1]-a[4*r2+c0]*a[4*r1+c1])
}

func determinant(a [16]float64) float64 {
	return a[0]*minor(a, 1, 2, 3, 1, 2, 3) -
		a[1]*minor(a, 1, 2, 3, 0, 2, 3) +
		a[2]*minor(a, 1, 2, 3, 0, 1, 3) -
		a[3]*minor(a, 1, 2, 3, 0, 1, 2)
}

// Invert replaces m with its inverse, computed via the classic
// adjugate-over-determinant cofactor method. Only defined when m's
// determinant is nonzero; Invert does not check for a zero determinant,
// and a singular m is left holding infinities or NaNs.
func (m *Matrix) Invert() {
	flat := [16]float64{
		m.M[0][0], m.M[0][1], m.M[0][2], m.M[0][3],
		m.M[1][0], m.M[1][1], m.M[1][2], m.M[1][3],
		m.M[2][0], m.M[2][1], m.M[2][2], m.M[2][3],
		m.M[3][0], m.M[3][1], m.M[3][2], m.M[3][3],
	}

	adj := [16]float64{
		minor(flat, 1, 2, 3, 1, 2, 3),
		-minor(flat, 0, 2, 3, 1, 2, 3),
		minor(flat, 0, 1, 3, 1, 2, 3),
		-minor(flat, 0, 1, 2, 1, 2, 3),
		-minor(flat, 1, 2, 3, 0, 2, 3),
		minor(flat, 0, 2, 3, 0, 2, 3),
		-minor(flat, 0, 1, 3, 0, 2, 3),
		minor(flat, 0, 1, 2, 0, 2, 3),
		minor(flat, 1, 2, 3, 0, 1, 3),
		-minor(flat, 0, 2, 3, 0, 1, 3),
		minor(flat, 0, 1, 3, 0, 1, 3),
		-minor(flat, 0, 1, 2, 0, 1, 3),
		-minor(flat, 1, 2, 3, 0, 1, 2),
		minor(flat, 0, 2, 3, 0, 1, 2),
		-minor(flat, 0, 1, 3, 0, 1, 2),
		minor(flat, 0, 1, 2, 0, 1, 2),
	}

	invDet := 1.0 / determinant(flat)
	for i := range adj {
		adj[i] *= invDet
	}

	m.M[0][0], m.M[0][1], m.M[0][2], m.M[0][3] = adj[0], adj[1], adj[2], adj[3]
	m.M[1][0], m.M[1][1], m.M[1][2], m.M[1][3] = adj[4], adj[5], adj[6], adj[7]
	m.M[2][0], m.M[2][1], m.M[2][2], m.M[2][3] = adj[8], adj[9], adj[10], adj[11]
	m.M[3][0], m.M[3][1], m.M[3][2], m.M[3][3] = adj[12], adj[13], adj[14], adj[15]
}
