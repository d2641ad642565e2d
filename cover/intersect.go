package cover

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

func ringsTouch(ra, rb orb.Ring, tolerance float64) bool {
	if len(ra) == 1 && len(rb) == 1 {
		return pointsTouch(ra[0], rb[0], tolerance)
	}
	for i := 0; i < len(ra)-1; i++ {
		for j := 0; j < len(rb)-1; j++ {
			if segmentsTouch(ra[i], ra[i+1], rb[j], rb[j+1], tolerance) {
				return true
			}
		}
	}
	return false
}

func pointsTouch(p, q orb.Point, tolerance float64) bool {
	dx, dy := p[0]-q[0], p[1]-q[1]
	return dx*dx+dy*dy <= tolerance*tolerance
}

// segmentsTouch reports whether segment p0-p1 and segment p2-p3 cross,
// or pass within tolerance of each other.
// Unlike a strict crossing test, shared endpoints and collinear overlaps count.
func segmentsTouch(p0, p1, p2, p3 orb.Point, tolerance float64) bool {
	d1 := orientation(p2, p3, p0)
	d2 := orientation(p2, p3, p1)
	d3 := orientation(p0, p1, p2)
	d4 := orientation(p0, p1, p3)
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	// No proper crossing; the closest approach is at one of the four endpoints.
	tol2 := tolerance * tolerance
	return planar.DistanceFromSegmentSquared(p2, p3, p0) <= tol2 ||
		planar.DistanceFromSegmentSquared(p2, p3, p1) <= tol2 ||
		planar.DistanceFromSegmentSquared(p0, p1, p2) <= tol2 ||
		planar.DistanceFromSegmentSquared(p0, p1, p3) <= tol2
}

// orientation is the z of the cross product (a-o) x (b-o):
// positive when o, a, b turn counter-clockwise.
func orientation(o, a, b orb.Point) float64 {
	return (a[0]-o[0])*(b[1]-o[1]) - (a[1]-o[1])*(b[0]-o[0])
}
