package geometry2D

import "math"

// ToCylindrical maps cartesian coordinates to (r, θ) with θ normalized to
// [0, 2π). Exact inverse of ToCartesian for r ≥ 0.
func ToCylindrical(x, y float64) (r, theta float64) {
	r = math.Sqrt(x*x + y*y)
	theta = math.Atan2(y, x)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	return
}

func ToCartesian(r, theta float64) (x, y float64) {
	x = r * math.Cos(theta)
	y = r * math.Sin(theta)
	return
}

// wrapAngle folds theta into [0, domainAngle).
func wrapAngle(theta, domainAngle float64) float64 {
	theta = math.Mod(theta, domainAngle)
	if theta < 0 {
		theta += domainAngle
	}
	return theta
}

// angularDistance is the shortest wrapped separation between two angles
// within a periodic domain.
func angularDistance(a, b, domainAngle float64) float64 {
	d := math.Abs(a - b)
	if d > 0.5*domainAngle {
		d = domainAngle - d
	}
	return d
}
