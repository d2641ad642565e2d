package datum

import "math"

// Krasovsky 1940 ellipsoid.
// Kept as variables so that every step is computed, and rounded, in float64.
var (
	semiMajorAxis   = 6378245.0
	eccentricitySq  = 0.00669342162296594323
	semiMinorFactor = semiMajorAxis * (1.0 - eccentricitySq)
)

// WGS84ToGCJ02 applies the empirical WGS-84 to GCJ-02 offset.
// The shift is applied everywhere, including outside China.
//
// Products are wrapped in float64 conversions, which stops the compiler from
// fusing them into multiply-adds, so the output does not depend on the architecture.
func WGS84ToGCJ02(lon, lat float64) (float64, float64) {
	x := lon - 105.0
	y := lat - 35.0

	dLat := offsetLat(x, y)
	dLon := offsetLon(x, y)

	radLat := lat / 180.0 * math.Pi
	magic := math.Sin(radLat)
	magic = 1.0 - float64(eccentricitySq*float64(magic*magic))
	sqrtMagic := math.Sqrt(magic)

	dLat = float64(dLat*180.0) / float64(semiMinorFactor/float64(magic*sqrtMagic)*math.Pi)
	dLon = float64(dLon*180.0) / float64(semiMajorAxis/sqrtMagic*math.Cos(radLat)*math.Pi)
	return lon + dLon, lat + dLat
}

func offsetLat(x, y float64) float64 {
	r := -100.0 + float64(2.0*x) + float64(3.0*y) + float64(0.2*y*y) + float64(0.1*x*y) +
		float64(0.2*math.Sqrt(math.Abs(x)))
	r += float64(float64(float64(20.0*math.Sin(6.0*x*math.Pi))+float64(20.0*math.Sin(2.0*x*math.Pi))) * 2.0 / 3.0)
	r += float64(float64(float64(20.0*math.Sin(y*math.Pi))+float64(40.0*math.Sin(y/3.0*math.Pi))) * 2.0 / 3.0)
	r += float64(float64(float64(160.0*math.Sin(y/12.0*math.Pi))+float64(320.0*math.Sin(y*math.Pi/30.0))) * 2.0 / 3.0)
	return r
}

func offsetLon(x, y float64) float64 {
	r := 300.0 + x + float64(2.0*y) + float64(0.1*x*x) + float64(0.1*x*y) +
		float64(0.1*math.Sqrt(math.Abs(x)))
	r += float64(float64(float64(20.0*math.Sin(6.0*x*math.Pi))+float64(20.0*math.Sin(2.0*x*math.Pi))) * 2.0 / 3.0)
	r += float64(float64(float64(20.0*math.Sin(x*math.Pi))+float64(40.0*math.Sin(x/3.0*math.Pi))) * 2.0 / 3.0)
	r += float64(float64(float64(150.0*math.Sin(x/12.0*math.Pi))+float64(300.0*math.Sin(x/30.0*math.Pi))) * 2.0 / 3.0)
	return r
}
