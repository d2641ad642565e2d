package nds

const (
	MinDegrees = -180.0
	MaxDegrees = 180.0

	// fixedPerQuadrant is the number of fixed-point units in 90 degrees.
	fixedPerQuadrant = 1 << 30
)

// Quantum is the size of one fixed-point unit in degrees, about 8.4e-8.
const Quantum = 90.0 / fixedPerQuadrant

// DegreesToFixed converts degrees to fixed-point units, truncating toward zero.
// Values outside [-180, 180], and NaN, return a *DomainError.
func DegreesToFixed(deg float64) (int64, error) {
	if !(deg >= MinDegrees && deg <= MaxDegrees) {
		return 0, &DomainError{Value: deg}
	}
	f := float64(fixedPerQuadrant)
	return int64(f * deg / 90.0), nil
}

// MustDegreesToFixed is like DegreesToFixed but panics on a domain violation.
func MustDegreesToFixed(deg float64) int64 {
	v, err := DegreesToFixed(deg)
	if err != nil {
		panic(err)
	}
	return v
}

// FixedToDegrees converts fixed-point units to degrees.
// No range is enforced.
func FixedToDegrees(fixed int64) float64 {
	f := float64(fixedPerQuadrant)
	return 90.0 * float64(fixed) / f
}
