package utmconv

import "fmt"

// InvalidInputError reports a coordinate component outside the range the
// converter accepts. NaN values fail the same way as out-of-range ones.
type InvalidInputError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s %v out of range [%v, %v]", e.Field, e.Value, e.Min, e.Max)
}

// SingularityError reports a footprint latitude at a pole, where recovering
// the longitude divides by cos(footprint) = 0 and the result is undefined.
type SingularityError struct {
	FootprintLatitude float64 // radians
}

func (e *SingularityError) Error() string {
	return fmt.Sprintf("footprint latitude %v rad lies on a pole, longitude is undefined", e.FootprintLatitude)
}
