package charts

import "math"

// DefaultTickCount is the tick count of an auto-scaled axis
const DefaultTickCount = 5

const niceEpsilon = 1e-9

// NiceNumbers widens [min, max] to round bounds and returns the adjusted
// range with the number of ticks needed to step through it evenly
func NiceNumbers(min, max float64, ticks int) (float64, float64, int) {
	if ticks < 2 {
		ticks = 2
	}
	if max < min {
		min, max = max, min
	}
	if max == min {
		max = min + 1
	}

	span := niceNumber(max-min, true)
	step := niceNumber(span/float64(ticks-1), false)

	lo := math.Floor(min/step+niceEpsilon) * step
	hi := math.Ceil(max/step-niceEpsilon) * step
	count := int(math.Round((hi-lo)/step)) + 1

	return lo, hi, count
}

// niceNumber rounds x to 1, 2 or 5 times a power of ten. With ceiling set it
// rounds up, otherwise to the nearest.
func niceNumber(x float64, ceiling bool) float64 {
	z := math.Pow(10, math.Floor(math.Log10(x)))
	q := x / z

	if ceiling {
		switch {
		case q <= 1.0:
			q = 1
		case q <= 2.0:
			q = 2
		case q <= 5.0:
			q = 5
		default:
			q = 10
		}
	} else {
		switch {
		case q < 1.5:
			q = 1
		case q < 3.0:
			q = 2
		case q < 7.0:
			q = 5
		default:
			q = 10
		}
	}
	return q * z
}

// niceAxis returns an auto-scaled axis covering values
func niceAxis(values ...float64) ValueAxis {
	if len(values) == 0 {
		lo, hi, n := NiceNumbers(0, 1, DefaultTickCount)
		return ValueAxis{Min: lo, Max: hi, TickCount: n}
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	lo, hi, n := NiceNumbers(lo, hi, DefaultTickCount)
	return ValueAxis{Min: lo, Max: hi, TickCount: n}
}
