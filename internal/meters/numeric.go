package meters

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Number is the element type accepted by AggregateMeter.
type Number interface {
	constraints.Integer | constraints.Float
}

// bounds returns the smallest and largest representable values of T.
func bounds[T Number]() (lo, hi T) {
	var zero T
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Int8:
		l, h := int64(math.MinInt8), int64(math.MaxInt8)
		return T(l), T(h)
	case reflect.Int16:
		l, h := int64(math.MinInt16), int64(math.MaxInt16)
		return T(l), T(h)
	case reflect.Int32:
		l, h := int64(math.MinInt32), int64(math.MaxInt32)
		return T(l), T(h)
	case reflect.Int, reflect.Int64:
		l, h := int64(math.MinInt64), int64(math.MaxInt64)
		if strconv.IntSize == 32 && reflect.TypeOf(zero).Kind() == reflect.Int {
			l, h = math.MinInt32, math.MaxInt32
		}
		return T(l), T(h)
	case reflect.Uint8:
		h := uint64(math.MaxUint8)
		return 0, T(h)
	case reflect.Uint16:
		h := uint64(math.MaxUint16)
		return 0, T(h)
	case reflect.Uint32:
		h := uint64(math.MaxUint32)
		return 0, T(h)
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		h := uint64(math.MaxUint64)
		if strconv.IntSize == 32 && reflect.TypeOf(zero).Kind() != reflect.Uint64 {
			h = math.MaxUint32
		}
		return 0, T(h)
	case reflect.Float32:
		h := float32(math.MaxFloat32)
		return T(-h), T(h)
	case reflect.Float64:
		h := math.MaxFloat64
		return T(-h), T(h)
	}
	panic(fmt.Sprintf("meters: unsupported element kind %T", zero))
}

// toFloat32 converts v for mean computation. A finite value outside the
// float32 range is reported as 0.
func toFloat32[T Number](v T) float32 {
	f := float64(v)
	if !math.IsInf(f, 0) && math.Abs(f) > math.MaxFloat32 {
		return 0
	}
	return float32(f)
}

func formatNumber[T Number](v T) string {
	switch n := any(v).(type) {
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}
