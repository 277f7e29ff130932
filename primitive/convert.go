package primitive

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"object-mapper/utils"
)

// Convert converts value to the target primitive type, guarding numeric
// range and textual format. The result carries the target type itself, so
// named scalar types come back named.
func Convert(value any, target reflect.Type) (any, error) {
	from := FromReflectType(reflect.TypeOf(value))
	to := FromReflectType(target)
	if from == 0 || to == 0 {
		return nil, fmt.Errorf("no primitive conversion from %T to %s", value, target)
	}

	rv := reflect.ValueOf(value)
	out := reflect.New(target).Elem()

	switch {
	case from == KindTime || to == KindTime:
		return convertTime(rv, from, to, out)
	case from == KindDuration || to == KindDuration:
		return convertDuration(rv, from, to, out)
	case from == KindBool || to == KindBool:
		return convertBool(rv, from, to, out)
	case to == KindString:
		return formatText(rv, from, out)
	case from == KindString:
		return parseText(rv.String(), to, out)
	default:
		return convertNumber(rv, from, out)
	}
}

func convertNumber(rv reflect.Value, from KindEnum, out reflect.Value) (any, error) {
	switch {
	case from.IsSigned():
		return setInt(out, rv.Int())
	case from.IsUnsigned():
		return setUint(out, rv.Uint())
	default:
		return setFloat(out, rv.Float())
	}
}

func setInt(out reflect.Value, v int64) (any, error) {
	switch out.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if out.OverflowInt(v) {
			return nil, overflowError(v, out.Type())
		}
		out.SetInt(v)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if v < 0 || out.OverflowUint(uint64(v)) {
			return nil, overflowError(v, out.Type())
		}
		out.SetUint(uint64(v))

	case reflect.Float32, reflect.Float64:
		out.SetFloat(float64(v))

	default:
		return nil, fmt.Errorf("cannot store a number in %s", out.Type())
	}

	return out.Interface(), nil
}

func setUint(out reflect.Value, v uint64) (any, error) {
	switch out.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v > math.MaxInt64 || out.OverflowInt(int64(v)) {
			return nil, overflowError(v, out.Type())
		}
		out.SetInt(int64(v))

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if out.OverflowUint(v) {
			return nil, overflowError(v, out.Type())
		}
		out.SetUint(v)

	case reflect.Float32, reflect.Float64:
		out.SetFloat(float64(v))

	default:
		return nil, fmt.Errorf("cannot store a number in %s", out.Type())
	}

	return out.Interface(), nil
}

func setFloat(out reflect.Value, f float64) (any, error) {
	switch out.Kind() {
	case reflect.Float32, reflect.Float64:
		if out.OverflowFloat(f) {
			return nil, overflowError(f, out.Type())
		}
		out.SetFloat(f)
		return out.Interface(), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		// float64(MaxInt64) rounds up to 2^63, so the upper bound must be
		// strict or the boundary wraps on conversion.
		if !utils.IsIntegral(f) || f < math.MinInt64 || f >= 1<<63 {
			return nil, overflowError(f, out.Type())
		}
		return setInt(out, int64(f))

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if !utils.IsIntegral(f) || f < 0 || f >= 1<<64 {
			return nil, overflowError(f, out.Type())
		}
		return setUint(out, uint64(f))

	default:
		return nil, fmt.Errorf("cannot store a number in %s", out.Type())
	}
}

func formatText(rv reflect.Value, from KindEnum, out reflect.Value) (any, error) {
	var s string

	switch {
	case from.IsSigned():
		s = strconv.FormatInt(rv.Int(), 10)
	case from.IsUnsigned():
		s = strconv.FormatUint(rv.Uint(), 10)
	case from.IsFloat():
		s = strconv.FormatFloat(rv.Float(), 'g', -1, 64)
	default:
		return nil, fmt.Errorf("no textual form for %s", from)
	}

	out.SetString(s)

	return out.Interface(), nil
}

func parseText(s string, to KindEnum, out reflect.Value) (any, error) {
	trimmed := strings.TrimSpace(s)

	switch {
	case to.IsSigned():
		v, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing %q as %s: %w", s, out.Type(), err)
		}
		return setInt(out, v)

	case to.IsUnsigned():
		v, err := strconv.ParseUint(trimmed, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing %q as %s: %w", s, out.Type(), err)
		}
		return setUint(out, v)

	case to.IsFloat():
		v, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing %q as %s: %w", s, out.Type(), err)
		}
		return setFloat(out, v)
	}

	return nil, fmt.Errorf("no primitive conversion from %s to %s", KindString, to)
}

func convertBool(rv reflect.Value, from, to KindEnum, out reflect.Value) (any, error) {
	switch {
	case from == KindBool && to == KindBool:
		out.SetBool(rv.Bool())

	case from == KindBool && to == KindString:
		out.SetString(strconv.FormatBool(rv.Bool()))

	case from == KindBool && to.IsInteger():
		var v int64
		if rv.Bool() {
			v = 1
		}
		return setInt(out, v)

	case to == KindBool && from == KindString:
		b, err := parseTextualBool(rv.String())
		if err != nil {
			return nil, err
		}
		out.SetBool(b)

	case to == KindBool && from.IsInteger():
		var v int64
		if from.IsUnsigned() {
			u := rv.Uint()
			if u > 1 {
				return nil, fmt.Errorf("value %d is not a boolean 0 or 1", u)
			}
			v = int64(u)
		} else {
			v = rv.Int()
		}

		switch v {
		default:
			return nil, fmt.Errorf("value %d is not a boolean 0 or 1", v)
		case 0:
			out.SetBool(false)
		case 1:
			out.SetBool(true)
		}

	default:
		return nil, fmt.Errorf("no primitive conversion from %s to %s", from, to)
	}

	return out.Interface(), nil
}

func parseTextualBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "on", "true", "1":
		return true, nil
	case "no", "off", "false", "0":
		return false, nil
	}

	return false, fmt.Errorf("value %q is not a recognizable boolean", s)
}

func convertTime(rv reflect.Value, from, to KindEnum, out reflect.Value) (any, error) {
	switch {
	case from == KindTime && to == KindTime:
		out.Set(rv)

	case from == KindString && to == KindTime:
		t, err := time.Parse(time.RFC3339Nano, rv.String())
		if err != nil {
			return nil, fmt.Errorf("parsing %q as time: %w", rv.String(), err)
		}
		out.Set(reflect.ValueOf(t))

	case from == KindTime && to == KindString:
		out.SetString(rv.Interface().(time.Time).Format(time.RFC3339Nano))

	default:
		return nil, fmt.Errorf("no primitive conversion from %s to %s", from, to)
	}

	return out.Interface(), nil
}

func convertDuration(rv reflect.Value, from, to KindEnum, out reflect.Value) (any, error) {
	switch {
	case from == KindDuration && to == KindDuration:
		out.SetInt(rv.Int())

	case from == KindString && to == KindDuration:
		d, err := time.ParseDuration(rv.String())
		if err != nil {
			return nil, fmt.Errorf("parsing %q as duration: %w", rv.String(), err)
		}
		out.SetInt(int64(d))

	case from == KindDuration && to == KindString:
		out.SetString(time.Duration(rv.Int()).String())

	case from == KindDuration && to.IsInteger():
		return setInt(out, rv.Int())

	case from.IsInteger() && to == KindDuration:
		if from.IsUnsigned() {
			u := rv.Uint()
			if !utils.IsInRange(0, u, math.MaxInt64) {
				return nil, overflowError(u, out.Type())
			}
			out.SetInt(int64(u))
		} else {
			out.SetInt(rv.Int())
		}

	default:
		return nil, fmt.Errorf("no primitive conversion from %s to %s", from, to)
	}

	return out.Interface(), nil
}

func overflowError(v any, t reflect.Type) error {
	return fmt.Errorf("value %v overflows %s", v, t)
}
