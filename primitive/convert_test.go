package primitive_test

import (
	"math"
	"reflect"
	"testing"
	"time"

	"object-mapper/primitive"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertNumbers(t *testing.T) {
	type Cents int64

	cases := []struct {
		name   string
		value  any
		target reflect.Type
		want   any
	}{
		{"int to int64", int(42), reflect.TypeOf(int64(0)), int64(42)},
		{"int64 to int8", int64(-100), reflect.TypeOf(int8(0)), int8(-100)},
		{"uint8 to uint32", uint8(200), reflect.TypeOf(uint32(0)), uint32(200)},
		{"int to float64", int(3), reflect.TypeOf(float64(0)), float64(3)},
		{"integral float to int", float64(3), reflect.TypeOf(int(0)), int(3)},
		{"float32 to float64", float32(1.5), reflect.TypeOf(float64(0)), float64(1.5)},
		{"int to named int64", int(5), reflect.TypeOf(Cents(0)), Cents(5)},
		{"float just below signed boundary", math.Nextafter(1<<63, 0), reflect.TypeOf(int64(0)), int64(9223372036854774784)},
		{"float at signed minimum", float64(math.MinInt64), reflect.TypeOf(int64(0)), int64(math.MinInt64)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := primitive.Convert(c.value, c.target)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestConvertNumberGuards(t *testing.T) {
	cases := []struct {
		name   string
		value  any
		target reflect.Type
	}{
		{"int overflow", int64(300), reflect.TypeOf(int8(0))},
		{"negative to unsigned", int(-1), reflect.TypeOf(uint(0))},
		{"huge uint to int64", uint64(math.MaxUint64), reflect.TypeOf(int64(0))},
		{"fractional float to int", float64(3.5), reflect.TypeOf(int(0))},
		{"nan to int", math.NaN(), reflect.TypeOf(int(0))},
		{"float64 overflows float32", float64(math.MaxFloat64), reflect.TypeOf(float32(0))},

		// float64(MaxInt64) and float64(MaxUint64) round up to 2^63 and
		// 2^64; converting them back would wrap, so they must be rejected.
		{"float at signed boundary", float64(math.MaxInt64), reflect.TypeOf(int64(0))},
		{"float at unsigned boundary", float64(math.MaxUint64), reflect.TypeOf(uint64(0))},
		{"float below signed minimum", math.Nextafter(math.MinInt64, math.Inf(-1)), reflect.TypeOf(int64(0))},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := primitive.Convert(c.value, c.target)
			assert.Error(t, err)
		})
	}
}

func TestConvertText(t *testing.T) {
	got, err := primitive.Convert(int(7), reflect.TypeOf(""))
	require.NoError(t, err)
	assert.Equal(t, "7", got)

	got, err = primitive.Convert(float64(2.5), reflect.TypeOf(""))
	require.NoError(t, err)
	assert.Equal(t, "2.5", got)

	got, err = primitive.Convert(" 42 ", reflect.TypeOf(int(0)))
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	got, err = primitive.Convert("2.5", reflect.TypeOf(float32(0)))
	require.NoError(t, err)
	assert.Equal(t, float32(2.5), got)

	_, err = primitive.Convert("forty-two", reflect.TypeOf(int(0)))
	assert.Error(t, err)

	_, err = primitive.Convert("300", reflect.TypeOf(int8(0)))
	assert.Error(t, err)
}

func TestConvertBool(t *testing.T) {
	boolType := reflect.TypeOf(false)

	for _, s := range []string{"yes", "on", "true", "1", " YES "} {
		got, err := primitive.Convert(s, boolType)
		require.NoError(t, err, s)
		assert.Equal(t, true, got, s)
	}

	for _, s := range []string{"no", "off", "false", "0"} {
		got, err := primitive.Convert(s, boolType)
		require.NoError(t, err, s)
		assert.Equal(t, false, got, s)
	}

	_, err := primitive.Convert("maybe", boolType)
	assert.Error(t, err)

	got, err := primitive.Convert(true, reflect.TypeOf(""))
	require.NoError(t, err)
	assert.Equal(t, "true", got)

	got, err = primitive.Convert(true, reflect.TypeOf(int(0)))
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	got, err = primitive.Convert(int(0), boolType)
	require.NoError(t, err)
	assert.Equal(t, false, got)

	// Only the strict 0/1 encoding of a boolean is accepted.
	_, err = primitive.Convert(int(2), boolType)
	assert.Error(t, err)
}

func TestConvertTime(t *testing.T) {
	timeType := reflect.TypeOf(time.Time{})
	moment := time.Date(2024, time.March, 14, 9, 30, 0, 0, time.UTC)

	got, err := primitive.Convert("2024-03-14T09:30:00Z", timeType)
	require.NoError(t, err)
	assert.Equal(t, moment, got)

	got, err = primitive.Convert(moment, reflect.TypeOf(""))
	require.NoError(t, err)
	assert.Equal(t, "2024-03-14T09:30:00Z", got)

	_, err = primitive.Convert("yesterday", timeType)
	assert.Error(t, err)

	_, err = primitive.Convert(moment, reflect.TypeOf(int64(0)))
	assert.Error(t, err)
}

func TestConvertDuration(t *testing.T) {
	durationType := reflect.TypeOf(time.Duration(0))

	got, err := primitive.Convert("2h45m", durationType)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour+45*time.Minute, got)

	got, err = primitive.Convert(90*time.Second, reflect.TypeOf(""))
	require.NoError(t, err)
	assert.Equal(t, "1m30s", got)

	got, err = primitive.Convert(int64(1_500_000_000), durationType)
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, got)

	got, err = primitive.Convert(time.Second, reflect.TypeOf(int64(0)))
	require.NoError(t, err)
	assert.Equal(t, int64(time.Second), got)

	_, err = primitive.Convert("soon", durationType)
	assert.Error(t, err)
}

func TestConvertUnsupported(t *testing.T) {
	_, err := primitive.Convert(struct{}{}, reflect.TypeOf(int(0)))
	assert.Error(t, err)

	_, err = primitive.Convert(int(0), reflect.TypeOf(struct{}{}))
	assert.Error(t, err)
}
