package primitive

type CategoryEnum int

type ConversionPair struct {
	From, To KindEnum
}

const (
	CategorySafeNumber   CategoryEnum = 1 << iota // int, uint, float without precision loss
	CategoryUnsafeNumber                          // int, uint, float with runtime range guards
	CategoryTextNumber                            // int, uint, float <-> string: textual number representation
	CategoryNumericBool                           // int <-> bool: 0, 1 representation of boolean values
	CategoryTextualBool                           // string <-> bool: yes, no, on, off, true, false representation of boolean values
	CategoryDatetime                              // string(RFC3339Nano) <-> time.Time: textual date and time representation
	CategoryDuration                              // string(2h45m) <-> time.Duration: textual duration representation
	CategoryNanoseconds                           // int(nanoseconds) <-> time.Duration: numerical (integer) duration representation

	CategoryAll  = (1 << iota) - 1 //all categories combined
	CategoryNone = 0               // no categories selected
)

// CategoryDefault is the conversion surface enabled by the stock
// primitive converter: every numeric, textual-number and time form, with
// boolean coercion left opt-in.
const CategoryDefault = CategorySafeNumber | CategoryUnsafeNumber | CategoryTextNumber |
	CategoryDatetime | CategoryDuration | CategoryNanoseconds

var conversionPairs map[CategoryEnum]map[ConversionPair]struct{}

func init() {
	conversionPairs = make(map[CategoryEnum]map[ConversionPair]struct{})

	conversionPairs[CategorySafeNumber] = safeNumberConversionPairs()

	// CategoryUnsafeNumber: every remaining number-to-number pair
	conversionPairs[CategoryUnsafeNumber] = map[ConversionPair]struct{}{}
	for fromKind := KindEnum(0); int(fromKind) < KindTotal; fromKind++ {
		if !fromKind.IsNumber() {
			continue
		}

		for toKind := KindEnum(0); int(toKind) < KindTotal; toKind++ {
			if !toKind.IsNumber() {
				continue
			}

			pair := ConversionPair{fromKind, toKind}
			if _, ok := conversionPairs[CategorySafeNumber][pair]; ok {
				continue
			}

			conversionPairs[CategoryUnsafeNumber][pair] = struct{}{}
		}
	}

	// CategoryTextNumber: text <-> number conversions
	conversionPairs[CategoryTextNumber] = map[ConversionPair]struct{}{}
	for numberKind := KindEnum(0); int(numberKind) < KindTotal; numberKind++ {
		if !numberKind.IsNumber() {
			continue
		}

		conversionPairs[CategoryTextNumber][ConversionPair{numberKind, KindString}] = struct{}{}
		conversionPairs[CategoryTextNumber][ConversionPair{KindString, numberKind}] = struct{}{}
	}

	// CategoryNumericBool: int <-> bool conversions
	conversionPairs[CategoryNumericBool] = map[ConversionPair]struct{}{}
	for fromKind := KindEnum(0); int(fromKind) < KindTotal; fromKind++ {
		if !fromKind.IsInteger() {
			continue
		}

		conversionPairs[CategoryNumericBool][ConversionPair{fromKind, KindBool}] = struct{}{}
		conversionPairs[CategoryNumericBool][ConversionPair{KindBool, fromKind}] = struct{}{}
	}

	// string <-> bool: yes, no, on, off, true, false
	conversionPairs[CategoryTextualBool] = map[ConversionPair]struct{}{
		{KindString, KindBool}: {},
		{KindBool, KindString}: {},
	}

	// CategoryDatetime: string(RFC3339Nano) <-> time.Time conversions
	conversionPairs[CategoryDatetime] = map[ConversionPair]struct{}{
		{KindString, KindTime}: {},
		{KindTime, KindString}: {},
	}

	// CategoryDuration: string(2h45m) <-> time.Duration conversions
	conversionPairs[CategoryDuration] = map[ConversionPair]struct{}{
		{KindString, KindDuration}: {},
		{KindDuration, KindString}: {},
	}

	// CategoryNanoseconds: int(nanoseconds) <-> time.Duration conversions
	conversionPairs[CategoryNanoseconds] = map[ConversionPair]struct{}{}
	for numberKind := KindEnum(0); int(numberKind) < KindTotal; numberKind++ {
		if !numberKind.IsInteger() || numberKind == KindUint64 {
			continue
		}

		conversionPairs[CategoryNanoseconds][ConversionPair{numberKind, KindDuration}] = struct{}{}
		conversionPairs[CategoryNanoseconds][ConversionPair{KindDuration, numberKind}] = struct{}{}
	}
}

// safeNumberConversionPairs enumerates number pairs that never lose
// precision: identity, integer widening within the same signedness,
// unsigned into strictly wider signed, and integers that fit a float
// mantissa.
func safeNumberConversionPairs() map[ConversionPair]struct{} {
	pairs := map[ConversionPair]struct{}{}

	for from := KindEnum(0); int(from) < KindTotal; from++ {
		if !from.IsNumber() {
			continue
		}

		for to := KindEnum(0); int(to) < KindTotal; to++ {
			if !to.IsNumber() {
				continue
			}

			if isSafeNumberPair(from, to) {
				pairs[ConversionPair{from, to}] = struct{}{}
			}
		}
	}

	return pairs
}

func isSafeNumberPair(from, to KindEnum) bool {
	switch {
	case from == to:
		return true

	case from.IsSigned() && to.IsSigned():
		return from.Bits() <= to.Bits()

	case from.IsUnsigned() && to.IsUnsigned():
		return from.Bits() <= to.Bits()

	case from.IsUnsigned() && to.IsSigned():
		return from.Bits() < to.Bits()

	case from.IsInteger() && to.IsFloat():
		// Mantissa widths: 24 bits for float32, 53 for float64.
		if to == KindFloat32 {
			return from.Bits() <= 16
		}
		return from.Bits() <= 32

	case from == KindFloat32 && to == KindFloat64:
		return true
	}

	return false
}

// CanConvert reports whether the (from, to) pair is enabled by any of the
// selected categories. The zero kind never converts.
func CanConvert(from, to KindEnum, categories CategoryEnum) bool {
	if from == 0 || to == 0 {
		return false
	}

	pair := ConversionPair{From: from, To: to}

	for cat := CategoryEnum(1); cat <= CategoryAll; cat <<= 1 {
		if categories&cat == 0 {
			continue
		}

		if _, ok := conversionPairs[cat][pair]; ok {
			return true
		}
	}

	return false
}
