package linear

// Tag is the leading byte of an encoded value. Tag values are part of the
// on-disk format: new tags may only be appended.
type Tag uint8

const (
	Invalid Tag = iota
	TagBytes

	Neg8
	Uint8
	Neg16
	Uint16
	Neg24
	Uint24
	Neg32
	Uint32
	Neg40
	Uint40
	Neg48
	Uint48
	Neg56
	Uint56
	Neg64
	Uint64

	Real16
	Real32
	Real64

	TagTrue
	TagFalse
	TagNull

	tagMax
)

// integerStep is the distance between tags of the same sign.
const integerStep = Uint16 - Uint8

// uintTag returns the unsigned tag for a payload of width bytes.
func uintTag(width int) Tag { return Uint8 + Tag(width-1)*integerStep }

// IsInteger reports whether t carries an integer payload.
func (t Tag) IsInteger() bool { return t >= Neg8 && t <= Uint64 }

// IsNegative reports whether t is one of the negative integer tags.
func (t Tag) IsNegative() bool { return t.IsInteger() && (t-Neg8)%integerStep == 0 }

// Valid reports whether t is a known tag other than Invalid.
func (t Tag) Valid() bool { return t > Invalid && t < tagMax }

// Width returns the fixed payload width of t: 1..8 for integers, 2, 4 or
// 8 for reals and 0 for immediates. It returns -1 for Invalid, TagBytes and
// unknown tags.
func Width(t Tag) int {
	switch {
	case t.IsInteger():
		return int((t-Neg8)/integerStep) + 1
	case t == Real16:
		return 2
	case t == Real32:
		return 4
	case t == Real64:
		return 8
	case t == TagTrue, t == TagFalse, t == TagNull:
		return 0
	}
	return -1
}

var tagNames = [...]string{
	Invalid:  "invalid",
	TagBytes: "bytes",
	Neg8:     "neg8",
	Uint8:    "uint8",
	Neg16:    "neg16",
	Uint16:   "uint16",
	Neg24:    "neg24",
	Uint24:   "uint24",
	Neg32:    "neg32",
	Uint32:   "uint32",
	Neg40:    "neg40",
	Uint40:   "uint40",
	Neg48:    "neg48",
	Uint48:   "uint48",
	Neg56:    "neg56",
	Uint56:   "uint56",
	Neg64:    "neg64",
	Uint64:   "uint64",
	Real16:   "real16",
	Real32:   "real32",
	Real64:   "real64",
	TagTrue:  "true",
	TagFalse: "false",
	TagNull:  "null",
}

func (t Tag) String() string {
	if t < tagMax {
		return tagNames[t]
	}
	return "unknown"
}
