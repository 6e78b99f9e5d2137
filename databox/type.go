package databox

// Type identifies the variant stored in a Box.
//
// Positions 2 through 7 must stay contiguous: comparison packs two of them
// into a 6-bit dispatch key.
type Type uint8

const (
	// Void is the zero Box.
	Void Type = iota
	// Error is a user-defined error condition.
	Error
	// Signed64 is an int64.
	Signed64
	// Unsigned64 is a uint64.
	Unsigned64
	// Float32 is a float32.
	Float32
	// Double64 is a float64.
	Double64
	// Signed128 is an Int128 held in an out-of-line cell.
	Signed128
	// Unsigned128 is a Uint128 held in an out-of-line cell.
	Unsigned128
	// True is the immediate true.
	True
	// False is the immediate false.
	False
	// Null is the immediate null.
	Null
	// Ptr is an opaque pointer payload.
	Ptr
	// Bytes is a byte string, owned or borrowed.
	Bytes
	// BytesNeverFree is a shared byte string that is never released.
	BytesNeverFree
	// BytesOffset records an offset into a byte stream held elsewhere.
	BytesOffset
	// BytesEmbed holds up to 8 bytes inside the box.
	BytesEmbed
	// ContainerReferenceExternal is a caller-defined unsigned handle.
	ContainerReferenceExternal
	ContainerFlexMap
	ContainerFlexList
	ContainerFlexSet
	ContainerFlexTuple
	ContainerCflexMap
	ContainerCflexList
	ContainerCflexSet
	ContainerCflexTuple

	typeMax
)

var typeNames = [...]string{
	Void:                       "void",
	Error:                      "error",
	Signed64:                   "signed64",
	Unsigned64:                 "unsigned64",
	Float32:                    "float32",
	Double64:                   "double64",
	Signed128:                  "signed128",
	Unsigned128:                "unsigned128",
	True:                       "true",
	False:                      "false",
	Null:                       "null",
	Ptr:                        "ptr",
	Bytes:                      "bytes",
	BytesNeverFree:             "bytes-never-free",
	BytesOffset:                "bytes-offset",
	BytesEmbed:                 "bytes-embed",
	ContainerReferenceExternal: "container-reference-external",
	ContainerFlexMap:           "container-flex-map",
	ContainerFlexList:          "container-flex-list",
	ContainerFlexSet:           "container-flex-set",
	ContainerFlexTuple:         "container-flex-tuple",
	ContainerCflexMap:          "container-cflex-map",
	ContainerCflexList:         "container-cflex-list",
	ContainerCflexSet:          "container-cflex-set",
	ContainerCflexTuple:        "container-cflex-tuple",
}

func (t Type) String() string {
	if t.Valid() {
		return typeNames[t]
	}
	return "invalid"
}

// Valid reports whether t is a known variant.
func (t Type) Valid() bool { return t < typeMax }

// IsInteger reports whether t holds an integer of any width or sign.
// External references count as unsigned integers.
func (t Type) IsInteger() bool {
	switch t {
	case Signed64, Unsigned64, Signed128, Unsigned128, ContainerReferenceExternal:
		return true
	}
	return false
}

// IsSigned reports whether t is a signed integer.
func (t Type) IsSigned() bool { return t == Signed64 || t == Signed128 }

// IsFloat reports whether t is a float32 or float64.
func (t Type) IsFloat() bool { return t == Float32 || t == Double64 }

// IsNumeric reports whether t is an integer or a float.
func (t Type) IsNumeric() bool { return t.IsInteger() || t.IsFloat() }

// IsContainer reports whether t is a flex or cflex aggregate.
func (t Type) IsContainer() bool { return t >= ContainerFlexMap && t <= ContainerCflexTuple }

// IsBytes reports whether t carries a readable byte payload. Offset boxes
// are excluded until resolved against their base.
func (t Type) IsBytes() bool {
	switch t {
	case Bytes, BytesNeverFree, BytesEmbed:
		return true
	}
	return t.IsContainer()
}

// IsImmediate reports whether t carries no payload.
func (t Type) IsImmediate() bool { return t == True || t == False || t == Null || t == Void }
