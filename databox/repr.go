package databox

import (
	"fmt"
	"strconv"

	"github.com/hupe1980/datakit/numstr"
)

// String returns a debugging representation such as "{SIGNED: -4}".
func (b Box) String() string {
	return string(b.AppendRepr(make([]byte, 0, 32)))
}

// AppendRepr appends the String form of b to dst.
func (b Box) AppendRepr(dst []byte) []byte {
	switch b.typ {
	case Void:
		return append(dst, "{VOID}"...)
	case Error:
		return append(dst, "{ERROR}"...)
	case Signed64:
		return append(numstr.AppendInt64(append(dst, "{SIGNED: "...), b.Int64()), '}')
	case Unsigned64:
		return append(numstr.AppendUint64(append(dst, "{UNSIGNED: "...), b.Uint64()), '}')
	case Signed128:
		return append(numstr.AppendInt128(append(dst, "{SIGNED128: "...), b.Int128()), '}')
	case Unsigned128:
		return append(numstr.AppendUint128(append(dst, "{UNSIGNED128: "...), b.Uint128()), '}')
	case Float32:
		return append(strconv.AppendFloat(append(dst, "{FLOAT: "...), b.Float64(), 'g', -1, 32), '}')
	case Double64:
		return append(strconv.AppendFloat(append(dst, "{DOUBLE: "...), b.Float64(), 'g', -1, 64), '}')
	case True:
		return append(dst, "{TRUE}"...)
	case False:
		return append(dst, "{FALSE}"...)
	case Null:
		return append(dst, "{NULL}"...)
	case Ptr:
		return fmt.Appendf(dst, "{PTR: %p}", b.ptr)
	case ContainerReferenceExternal:
		return append(numstr.AppendUint64(append(dst, "{EXTERNAL REF: "...), b.Uint64()), '}')
	case Bytes:
		return append(append(append(dst, "{BYTES: "...), b.buf[:b.n]...), '}')
	case BytesNeverFree:
		return append(append(append(dst, "{BYTES (NEVER FREE): "...), b.buf[:b.n]...), '}')
	case BytesOffset:
		return append(numstr.AppendUint64(append(dst, "{BYTES OFFSET START AT: "...), b.word), '}')
	case BytesEmbed:
		return append(append(append(dst, "{BYTES EMBED: "...), b.embed[:b.n]...), '}')
	}
	if b.typ.IsContainer() {
		return fmt.Appendf(dst, "{%s: %d bytes}", b.typ, b.n)
	}
	return append(dst, "{INVALID TYPE!}"...)
}
