// Package keyenc canonicalizes ordered key components into a stable byte
// encoding suitable for hashing. Two component sequences encode identically
// if and only if they are structurally equal: same kinds, same values, same
// order. Every component is type-tagged so that, for example, the integer 1
// and the text "1" never collide.
package keyenc

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// Component tags. The tag values and payload layouts below are frozen:
// changing any of them breaks shared-seed reproducibility.
const (
	tagInt    = 0x01 // 8-byte little-endian two's complement
	tagUint   = 0x02 // 8-byte little-endian, values above MaxInt64 only
	tagFloat  = 0x03 // IEEE-754 float64 bits, little-endian
	tagString = 0x04 // uvarint byte length, then raw bytes
)

// ErrUnsupportedComponent indicates a key component of a kind the encoder
// cannot canonicalize. Supported kinds are integers, floats and strings.
var ErrUnsupportedComponent = errors.New("unsupported key component")

// Append appends the canonical encoding of the key components to dst and
// returns the extended slice. An empty component list appends nothing.
//
// Integer components are normalized by value: anything representable as
// int64 takes the signed tag regardless of its Go type, so K(5), int8(5) and
// uint16(5) encode identically. Only uint64 values above MaxInt64 take the
// unsigned tag. float32 components are widened to float64 before encoding.
func Append(dst []byte, components ...any) ([]byte, error) {
	for i, c := range components {
		var err error
		dst, err = appendComponent(dst, c)
		if err != nil {
			return nil, fmt.Errorf("key component %d (%T): %w", i, c, err)
		}
	}
	return dst, nil
}

func appendComponent(dst []byte, c any) ([]byte, error) {
	switch v := c.(type) {
	case int:
		return appendInt(dst, int64(v)), nil
	case int8:
		return appendInt(dst, int64(v)), nil
	case int16:
		return appendInt(dst, int64(v)), nil
	case int32:
		return appendInt(dst, int64(v)), nil
	case int64:
		return appendInt(dst, v), nil
	case uint8:
		return appendInt(dst, int64(v)), nil
	case uint16:
		return appendInt(dst, int64(v)), nil
	case uint32:
		return appendInt(dst, int64(v)), nil
	case uint:
		return appendUint(dst, uint64(v)), nil
	case uint64:
		return appendUint(dst, v), nil
	case uintptr:
		return appendUint(dst, uint64(v)), nil
	case float32:
		return appendFloat(dst, float64(v)), nil
	case float64:
		return appendFloat(dst, v), nil
	case string:
		return appendString(dst, v), nil
	default:
		return nil, ErrUnsupportedComponent
	}
}

func appendInt(dst []byte, v int64) []byte {
	dst = append(dst, tagInt)
	return binary.LittleEndian.AppendUint64(dst, uint64(v))
}

func appendUint(dst []byte, v uint64) []byte {
	if v <= math.MaxInt64 {
		return appendInt(dst, int64(v))
	}
	dst = append(dst, tagUint)
	return binary.LittleEndian.AppendUint64(dst, v)
}

func appendFloat(dst []byte, v float64) []byte {
	dst = append(dst, tagFloat)
	return binary.LittleEndian.AppendUint64(dst, math.Float64bits(v))
}

// appendString length-prefixes the bytes so that adjacent string components
// keep their boundaries: ("ab", "c") and ("a", "bc") must not collide.
func appendString(dst []byte, v string) []byte {
	dst = append(dst, tagString)
	dst = binary.AppendUvarint(dst, uint64(len(v)))
	return append(dst, v...)
}
