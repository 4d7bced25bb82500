package hwy

// This file provides pure Go implementations of numeric conversions and
// bit-level reinterpretation between lane types.

// ConvertToInt32 converts float32 lanes to int32, truncating toward zero.
// For values outside the int32 range, the result is undefined.
func ConvertToInt32[T ~float32](v Vec[T]) Vec[int32] {
	result := make([]int32, len(v.data))
	for i, x := range v.data {
		result[i] = int32(x)
	}
	return Vec[int32]{data: result}
}

// ConvertToFloat32 converts 32-bit integer lanes to float32.
func ConvertToFloat32[T ~int32 | ~uint32](v Vec[T]) Vec[float32] {
	result := make([]float32, len(v.data))
	for i, x := range v.data {
		result[i] = float32(x)
	}
	return Vec[float32]{data: result}
}

// BitCastU8ToU16 reinterprets pairs of uint8 lanes as little-endian uint16
// lanes. The register contents are unchanged; only the lane view differs.
// [b0,b1,b2,b3] -> [b0|b1<<8, b2|b3<<8]
func BitCastU8ToU16(v Vec[uint8]) Vec[uint16] {
	n := len(v.data) / 2
	result := make([]uint16, n)
	for i := range n {
		result[i] = uint16(v.data[2*i]) | uint16(v.data[2*i+1])<<8
	}
	return Vec[uint16]{data: result}
}

// BitCastU16ToU8 reinterprets uint16 lanes as pairs of uint8 lanes in
// little-endian order. It is the inverse of BitCastU8ToU16.
func BitCastU16ToU8(v Vec[uint16]) Vec[uint8] {
	result := make([]uint8, 2*len(v.data))
	for i, x := range v.data {
		result[2*i] = uint8(x)
		result[2*i+1] = uint8(x >> 8)
	}
	return Vec[uint8]{data: result}
}
