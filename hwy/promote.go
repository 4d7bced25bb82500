package hwy

// This file provides pure Go implementations of lane widening (promotion)
// and saturating narrowing (demotion) operations.

// PromoteLowerU8ToU16 zero-extends the lower half of uint8 lanes to uint16.
func PromoteLowerU8ToU16(v Vec[uint8]) Vec[uint16] {
	n := len(v.data) / 2
	result := make([]uint16, n)
	for i := range n {
		result[i] = uint16(v.data[i])
	}
	return Vec[uint16]{data: result}
}

// PromoteUpperU8ToU16 zero-extends the upper half of uint8 lanes to uint16.
func PromoteUpperU8ToU16(v Vec[uint8]) Vec[uint16] {
	half := len(v.data) / 2
	n := len(v.data) - half
	result := make([]uint16, n)
	for i := range n {
		result[i] = uint16(v.data[half+i])
	}
	return Vec[uint16]{data: result}
}

// PromoteLowerU16ToU32 zero-extends the lower half of uint16 lanes to uint32.
func PromoteLowerU16ToU32(v Vec[uint16]) Vec[uint32] {
	n := len(v.data) / 2
	result := make([]uint32, n)
	for i := range n {
		result[i] = uint32(v.data[i])
	}
	return Vec[uint32]{data: result}
}

// PromoteUpperU16ToU32 zero-extends the upper half of uint16 lanes to uint32.
func PromoteUpperU16ToU32(v Vec[uint16]) Vec[uint32] {
	half := len(v.data) / 2
	n := len(v.data) - half
	result := make([]uint32, n)
	for i := range n {
		result[i] = uint32(v.data[half+i])
	}
	return Vec[uint32]{data: result}
}

// DemoteTwoI32ToU16 narrows two int32 vectors into one uint16 vector with
// unsigned saturation: negative lanes become 0 and lanes above 65535 become
// 65535. Lanes of lo fill the lower half of the result.
func DemoteTwoI32ToU16(lo, hi Vec[int32]) Vec[uint16] {
	result := make([]uint16, len(lo.data)+len(hi.data))
	for i, x := range lo.data {
		result[i] = saturateI32ToU16(x)
	}
	for i, x := range hi.data {
		result[len(lo.data)+i] = saturateI32ToU16(x)
	}
	return Vec[uint16]{data: result}
}

func saturateI32ToU16(x int32) uint16 {
	switch {
	case x < 0:
		return 0
	case x > 65535:
		return 65535
	default:
		return uint16(x)
	}
}

// DemoteTwoU16ToU8 demotes two uint16 vectors to a single uint8 vector (saturating).
// Values > 255 are clamped to 255. Lanes of lo fill the lower half of the result.
func DemoteTwoU16ToU8(lo, hi Vec[uint16]) Vec[uint8] {
	result := make([]uint8, len(lo.data)+len(hi.data))
	for i, x := range lo.data {
		result[i] = uint8(min(x, 255))
	}
	for i, x := range hi.data {
		result[len(lo.data)+i] = uint8(min(x, 255))
	}
	return Vec[uint8]{data: result}
}
