package hwy

import (
	"reflect"
	"testing"
)

func TestTagLanes(t *testing.T) {
	if got := (FixedTag128[float32]{}).MaxLanes(); got != 4 {
		t.Errorf("FixedTag128[float32].MaxLanes() = %d, want 4", got)
	}
	if got := (FixedTag128[uint16]{}).MaxLanes(); got != 8 {
		t.Errorf("FixedTag128[uint16].MaxLanes() = %d, want 8", got)
	}
	if got := (FixedTag128[uint8]{}).MaxLanes(); got != 16 {
		t.Errorf("FixedTag128[uint8].MaxLanes() = %d, want 16", got)
	}
	if got, want := (ScalableTag[uint8]{}).MaxLanes(), CurrentWidth(); got != want {
		t.Errorf("ScalableTag[uint8].MaxLanes() = %d, want %d", got, want)
	}
}

func TestLoadStore(t *testing.T) {
	d := FixedTag128[float32]{}
	src := []float32{1, 2, 3, 4, 5, 6}
	v := Load(d, src)
	if v.NumLanes() != 4 {
		t.Fatalf("NumLanes() = %d, want 4", v.NumLanes())
	}

	dst := make([]float32, 6)
	Store(v, dst)
	if want := []float32{1, 2, 3, 4, 0, 0}; !reflect.DeepEqual(dst, want) {
		t.Errorf("Store() wrote %v, want %v", dst, want)
	}

	// A short destination receives only the lower lanes.
	short := make([]float32, 2)
	v.Store(short)
	if want := []float32{1, 2}; !reflect.DeepEqual(short, want) {
		t.Errorf("Store(short) wrote %v, want %v", short, want)
	}
}

func TestLoadN(t *testing.T) {
	d := FixedTag128[uint8]{}
	v := LoadN(d, []uint8{9, 8, 7, 6, 5}, 3)
	want := []uint8{9, 8, 7, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	if !reflect.DeepEqual(v.data, want) {
		t.Errorf("LoadN() = %v, want %v", v.data, want)
	}
}

func TestSetZero(t *testing.T) {
	d := FixedTag128[uint16]{}
	if got := Set(d, uint16(7)).data; !reflect.DeepEqual(got, []uint16{7, 7, 7, 7, 7, 7, 7, 7}) {
		t.Errorf("Set() = %v", got)
	}
	if got := Zero[uint16](d).data; !reflect.DeepEqual(got, make([]uint16, 8)) {
		t.Errorf("Zero() = %v", got)
	}
}

func TestArithmetic(t *testing.T) {
	a := Vec[float32]{data: []float32{1, 2, 3, 4}}
	b := Vec[float32]{data: []float32{10, 20, 30, 40}}

	tests := []struct {
		name   string
		result Vec[float32]
		expect []float32
	}{
		{"Add", Add(a, b), []float32{11, 22, 33, 44}},
		{"Sub", Sub(b, a), []float32{9, 18, 27, 36}},
		{"Mul", Mul(a, b), []float32{10, 40, 90, 160}},
		{"Min", Min(a, b), []float32{1, 2, 3, 4}},
		{"Max", Max(a, b), []float32{10, 20, 30, 40}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.result.data, tt.expect) {
				t.Errorf("%s() = %v, want %v", tt.name, tt.result.data, tt.expect)
			}
		})
	}
}

func TestMulWrapsUint16(t *testing.T) {
	a := Vec[uint16]{data: []uint16{255, 300, 1000}}
	b := Vec[uint16]{data: []uint16{183, 256, 100}}
	got := Mul(a, b).data
	// 300*256 = 76800 keeps its low 16 bits: 76800 - 65536 = 11264.
	want := []uint16{46665, 11264, 100000 - 65536}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Mul() = %v, want %v", got, want)
	}
}

func TestShifts(t *testing.T) {
	v := Vec[uint16]{data: []uint16{65280, 256, 255, 0}}
	if got, want := ShiftRight(v, 8).data, []uint16{255, 1, 0, 0}; !reflect.DeepEqual(got, want) {
		t.Errorf("ShiftRight() = %v, want %v", got, want)
	}
	if got, want := ShiftLeft(v, 4).data, []uint16{61440, 4096, 4080, 0}; !reflect.DeepEqual(got, want) {
		t.Errorf("ShiftLeft() = %v, want %v", got, want)
	}

	s := Vec[int32]{data: []int32{-8, 8}}
	if got, want := ShiftRight(s, 2).data, []int32{-2, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("ShiftRight(int32) = %v, want %v", got, want)
	}
}

func TestReductions(t *testing.T) {
	v := Vec[uint8]{data: []uint8{3, 250, 7, 0}}
	if got := ReduceMax(v); got != 250 {
		t.Errorf("ReduceMax() = %d, want 250", got)
	}
	if got := ReduceMax(Vec[uint8]{}); got != 0 {
		t.Errorf("ReduceMax(empty) = %d, want 0", got)
	}
	f := Vec[float32]{data: []float32{-3, -1, -2}}
	if got := ReduceMax(f); got != -1 {
		t.Errorf("ReduceMax(float32) = %v, want -1", got)
	}
	if got := ReduceSum(Vec[int32]{data: []int32{1, 2, 3, 4}}); got != 10 {
		t.Errorf("ReduceSum() = %d, want 10", got)
	}
}

func TestInputsUnchanged(t *testing.T) {
	a := Vec[int32]{data: []int32{1, 2, 3, 4}}
	b := Vec[int32]{data: []int32{4, 3, 2, 1}}
	_ = Add(a, b)
	_ = Max(a, b)
	_ = InterleaveLower(a, b)
	if !reflect.DeepEqual(a.data, []int32{1, 2, 3, 4}) || !reflect.DeepEqual(b.data, []int32{4, 3, 2, 1}) {
		t.Errorf("inputs modified: a=%v b=%v", a.data, b.data)
	}
}
