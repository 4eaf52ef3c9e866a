package types_test

import (
	"math"
	"testing"

	"github.com/gx-org/tiletype/build/ir/types"
	"github.com/pkg/errors"
)

func TestDimension(t *testing.T) {
	tests := []struct {
		dim     types.Dimension
		str     string
		dynamic bool
		size    int
		fixed   bool
	}{
		{dim: types.Dynamic, str: "?", dynamic: true},
		{dim: types.Fixed(0), str: "0", size: 0, fixed: true},
		{dim: types.Fixed(8), str: "8", size: 8, fixed: true},
		{dim: types.Dimension(-3), str: "-3"},
		{dim: types.Fixed(math.MinInt64), str: "-9223372036854775807"},
	}
	for _, test := range tests {
		if got := test.dim.String(); got != test.str {
			t.Errorf("got %q but want %q", got, test.str)
		}
		if got := test.dim.IsDynamic(); got != test.dynamic {
			t.Errorf("%s.IsDynamic(): got %v but want %v", test.str, got, test.dynamic)
		}
		size, ok := test.dim.Fixed()
		if ok != test.fixed || size != test.size {
			t.Errorf("%s.Fixed(): got %d,%v but want %d,%v", test.str, size, ok, test.size, test.fixed)
		}
	}
}

func TestNegativeSizeIsRejected(t *testing.T) {
	type ctx struct{}
	in, err := types.NewInterner[ctx]()
	if err != nil {
		t.Fatal(err)
	}
	shape := types.Dims(math.MinInt64, 4)
	if !shape.IsStatic() {
		t.Errorf("shape %s: got dynamic but want static", shape)
	}
	if _, err := in.TensorView(in.F32(), shape, types.Dims(4, 1)); !errors.Is(err, types.ErrInvalidStructure) {
		t.Errorf("got error %v but want %v", err, types.ErrInvalidStructure)
	}
}

func TestDimensionOf(t *testing.T) {
	d, err := types.DimensionOf(42)
	if err != nil {
		t.Fatal(err)
	}
	if d != types.Fixed(42) {
		t.Errorf("got %s but want 42", d)
	}
	_, err = types.DimensionOf(math.MaxUint64)
	if !errors.Is(err, types.ErrInvalidStructure) {
		t.Errorf("got error %v but want %v", err, types.ErrInvalidStructure)
	}
}

func TestShape(t *testing.T) {
	tests := []struct {
		shape  types.Shape
		str    string
		rank   int
		static bool
	}{
		{shape: types.Dims(), str: "", rank: 0, static: true},
		{shape: types.Dims(2, 3), str: "2x3", rank: 2, static: true},
		{shape: types.Shape{types.Dynamic, types.Fixed(8)}, str: "?x8", rank: 2},
	}
	for _, test := range tests {
		if got := test.shape.String(); got != test.str {
			t.Errorf("got %q but want %q", got, test.str)
		}
		if got := test.shape.Rank(); got != test.rank {
			t.Errorf("%s: got rank %d but want %d", test.str, got, test.rank)
		}
		if got := test.shape.IsStatic(); got != test.static {
			t.Errorf("%s: got static %v but want %v", test.str, got, test.static)
		}
		if !test.shape.Equal(append(types.Shape{}, test.shape...)) {
			t.Errorf("%s is not equal to its copy", test.str)
		}
	}
	if types.Dims(2, 3).Equal(types.Dims(3, 2)) {
		t.Errorf("axis order is ignored")
	}
}
