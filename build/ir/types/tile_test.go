package types_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gx-org/backend/dtype"
	"github.com/gx-org/tiletype/build/ir/types"
	th "github.com/gx-org/tiletype/build/ir/types/typeshelper"
)

func TestTileNumElements(t *testing.T) {
	type ctx struct{}
	in := th.Must(types.NewInterner[ctx]())
	tests := []struct {
		dims []int
		want int
		err  string
	}{
		{dims: []int{}, want: 1},
		{dims: []int{4, 4}, want: 16},
		{dims: []int{2, 3, 5}, want: 30},
		{dims: []int{1 << 40, 1 << 40}, err: "overflows"},
	}
	for _, test := range tests {
		tile := th.Must(types.NewTile(in.I32(), test.dims...))
		got, err := tile.NumElements()
		if test.err != "" {
			if err == nil || !strings.Contains(err.Error(), test.err) {
				t.Errorf("%s: got error %v but want an error containing %q", tile, err, test.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tile, err)
			continue
		}
		if got != test.want {
			t.Errorf("%s: got %d elements but want %d", tile, got, test.want)
		}
	}
}

func TestTileBackendShape(t *testing.T) {
	type ctx struct{}
	in := th.Must(types.NewInterner[ctx]())
	tests := []struct {
		elem  types.Type[ctx]
		dims  []int
		dtype dtype.DataType
		err   string
	}{
		{elem: in.F32(), dims: []int{4, 8}, dtype: dtype.Float32},
		{elem: in.BF16(), dims: []int{16}, dtype: dtype.Bfloat16},
		{elem: in.I1(), dims: []int{2, 2}, dtype: dtype.Bool},
		{elem: in.E5M2(), dims: []int{2}, err: "no backend data type"},
		{elem: th.Pointer(in, in.F32()), dims: []int{2}, err: "is not a scalar"},
	}
	for _, test := range tests {
		tile := th.Must(types.NewTile(test.elem, test.dims...))
		got, err := tile.BackendShape()
		if test.err != "" {
			if err == nil || !strings.Contains(err.Error(), test.err) {
				t.Errorf("%s: got error %v but want an error containing %q", tile, err, test.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tile, err)
			continue
		}
		if got.DType != test.dtype {
			t.Errorf("%s: got data type %v but want %v", tile, got.DType, test.dtype)
		}
		if diff := cmp.Diff(got.AxisLengths, test.dims); diff != "" {
			t.Errorf("%s: unexpected axis lengths (-got +want):\n%s", tile, diff)
		}
	}
}

func TestTensorViewIsContiguous(t *testing.T) {
	type ctx struct{}
	in := th.Must(types.NewInterner[ctx]())
	tests := []struct {
		shape   types.Shape
		strides types.Shape
		want    bool
	}{
		{shape: types.Dims(), strides: types.Dims(), want: true},
		{shape: types.Dims(16, 8), strides: types.Dims(8, 1), want: true},
		{shape: types.Shape{types.Dynamic, types.Fixed(8)}, strides: types.Dims(8, 1), want: true},
		{shape: types.Dims(16, 8), strides: types.Dims(1, 16)},
		{shape: types.Dims(4), strides: types.Dims(2)},
		{shape: types.Shape{types.Fixed(8), types.Dynamic}, strides: types.Shape{types.Dynamic, types.Fixed(1)}},
		{shape: types.Dims(4, 4), strides: types.Dims(0, 0)},
		{shape: types.Dims(3, 1<<32, 1<<32), strides: types.Dims(0, 1<<32, 1)},
	}
	for _, test := range tests {
		view := th.Must(types.NewTensorView(in.F32(), test.shape, test.strides))
		if got := view.IsContiguous(); got != test.want {
			t.Errorf("%s: got contiguous %v but want %v", view, got, test.want)
		}
	}
}
