package irkind_test

import (
	"testing"

	"github.com/gx-org/tiletype/build/ir/irkind"
)

func TestKind(t *testing.T) {
	tests := []struct {
		kind   irkind.Kind
		str    string
		scalar bool
		view   bool
	}{
		{kind: irkind.Invalid, str: "invalid"},
		{kind: irkind.Integer, str: "integer", scalar: true},
		{kind: irkind.Float, str: "float", scalar: true},
		{kind: irkind.AltFloat, str: "altfloat", scalar: true},
		{kind: irkind.Pointer, str: "pointer"},
		{kind: irkind.Tile, str: "tile"},
		{kind: irkind.TensorView, str: "tensor_view", view: true},
		{kind: irkind.PartitionView, str: "partition_view", view: true},
		{kind: irkind.Max, str: "invalid"},
	}
	for _, test := range tests {
		if got := test.kind.String(); got != test.str {
			t.Errorf("kind %d: got %q but want %q", test.kind, got, test.str)
		}
		if got := test.kind.IsScalar(); got != test.scalar {
			t.Errorf("%s.IsScalar(): got %v but want %v", test.str, got, test.scalar)
		}
		if got := test.kind.IsView(); got != test.view {
			t.Errorf("%s.IsView(): got %v but want %v", test.str, got, test.view)
		}
	}
}
