package util

import (
	"math"
	"reflect"
	"testing"

	"github.com/lib/pq"
)

func TestNormalizeIDs_NonArrayInputs_ReturnEmpty(t *testing.T) {
	inputs := []interface{}{
		nil,
		"3,5",
		42,
		3.14,
		true,
		map[string]interface{}{"id": 1},
	}

	for _, in := range inputs {
		got := NormalizeIDs(in)
		if got == nil {
			t.Fatalf("input %#v: expected empty slice, got nil", in)
		}
		if len(got) != 0 {
			t.Fatalf("input %#v: expected empty, got %#v", in, got)
		}
	}
}

func TestNormalizeIDs_MixedJSONArray_KeepsFiniteNumbersInOrder(t *testing.T) {
	in := []interface{}{float64(3), "5", nil, math.NaN(), "x", float64(7)}
	got := NormalizeIDs(in)
	want := []int64{3, 5, 7}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestNormalizeIDs_DropsInfinities(t *testing.T) {
	in := []interface{}{math.Inf(1), math.Inf(-1), float64(12)}
	got := NormalizeIDs(in)
	want := []int64{12}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestNormalizeIDs_KeepsDuplicatesAndOrder(t *testing.T) {
	in := []interface{}{float64(9), float64(2), float64(9)}
	got := NormalizeIDs(in)
	want := []int64{9, 2, 9}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestNormalizeIDs_TypedSlices(t *testing.T) {
	if got := NormalizeIDs([]int64{1, 2}); !reflect.DeepEqual(got, []int64{1, 2}) {
		t.Fatalf("[]int64: got %#v", got)
	}
	if got := NormalizeIDs(pq.Int64Array{4, 7}); !reflect.DeepEqual(got, []int64{4, 7}) {
		t.Fatalf("pq.Int64Array: got %#v", got)
	}
	if got := NormalizeIDs([]int{8}); !reflect.DeepEqual(got, []int64{8}) {
		t.Fatalf("[]int: got %#v", got)
	}
	if got := NormalizeIDs([]string{"6", "junk", "1"}); !reflect.DeepEqual(got, []int64{6, 1}) {
		t.Fatalf("[]string: got %#v", got)
	}
	if got := NormalizeIDs([]float64{2.0, math.NaN()}); !reflect.DeepEqual(got, []int64{2}) {
		t.Fatalf("[]float64: got %#v", got)
	}
}

func TestParseCommaSeparatedIDs_EmptyValues_ReturnsNil(t *testing.T) {
	if got := ParseCommaSeparatedIDs(nil); got != nil {
		t.Fatalf("expected nil, got %#v", got)
	}
	if got := ParseCommaSeparatedIDs([]string{""}); got != nil {
		t.Fatalf("expected nil, got %#v", got)
	}
}

func TestParseCommaSeparatedIDs_IgnoresAdditionalElements(t *testing.T) {
	got := ParseCommaSeparatedIDs([]string{"1,2", "3"})
	want := []int64{1, 2}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestParseCommaSeparatedIDs_SplitsTrimsAndDropsJunk(t *testing.T) {
	got := ParseCommaSeparatedIDs([]string{" 1 , abc,  3 ,,"})
	want := []int64{1, 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestParseCommaSeparatedIDs_AllSpacesAfterSplit_ReturnsEmptySlice(t *testing.T) {
	got := ParseCommaSeparatedIDs([]string{" , ,  ,"})
	if got == nil {
		t.Fatalf("expected empty slice (not nil), got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected empty slice, got %#v", got)
	}
}
