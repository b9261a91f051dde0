package sdat2img

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseRangeSet(t *testing.T) {
	tests := []struct {
		in   string
		want []BlockRange
	}{
		{"2,0,1", []BlockRange{{0, 1}}},
		{"4,0,2,4,6", []BlockRange{{0, 2}, {4, 6}}},
		{"6,10,20,30,40,50,60", []BlockRange{{10, 20}, {30, 40}, {50, 60}}},
		// Out-of-order and adjacent pairs are legal
		{"4,5,6,0,1", []BlockRange{{5, 6}, {0, 1}}},
	}
	for _, test := range tests {
		got, err := ParseRangeSet(test.in)
		if err != nil {
			t.Fatalf("%q: %v", test.in, err)
		}
		if !reflect.DeepEqual(got, test.want) {
			t.Fatalf("%q: expected %v, got %v", test.in, test.want, got)
		}
	}
}

func TestParseRangeSetErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"count mismatch", "3,10,20", RangeCountMismatch{Declared: 3, Actual: 2}},
		{"odd length", "5,10,20,30,40,50", OddRangeCount{Count: 5}},
		{"bad token", "2,a,b", InvalidRangeToken{Token: "a"}},
		{"negative", "2,-1,5", InvalidRangeToken{Token: "-1"}},
		{"empty", "", InvalidRangeToken{Token: ""}},
		{"reversed pair", "2,20,10", InvalidRange{Begin: 20, End: 10}},
		{"empty pair", "2,5,5", InvalidRange{Begin: 5, End: 5}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseRangeSet(test.in)
			if err == nil {
				t.Fatal("expected an error")
			}
			if err != test.want {
				t.Fatalf("expected %v, got %v", test.want, err)
			}
		})
	}
}

func TestBlockRangeArithmetic(t *testing.T) {
	r := BlockRange{Begin: 3, End: 7}
	if r.Blocks() != 4 {
		t.Fatalf("expected 4 blocks, got %d", r.Blocks())
	}
	if r.Bytes() != 4*BlockSize {
		t.Fatalf("expected %d bytes, got %d", 4*BlockSize, r.Bytes())
	}
	if r.OffsetBytes() != 3*BlockSize {
		t.Fatalf("expected offset %d, got %d", 3*BlockSize, r.OffsetBytes())
	}
}

// The typed errors need to stay matchable through a FormatError wrapper
func TestRangeSetErrorsMatchable(t *testing.T) {
	_, err := ParseRangeSet("3,10,20")
	wrapped := FormatError{Version: 4, Line: 5, Err: err}
	var mismatch RangeCountMismatch
	if !errors.As(wrapped, &mismatch) {
		t.Fatal("expected to match RangeCountMismatch through FormatError")
	}
	if mismatch.Declared != 3 || mismatch.Actual != 2 {
		t.Fatalf("unexpected error content: %+v", mismatch)
	}
}
