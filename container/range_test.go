// Package container_test contains tests for the container package.
package container_test

import (
	"testing"

	"github.com/qntx/bidimap/cmp"
	"github.com/qntx/bidimap/container"
)

func TestRangeContains(t *testing.T) {
	t.Parallel()

	c := cmp.Compare[int]

	tests := []struct {
		name string
		r    container.Range[int]
		v    int
		want bool
	}{
		{name: "full any", r: container.FullRange[int](), v: 42, want: true},
		{name: "closed inside", r: container.NewRange(2, true, 4, true), v: 3, want: true},
		{name: "closed at lower", r: container.NewRange(2, true, 4, true), v: 2, want: true},
		{name: "closed at upper", r: container.NewRange(2, true, 4, true), v: 4, want: true},
		{name: "half-open at upper", r: container.NewRange(2, true, 4, false), v: 4, want: false},
		{name: "open at lower", r: container.NewRange(2, false, 4, true), v: 2, want: false},
		{name: "below", r: container.NewRange(2, true, 4, true), v: 1, want: false},
		{name: "above", r: container.NewRange(2, true, 4, true), v: 5, want: false},
		{name: "tail inclusive", r: container.TailRange(3, true), v: 3, want: true},
		{name: "tail exclusive", r: container.TailRange(3, false), v: 3, want: false},
		{name: "head inclusive", r: container.HeadRange(3, true), v: 3, want: true},
		{name: "head exclusive", r: container.HeadRange(3, false), v: 3, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.r.Contains(c, tt.v); got != tt.want {
				t.Errorf("%v.Contains(%d) = %v, want %v", tt.r, tt.v, got, tt.want)
			}
		})
	}
}

func TestRangeIntersect(t *testing.T) {
	t.Parallel()

	c := cmp.Compare[int]

	tests := []struct {
		name    string
		a       container.Range[int]
		b       container.Range[int]
		in      []int
		out     []int
	}{
		{
			name: "full with bounded",
			a:    container.FullRange[int](),
			b:    container.NewRange(2, true, 4, false),
			in:   []int{2, 3},
			out:  []int{1, 4},
		},
		{
			name: "tighter lower wins",
			a:    container.NewRange(1, true, 10, true),
			b:    container.TailRange(5, true),
			in:   []int{5, 10},
			out:  []int{4, 11},
		},
		{
			name: "equal bound exclusivity wins",
			a:    container.NewRange(2, true, 4, true),
			b:    container.NewRange(2, false, 4, false),
			in:   []int{3},
			out:  []int{2, 4},
		},
		{
			name: "disjoint is empty",
			a:    container.HeadRange(2, false),
			b:    container.TailRange(5, true),
			in:   nil,
			out:  []int{1, 3, 5, 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.a.Intersect(c, tt.b)

			for _, v := range tt.in {
				if !got.Contains(c, v) {
					t.Errorf("%v.Contains(%d) = false, want true", got, v)
				}
			}

			for _, v := range tt.out {
				if got.Contains(c, v) {
					t.Errorf("%v.Contains(%d) = true, want false", got, v)
				}
			}
		})
	}
}

func TestRangeReversed(t *testing.T) {
	t.Parallel()

	fwd := cmp.Compare[int]
	rev := cmp.Reverse(fwd)

	r := container.NewRange(2, true, 4, false)
	rr := r.Reversed()

	// Membership is preserved under the reversed comparator.
	for v := 0; v < 6; v++ {
		if got, want := rr.Contains(rev, v), r.Contains(fwd, v); got != want {
			t.Errorf("Reversed().Contains(%d) = %v, want %v", v, got, want)
		}
	}

	// Double reversal restores the original.
	back := rr.Reversed()
	for v := 0; v < 6; v++ {
		if got, want := back.Contains(fwd, v), r.Contains(fwd, v); got != want {
			t.Errorf("Reversed().Reversed().Contains(%d) = %v, want %v", v, got, want)
		}
	}
}

func TestRangeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		r    container.Range[int]
		want string
	}{
		{name: "full", r: container.FullRange[int](), want: "(-∞, +∞)"},
		{name: "closed", r: container.NewRange(2, true, 4, true), want: "[2, 4]"},
		{name: "half-open", r: container.NewRange(2, true, 4, false), want: "[2, 4)"},
		{name: "tail", r: container.TailRange(3, false), want: "(3, +∞)"},
		{name: "head", r: container.HeadRange(3, true), want: "(-∞, 3]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.r.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
