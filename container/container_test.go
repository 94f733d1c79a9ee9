// Package container_test contains tests for the container package.
package container_test

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/qntx/bidimap/container"
)

// containerTest is a minimal implementation of the container.Container interface.
type containerTest[T any] struct {
	values []T
}

func newContainerTest[T any](values ...T) *containerTest[T] {
	return &containerTest[T]{values: values}
}

func (c *containerTest[T]) IsEmpty() bool { return len(c.values) == 0 }

func (c *containerTest[T]) Len() int { return len(c.values) }

func (c *containerTest[T]) Clear() { c.values = nil }

func (c *containerTest[T]) Values() []T { return c.values }

func (c *containerTest[T]) String() string {
	var sb strings.Builder

	sb.WriteString("containerTest{")

	for i, v := range c.values {
		if i > 0 {
			sb.WriteString(", ")
		}

		fmt.Fprintf(&sb, "%v", v)
	}

	sb.WriteString("}")

	return sb.String()
}

func TestContainerMethods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		init      []int
		wantSize  int
		wantEmpty bool
		wantStr   string
	}{
		{name: "empty", init: nil, wantSize: 0, wantEmpty: true, wantStr: "containerTest{}"},
		{name: "single", init: []int{42}, wantSize: 1, wantEmpty: false, wantStr: "containerTest{42}"},
		{name: "multiple", init: []int{1, 2, 3}, wantSize: 3, wantEmpty: false, wantStr: "containerTest{1, 2, 3}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newContainerTest(tt.init...)

			if got := c.IsEmpty(); got != tt.wantEmpty {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.wantEmpty)
			}

			if got := c.Len(); got != tt.wantSize {
				t.Errorf("Len() = %d, want %d", got, tt.wantSize)
			}

			if got := c.String(); got != tt.wantStr {
				t.Errorf("String() = %q, want %q", got, tt.wantStr)
			}

			c.Clear()

			if !c.IsEmpty() || c.Len() != 0 {
				t.Errorf("Clear() failed: IsEmpty() = %v, Len() = %d", c.IsEmpty(), c.Len())
			}
		})
	}
}

func TestGetSortedValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []int
		want  []int
	}{
		{name: "empty", input: nil, want: nil},
		{name: "single", input: []int{5}, want: []int{5}},
		{name: "unsorted", input: []int{5, 1, 3, 2, 4}, want: []int{1, 2, 3, 4, 5}},
		{name: "sorted", input: []int{1, 2, 3}, want: []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newContainerTest(tt.input...)
			got := container.GetSortedValues(c)

			if !slices.Equal(got, tt.want) {
				t.Errorf("GetSortedValues() = %v, want %v", got, tt.want)
			}

			// The original container is unchanged.
			if len(c.Values()) != len(tt.input) {
				t.Errorf("original values modified: got %v, want %v", c.Values(), tt.input)
			}
		})
	}
}

// notInt is a custom type for testing non-ordered values.
type notInt struct {
	i int
}

func TestGetSortedValuesFunc(t *testing.T) {
	t.Parallel()

	c := newContainerTest(notInt{5}, notInt{1}, notInt{3})
	got := container.GetSortedValuesFunc(c, func(a, b notInt) int { return a.i - b.i })

	want := []notInt{{1}, {3}, {5}}
	if !slices.Equal(got, want) {
		t.Errorf("GetSortedValuesFunc() = %v, want %v", got, want)
	}
}
