package graph

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewDigraph(t *testing.T) {
	testCases := []struct {
		desc  string
		ids   []int64
		edges []Edge
		want  *Digraph
	}{
		{
			desc: "empty digraph",
			want: &Digraph{
				IDs:   []int64{},
				Nexts: [][]int{},
				Edges: []Edge{},
			},
		},
		{
			// 10-->20
			desc:  "one edge",
			ids:   []int64{10, 20},
			edges: []Edge{{0, 1, 2.5}},
			want: &Digraph{
				IDs:   []int64{10, 20},
				Nexts: [][]int{{0}, nil},
				Edges: []Edge{{0, 1, 2.5}},
			},
		},
		{
			// 1-->2   3-->4
			desc:  "not connected",
			ids:   []int64{1, 2, 3, 4},
			edges: []Edge{{0, 1, 1}, {2, 3, 1}},
			want: &Digraph{
				IDs:   []int64{1, 2, 3, 4},
				Nexts: [][]int{{0}, nil, {1}, nil},
				Edges: []Edge{{0, 1, 1}, {2, 3, 1}},
			},
		},
		{
			// 0==>1 (parallel edges)
			desc:  "parallel edges",
			ids:   []int64{0, 1},
			edges: []Edge{{0, 1, 1}, {0, 1, 3}},
			want: &Digraph{
				IDs:   []int64{0, 1},
				Nexts: [][]int{{0, 1}, nil},
				Edges: []Edge{{0, 1, 1}, {0, 1, 3}},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got := NewDigraph(tc.ids, tc.edges)

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("NewDigraph(): mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewDigraph_unsortedIDs(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("NewDigraph(): want panic, got none")
		}
	}()
	NewDigraph([]int64{2, 1}, nil)
}

func TestDigraph_Index(t *testing.T) {
	g := NewDigraph([]int64{-4, 3, 17}, nil)

	testCases := []struct {
		id     int64
		want   int
		wantOK bool
	}{
		{-4, 0, true},
		{3, 1, true},
		{17, 2, true},
		{0, -1, false},
		{18, -1, false},
		{-10, -1, false},
	}

	for _, tc := range testCases {
		got, gotOK := g.Index(tc.id)
		if got != tc.want || gotOK != tc.wantOK {
			t.Errorf("Index(%d): want (%d, %t), got (%d, %t)", tc.id, tc.want, tc.wantOK, got, gotOK)
		}
	}
}

func TestDigraph_HasEdge(t *testing.T) {
	// 0-->1-->2
	g := NewDigraph([]int64{0, 1, 2}, []Edge{{0, 1, 1}, {1, 2, 1}})

	testCases := []struct {
		u, v int
		want bool
	}{
		{0, 1, true},
		{1, 2, true},
		{1, 0, false},
		{0, 2, false},
		{2, 2, false},
	}

	for _, tc := range testCases {
		if got := g.HasEdge(tc.u, tc.v); got != tc.want {
			t.Errorf("HasEdge(%d, %d): want %t, got %t", tc.u, tc.v, tc.want, got)
		}
	}
}

func TestDigraph_MaxOutWeight(t *testing.T) {
	g := NewDigraph([]int64{0, 1, 2, 3}, []Edge{
		{0, 1, 2},
		{0, 2, 5},
		{1, 2, -3},
		{2, 3, 0.5},
		{3, 3, 1e16}, // self loop
		{2, 2, 7},    // self loop
	})
	want := []float64{5, 0, 0.5, 0}

	got := g.MaxOutWeight()

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MaxOutWeight(): mismatch (-want +got):\n%s", diff)
	}
}
