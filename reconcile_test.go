package flowerclock

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestReconcilePlans(t *testing.T) {
	tests := []struct {
		name               string
		existing, incoming int
		want               JoinPlan
	}{
		{"first render", 0, 3, JoinPlan{Enter: []int{0, 1, 2}}},
		{"steady state", 3, 3, JoinPlan{Update: []int{0, 1, 2}}},
		{"partial", 1, 3, JoinPlan{Update: []int{0}, Enter: []int{1, 2}}},
		{"shrink", 3, 1, JoinPlan{Update: []int{0}, Exit: []int{1, 2}}},
		{"empty", 0, 0, JoinPlan{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reconcile(tt.existing, tt.incoming)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Reconcile(%d, %d) mismatch (-want +got):\n%s", tt.existing, tt.incoming, diff)
			}
		})
	}
}

func TestJoinBindsByPosition(t *testing.T) {
	parent := NewGroup("parent")
	var entered, updated []int

	enter := func(d float64, i int) *Node {
		entered = append(entered, i)
		n := NewGroup("shape").AddClass("shape")
		parent.AddChild(n)
		return n
	}
	update := func(n *Node, d float64, i int) {
		updated = append(updated, i)
	}

	join(parent, ".shape", []float64{10, 20}, update, enter)
	if diff := cmp.Diff([]int{0, 1}, entered); diff != "" {
		t.Errorf("first join entered mismatch (-want +got):\n%s", diff)
	}
	if len(updated) != 0 {
		t.Errorf("first join updated %v, want none", updated)
	}

	entered = nil
	join(parent, ".shape", []float64{30, 40}, update, enter)
	if len(entered) != 0 {
		t.Errorf("second join entered %v, want none", entered)
	}
	if parent.ChildAt(0).Datum != 30 || parent.ChildAt(1).Datum != 40 {
		t.Errorf("data = (%v, %v), want (30, 40)", parent.ChildAt(0).Datum, parent.ChildAt(1).Datum)
	}
}

func TestJoinDisposesExit(t *testing.T) {
	parent := NewGroup("parent")
	for range 3 {
		parent.AddChild(NewGroup("shape").AddClass("shape"))
	}
	last := parent.ChildAt(2)

	plan := join(parent, ".shape", []float64{1, 2}, func(*Node, float64, int) {}, func(float64, int) *Node { return nil })

	if len(plan.Exit) != 1 {
		t.Fatalf("Exit = %v, want one index", plan.Exit)
	}
	if parent.NumChildren() != 2 {
		t.Errorf("NumChildren = %d, want 2", parent.NumChildren())
	}
	if !last.IsDisposed() {
		t.Error("exiting shape should be disposed")
	}
}
