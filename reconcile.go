package flowerclock

// JoinPlan partitions a positional data join. Indices refer to both the
// existing shapes and the incoming data; shapes have no identity beyond
// their position.
type JoinPlan struct {
	Update []int // existing shapes to move to the datum at the same index
	Enter  []int // data without a shape; a new shape is created for each
	Exit   []int // shapes without a datum
}

// Reconcile plans the join of existing shapes against incoming data points.
func Reconcile(existing, incoming int) JoinPlan {
	var plan JoinPlan
	shared := min(existing, incoming)
	for i := 0; i < shared; i++ {
		plan.Update = append(plan.Update, i)
	}
	for i := existing; i < incoming; i++ {
		plan.Enter = append(plan.Enter, i)
	}
	for i := incoming; i < existing; i++ {
		plan.Exit = append(plan.Exit, i)
	}
	return plan
}

// join runs plan against the children of parent matching selector: update
// is called for each kept shape, enter for each missing datum (it must add
// the new shape to parent itself), and exiting shapes are disposed.
func join(parent *Node, selector string, data []float64,
	update func(n *Node, d float64, i int),
	enter func(d float64, i int) *Node,
) JoinPlan {
	var shapes []*Node
	for _, c := range parent.Children() {
		if c.Matches(selector) {
			shapes = append(shapes, c)
		}
	}

	plan := Reconcile(len(shapes), len(data))
	for _, i := range plan.Update {
		shapes[i].Datum = data[i]
		update(shapes[i], data[i], i)
	}
	for _, i := range plan.Enter {
		if n := enter(data[i], i); n != nil {
			n.Datum = data[i]
		}
	}
	for _, i := range plan.Exit {
		shapes[i].Dispose()
	}
	return plan
}
