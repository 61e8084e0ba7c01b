package dag

// TopologicalSort returns node IDs ordered so that every parent precedes its
// children. Ties are broken by insertion order, which makes the result
// deterministic for a given construction sequence.
//
// TopologicalSort uses Kahn's algorithm and returns ErrGraphHasCycle if some
// nodes never reach zero in-degree.
func (d *DAG) TopologicalSort() ([]string, error) {
	inDegree := make(map[string]int, len(d.nodes))
	queue := make([]string, 0, len(d.nodes))
	for _, n := range d.order {
		degree := len(d.incoming[n.ID])
		inDegree[n.ID] = degree
		if degree == 0 {
			queue = append(queue, n.ID)
		}
	}

	sorted := make([]string, 0, len(d.nodes))
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		sorted = append(sorted, curr)

		for _, child := range d.outgoing[curr] {
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	if len(sorted) != len(d.nodes) {
		return nil, ErrGraphHasCycle
	}
	return sorted, nil
}

// AssignLayers assigns every node a row equal to its depth: sources sit at
// row 0 and each other node sits one row below its deepest parent.
//
// AssignLayers is the longest-path layering computed over a topological
// order, so it runs in O(V + E). Existing row assignments are overwritten.
// It returns ErrGraphHasCycle and leaves rows untouched if the graph is not
// acyclic.
func (d *DAG) AssignLayers() error {
	order, err := d.TopologicalSort()
	if err != nil {
		return err
	}

	rows := make(map[string]int, len(order))
	for _, id := range order {
		rows[id] = max(rows[id], 0)
		for _, child := range d.outgoing[id] {
			if row := rows[id] + 1; row > rows[child] {
				rows[child] = row
			}
		}
	}

	d.SetRows(rows)
	return nil
}
