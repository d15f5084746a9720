package render

import "sort"

// layout orders rendered token groups. Unpositioned groups keep
// declaration order; positioned groups land on their explicit slot in the
// final sequence, with negative positions counted from the end. When a
// non-negative and a negative position resolve to the same slot (possible
// at render time once unset fields drop out), the later group shifts
// toward the end to the next free slot. The result depends only on the
// set of rendered groups, never on wall clock or map order.
func layout(groups []group) []group {
	var positioned, free []group

	for _, g := range groups {
		if g.position != nil {
			positioned = append(positioned, g)
		} else {
			free = append(free, g)
		}
	}

	if len(positioned) == 0 {
		return free
	}

	n := len(groups)

	resolved := make([]int, len(positioned))
	for i, g := range positioned {
		p := *g.position
		if p < 0 {
			p += n
		}

		resolved[i] = clamp(p, 0, n-1)
	}

	order := make([]int, len(positioned))
	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(a, b int) bool {
		if resolved[order[a]] != resolved[order[b]] {
			return resolved[order[a]] < resolved[order[b]]
		}

		return positioned[order[a]].order < positioned[order[b]].order
	})

	slots := make([]*group, n)

	for _, i := range order {
		slot := resolved[i]
		for slot < n && slots[slot] != nil {
			slot++
		}

		for slot >= n || slots[slot] != nil {
			slot--
		}

		g := positioned[i]
		slots[slot] = &g
	}

	next := 0

	for _, g := range free {
		for slots[next] != nil {
			next++
		}

		g := g
		slots[next] = &g
	}

	out := make([]group, 0, n)

	for _, s := range slots {
		if s != nil {
			out = append(out, *s)
		}
	}

	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
