package dfs

import "github.com/katalvlaran/wordladder/core"

// Components labels every word of g with its connected component.
func Components(g *core.Graph, opts ...Option) (*ComponentsResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	res := &ComponentsResult{Label: make(map[string]int, g.Order())}
	stack := make([]string, 0, 64)
	for _, root := range g.Vertices() {
		if _, seen := res.Label[root]; seen {
			continue
		}
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}

		id := len(res.Sizes)
		size := 0
		res.Label[root] = id
		stack = append(stack[:0], root)
		for len(stack) > 0 {
			w := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			size++
			node, ok := g.Node(w)
			if !ok {
				continue
			}
			for _, nb := range node.Neighbors() {
				if _, seen := res.Label[nb]; !seen {
					res.Label[nb] = id
					stack = append(stack, nb)
				}
			}
		}
		res.Sizes = append(res.Sizes, size)
	}

	return res, nil
}
