package astar

import "fmt"

// reconstruct walks prev from goal back to start and returns the path in
// start → goal order. start has no entry in prev. A walk longer than
// len(prev)+1 words can only be a cycle.
func reconstruct(prev map[string]string, start, goal string) ([]string, error) {
	path := []string{goal}
	for cur := goal; cur != start; {
		p, ok := prev[cur]
		if !ok {
			return nil, fmt.Errorf("%w: no predecessor for %q", ErrBrokenTrail, cur)
		}
		path = append(path, p)
		if len(path) > len(prev)+1 {
			return nil, fmt.Errorf("%w: cycle through %q", ErrBrokenTrail, p)
		}
		cur = p
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
