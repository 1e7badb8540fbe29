package metadata

import "fmt"

// ResolveScope returns the preferred filenames restricted to the transitive
// dependency closure of target. The target is resolved against recipe names
// and build-time provides; the first provider in file order is the preferred
// one. Dependencies that resolve to nothing are skipped: a scope can only
// narrow the search, never fail it mid-walk.
func (c *Cache) ResolveScope(target string) ([]string, error) {
	roots, ok := c.providers[target]
	if !ok || len(roots) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScope, target)
	}

	inScope := map[string]bool{roots[0]: true}
	queue := []string{roots[0]}
	for len(queue) > 0 {
		fn := queue[0]
		queue = queue[1:]
		for _, dep := range c.fnDepends[fn] {
			fns := c.providers[dep]
			if len(fns) == 0 {
				continue
			}
			if dfn := fns[0]; !inScope[dfn] {
				inScope[dfn] = true
				queue = append(queue, dfn)
			}
		}
	}

	out := make([]string, 0, len(inScope))
	for _, fn := range c.preferred {
		if inScope[fn] {
			out = append(out, fn)
		}
	}
	return out, nil
}
