package percolation

// OpenClusters returns the 4-connected clusters of open sites, found by
// breadth-first search over the site states alone. Clusters appear in
// row-major order of their first site; sites within a cluster appear in
// BFS order. The union-find is not consulted.
//
// Time:   O(N²).
// Memory: O(N²) for visited flags and output.
func (g *Grid) OpenClusters() [][]Site {
	seen := make([]bool, len(g.sites))
	var clusters [][]Site

	for k, st := range g.sites {
		if st != Open || seen[k] {
			continue
		}
		queue := []int{k}
		seen[k] = true
		var cluster []Site

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			ur, uc := u/g.n, u%g.n
			cluster = append(cluster, Site{Row: ur + 1, Col: uc + 1})
			for _, d := range neighborOffsets {
				vr, vc := ur+d[0], uc+d[1]
				if !g.inBounds(vr, vc) {
					continue
				}
				v := vr*g.n + vc
				if g.sites[v] == Open && !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		clusters = append(clusters, cluster)
	}

	return clusters
}

// SpansByBFS reports whether some open cluster touches both row 1 and row N.
// It always agrees with Percolates and serves as an independent check.
func (g *Grid) SpansByBFS() bool {
	for _, cluster := range g.OpenClusters() {
		top, bottom := false, false
		for _, s := range cluster {
			if s.Row == 1 {
				top = true
			}
			if s.Row == g.n {
				bottom = true
			}
		}
		if top && bottom {
			return true
		}
	}

	return false
}

// FullByBFS reports whether site (i, j) is open and joined to row 1 by a path
// of open sites. Unlike IsFull it is not subject to backwash.
func (g *Grid) FullByBFS(i, j int) (bool, error) {
	if _, _, err := g.coords(i, j); err != nil {
		return false, err
	}
	for _, cluster := range g.OpenClusters() {
		touchesTop, contains := false, false
		for _, s := range cluster {
			if s.Row == 1 {
				touchesTop = true
			}
			if s.Row == i && s.Col == j {
				contains = true
			}
		}
		if contains {
			return touchesTop, nil
		}
	}

	return false, nil
}
