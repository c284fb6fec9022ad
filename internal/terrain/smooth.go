package terrain

import "isoterra/internal/core"

// Smooth runs one neighbor-majority pass over the base layer. Cells are
// visited in randomly shuffled order and mutated in place, so later visits
// see already-updated neighbors from the same pass. This is intentional:
// a double-buffered pass would change the output distribution.
//
// No-op when no terrain exists yet or either dimension is below 2.
func (t *Terrain) Smooth() {
	if len(t.stack) == 0 || len(t.tiles) == 0 {
		return
	}
	if t.cfg.TerrainWidth < 2 || t.cfg.TerrainHeight < 2 {
		return
	}

	base := t.stack[0]

	coords := make([][2]int, 0, base.W*base.H)
	for i := 0; i < base.W; i++ {
		for j := 0; j < base.H; j++ {
			coords = append(coords, [2]int{i, j})
		}
	}
	t.rng.Shuffle(len(coords), func(a, b int) {
		coords[a], coords[b] = coords[b], coords[a]
	})

	for _, c := range coords {
		neighbors := core.Neighbors(base, c[0], c[1])
		base.Set(c[0], c[1], t.majorityType(neighbors))
	}

	t.stack = t.stack[:1]
	t.rebuildTiles()
}

// majorityType returns the most frequent type among the neighbors, counted
// over the whole type universe so an absent type can never win. Each tie
// encountered during the scan is broken by an independent coin flip, so
// later equal candidates each get a 50% chance to displace the leader.
func (t *Terrain) majorityType(neighbors []core.TileType) core.TileType {
	counts := make(map[core.TileType]int, len(t.types))
	for _, tt := range t.types {
		counts[tt] = 0
	}
	for _, n := range neighbors {
		if _, known := counts[n]; known {
			counts[n]++
		}
	}

	most := t.types[0]
	for _, tt := range t.types {
		if counts[tt] > counts[most] {
			most = tt
		} else if counts[tt] == counts[most] && t.rng.Coin() {
			most = tt
		}
	}
	return most
}
