package terrain

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Export writes a flat record of the terrain: one comment-headed CSV block
// per layer, then the heightmap. Each grid is written as W rows of H
// comma-separated values, matching the in-memory index order.
func Export(w io.Writer, t *Terrain) error {
	cw := csv.NewWriter(w)

	for layer, grid := range t.Layers() {
		if layer == 0 {
			if err := cw.Write([]string{"# Base layer"}); err != nil {
				return err
			}
		} else {
			if err := cw.Write([]string{fmt.Sprintf("# Elevation layer %d", layer)}); err != nil {
				return err
			}
		}
		record := make([]string, grid.H)
		for i := 0; i < grid.W; i++ {
			for j := 0; j < grid.H; j++ {
				record[j] = string(grid.At(i, j))
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}

	if hm := t.Heightmap(); hm != nil {
		if err := cw.Write([]string{"# Heightmap"}); err != nil {
			return err
		}
		record := make([]string, hm.H)
		for i := 0; i < hm.W; i++ {
			for j := 0; j < hm.H; j++ {
				record[j] = strconv.Itoa(int(hm.At(i, j)))
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
