package render

import (
	"raycaster/internal/grid"
	"raycaster/internal/pose"
	"raycaster/internal/raycast"
)

// mapScale converts world units to debug map pixels. The map is a square
// Height pixels on a side.
func (r *Renderer) mapScale(g *grid.Grid) float64 {
	return r.cfg.Height / float64(g.Size()) / r.cfg.CellSize
}

func (r *Renderer) drawMap(s Surface, g *grid.Grid) {
	pal := r.cfg.Palette
	n := g.Size()
	size := float32(r.cfg.Height / float64(n))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			clr := pal.MapEmpty
			if g.CellAt(x, y) == grid.Wall {
				clr = pal.MapWall
			}
			s.FillRect(float32(x)*size+mapCellGapPx, float32(y)*size+mapCellGapPx, size-mapCellGapPx, size-mapCellGapPx, clr)
		}
	}
}

func (r *Renderer) drawPlayer(s Surface, p pose.Pose, scale float64) {
	pal := r.cfg.Palette
	px, py := float32(p.X*scale), float32(p.Y*scale)
	s.FillRect(px-playerMarkerSize/2, py-playerMarkerSize/2, playerMarkerSize, playerMarkerSize, pal.Player)
	hx := float32((p.X + p.DirX*headingLength) * scale)
	hy := float32((p.Y + p.DirY*headingLength) * scale)
	s.StrokeLine(px, py, hx, hy, headingLineWidth, pal.Heading)
}

// drawRays traces each sample from the player to its hit. Misses are skipped.
func (r *Renderer) drawRays(s Surface, p pose.Pose, samples []raycast.Sample, scale float64) {
	px, py := float32(p.X*scale), float32(p.Y*scale)
	for _, sm := range samples {
		if sm.Face == raycast.FaceNone {
			continue
		}
		s.StrokeLine(px, py, float32(sm.HitX*scale), float32(sm.HitY*scale), rayLineWidth, r.cfg.Palette.Ray)
	}
}
