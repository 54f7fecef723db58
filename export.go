package main

// ShapeDTO is the JSON form of a Shape. The kind is stored once on the
// enclosing SnapshotDTO since a run never mixes kinds.
type ShapeDTO struct {
	X      int   `json:"x"`
	Y      int   `json:"y"`
	Radius int   `json:"radius"`
	A      uint8 `json:"a"`
	R      uint8 `json:"r"`
	G      uint8 `json:"g"`
	B      uint8 `json:"b"`
}

// SnapshotDTO is served by /lisa.json and pushed over the websocket.
type SnapshotDTO struct {
	RunID   string     `json:"run_id"`
	Round   uint64     `json:"round"`
	Score   uint64     `json:"score"`
	Width   int        `json:"width"`
	Height  int        `json:"height"`
	Shape   string     `json:"shape"`
	Count   int        `json:"count"`
	Shapes  []ShapeDTO `json:"shapes,omitempty"` // head first
	Elapsed string     `json:"elapsed,omitempty"`
}

// snapshotToDTO converts a snapshot; withShapes=false leaves the shape list
// out for the lighter websocket round messages.
func snapshotToDTO(runID string, kind ShapeKind, w, h int, s Snapshot, withShapes bool) SnapshotDTO {
	dto := SnapshotDTO{
		RunID:  runID,
		Round:  s.Round,
		Score:  s.Score,
		Width:  w,
		Height: h,
		Shape:  kind.String(),
		Count:  len(s.Candidate),
	}
	if withShapes {
		dto.Shapes = make([]ShapeDTO, len(s.Candidate))
		for i, sh := range s.Candidate {
			dto.Shapes[i] = ShapeDTO{
				X:      sh.X,
				Y:      sh.Y,
				Radius: sh.Radius,
				A:      sh.Color.A,
				R:      sh.Color.R,
				G:      sh.Color.G,
				B:      sh.Color.B,
			}
		}
	}
	return dto
}
