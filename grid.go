package spritesheet

// Grid describes the row/column layout of poses on a sheet.
type Grid struct {
	Rows int
	Cols int
}

func (g Grid) Frames() int {
	return g.Rows * g.Cols
}

// GridFor maps a requested frame count to the most square grid that holds
// exactly that many cells, preferring wide over tall (rows <= cols). Prime
// counts degrade to a single row.
func GridFor(frameCount int) Grid {
	if frameCount < 1 {
		frameCount = 1
	}
	rows := 1
	for d := 2; d*d <= frameCount; d++ {
		if frameCount%d == 0 {
			rows = d
		}
	}
	return Grid{Rows: rows, Cols: frameCount / rows}
}
