package state

// mergeOrAppend stores a finished sub-path. When the last stroke has the same
// color, thickness and opacity, the sub-path joins it; otherwise it starts a
// new stroke. Exactly one of the two happens per call.
func mergeOrAppend(strokes []Stroke, style Style, combine bool, data SubPath, path string) []Stroke {
	if n := len(strokes); n > 0 && strokes[n-1].Style() == style {
		last := &strokes[n-1]
		last.Data = append(last.Data, data)
		last.Path = append(last.Path, path)
		return strokes
	}
	return append(strokes, NewStroke(style, combine, data, path))
}
