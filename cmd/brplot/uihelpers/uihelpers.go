package uihelpers

// ComputeWindowSize applies the clamp rules for the viewer window showing a
// square chart of figSize pixels. The window stays square and leaves room for
// the window chrome.
func ComputeWindowSize(figSize int) (int, int) {
	const (
		chrome  = 16
		minSide = 320
		maxSide = 1000
	)
	s := figSize + chrome
	if s < minSide {
		s = minSide
	}
	if s > maxSide {
		s = maxSide
	}
	return s, s
}
