package graphics

// Canvas is the minimal drawing surface the theme layer paints into.
// Backends implement it over a real renderer; tests implement it with a
// recording canvas.
type Canvas interface {
	// FillRect fills a rectangle with a solid color.
	FillRect(r Rect, c Color)
	// StrokeRect outlines a rectangle with a one-pixel border.
	StrokeRect(r Rect, c Color)
	// FillCircle fills a circle with a solid color.
	FillCircle(center Offset, radius float64, c Color)
	// StrokeCircle outlines a circle.
	StrokeCircle(center Offset, radius float64, c Color)
	// DrawText draws a single line of text with its baseline-left corner
	// derived from pos (the top-left of the text box).
	DrawText(pos Offset, s string, c Color)
}
