package theme

import "github.com/go-ember/ember/pkg/graphics"

// boxTextGap is the space between the check/radio glyph box and the label.
const boxTextGap = 4

// BasicTheme is the built-in flat theme. It draws solid boxes and circles
// and renders text with the default face.
type BasicTheme struct {
	Data ThemeData
}

func (t *BasicTheme) BorderInsets() graphics.EdgeInsets {
	return t.Data.Border
}

func (t *BasicTheme) BoxSize() float64 {
	return t.Data.BoxSize
}

func (t *BasicTheme) PaintButton(ev *PaintEvent) {
	w := ev.Widget
	bounds := w.Bounds()

	face := t.Data.Face
	switch {
	case !w.Enabled():
		face = t.Data.FaceDisabled
	case w.Selected():
		face = t.Data.FaceSelected
	case w.HasMouseOver():
		face = t.Data.Face.Shade(1.08)
	}
	ev.Canvas.FillRect(bounds, face)

	outline := t.Data.Outline
	if w.HasFocus() {
		outline = t.Data.Focus
	}
	ev.Canvas.StrokeRect(bounds, outline)

	content := bounds.Inset(t.Data.Border)
	if ev.Icon != nil {
		box := t.iconBox(content, ev.Icon)
		ev.Icon.Paint(ev.Canvas, box)
		content = labelArea(content, box, ev.Icon.IconAlign())
	}
	t.paintLabel(ev, content, true)
}

// iconBox places the icon inside the content box per its alignment.
func (t *BasicTheme) iconBox(content graphics.Rect, icon IconView) graphics.Rect {
	w, h := icon.IconWidth(), icon.IconHeight()
	align := icon.IconAlign()

	x := content.Left
	switch {
	case align&graphics.AlignCenter != 0:
		x = content.Center().X - w/2
	case align&graphics.AlignRight != 0:
		x = content.Right - w
	}
	y := content.Top + (content.Height()-h)/2
	switch {
	case align&graphics.AlignTop != 0:
		y = content.Top
	case align&graphics.AlignBottom != 0:
		y = content.Bottom - h
	}
	return graphics.RectFromLTWH(x, y, w, h)
}

// labelArea shrinks the content box away from the icon box so the label does
// not overlap it.
func labelArea(content, box graphics.Rect, align graphics.Align) graphics.Rect {
	switch {
	case align&graphics.AlignTop != 0:
		content.Top = box.Bottom + boxTextGap
	case align&graphics.AlignBottom != 0:
		content.Bottom = box.Top - boxTextGap
	case align&graphics.AlignRight != 0:
		content.Right = box.Left - boxTextGap
	default:
		content.Left = box.Right + boxTextGap
	}
	return content
}

func (t *BasicTheme) PaintCheckBox(ev *PaintEvent) {
	box := t.glyphBox(ev)
	ev.Canvas.FillRect(box, t.Data.Face)
	ev.Canvas.StrokeRect(box, t.boxOutline(ev))

	if ev.Widget.Selected() {
		mark := box.Inset(graphics.EdgeInsetsAll(t.Data.BoxSize * 0.25))
		ev.Canvas.FillRect(mark, t.Data.Mark)
	}

	t.paintGlyphLabel(ev, box)
}

func (t *BasicTheme) PaintRadioButton(ev *PaintEvent) {
	box := t.glyphBox(ev)
	center := box.Center()
	radius := t.Data.BoxSize / 2
	ev.Canvas.FillCircle(center, radius, t.Data.Face)
	ev.Canvas.StrokeCircle(center, radius, t.boxOutline(ev))

	if ev.Widget.Selected() {
		ev.Canvas.FillCircle(center, radius*0.5, t.Data.Mark)
	}

	t.paintGlyphLabel(ev, box)
}

// glyphBox returns the rectangle of the check/radio glyph, aligned to the
// left edge of the content box and vertically centered.
func (t *BasicTheme) glyphBox(ev *PaintEvent) graphics.Rect {
	content := ev.Widget.Bounds().Inset(t.Data.Border)
	top := content.Top + (content.Height()-t.Data.BoxSize)/2
	return graphics.RectFromLTWH(content.Left, top, t.Data.BoxSize, t.Data.BoxSize)
}

func (t *BasicTheme) boxOutline(ev *PaintEvent) graphics.Color {
	switch {
	case !ev.Widget.Enabled():
		return t.Data.Outline.WithAlpha(0.5)
	case ev.Widget.HasFocus():
		return t.Data.Focus
	}
	return t.Data.Outline
}

// paintGlyphLabel draws the label to the right of the glyph box.
func (t *BasicTheme) paintGlyphLabel(ev *PaintEvent, box graphics.Rect) {
	label := ev.Widget.Label()
	if label == "" {
		return
	}
	size := graphics.MeasureText(graphics.DefaultFace(), label)
	pos := graphics.Offset{
		X: box.Right + boxTextGap,
		Y: box.Center().Y - size.Height/2,
	}
	ev.Canvas.DrawText(pos, label, t.textColor(ev.Widget))
}

// paintLabel draws the label inside the content box, centered when centered
// is true, left-aligned otherwise.
func (t *BasicTheme) paintLabel(ev *PaintEvent, content graphics.Rect, centered bool) {
	label := ev.Widget.Label()
	if label == "" {
		return
	}
	size := graphics.MeasureText(graphics.DefaultFace(), label)
	pos := graphics.Offset{
		X: content.Left,
		Y: content.Center().Y - size.Height/2,
	}
	if centered {
		pos.X = content.Center().X - size.Width/2
	}
	ev.Canvas.DrawText(pos, label, t.textColor(ev.Widget))
}

func (t *BasicTheme) textColor(w WidgetView) graphics.Color {
	if !w.Enabled() {
		return t.Data.TextDisabled
	}
	if w.Selected() {
		return t.Data.TextSelected
	}
	return t.Data.Text
}
