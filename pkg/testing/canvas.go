package testing

import "github.com/go-ember/ember/pkg/graphics"

// Paint op kinds recorded by RecordingCanvas.
const (
	OpFillRect     = "fillRect"
	OpStrokeRect   = "strokeRect"
	OpFillCircle   = "fillCircle"
	OpStrokeCircle = "strokeCircle"
	OpText         = "text"
)

// PaintOp is one recorded drawing call.
type PaintOp struct {
	Kind   string
	Rect   graphics.Rect
	Center graphics.Offset
	Radius float64
	Pos    graphics.Offset
	Text   string
	Color  graphics.Color
}

// RecordingCanvas implements graphics.Canvas by recording every call.
type RecordingCanvas struct {
	Ops []PaintOp
}

func (c *RecordingCanvas) FillRect(r graphics.Rect, color graphics.Color) {
	c.Ops = append(c.Ops, PaintOp{Kind: OpFillRect, Rect: r, Color: color})
}

func (c *RecordingCanvas) StrokeRect(r graphics.Rect, color graphics.Color) {
	c.Ops = append(c.Ops, PaintOp{Kind: OpStrokeRect, Rect: r, Color: color})
}

func (c *RecordingCanvas) FillCircle(center graphics.Offset, radius float64, color graphics.Color) {
	c.Ops = append(c.Ops, PaintOp{Kind: OpFillCircle, Center: center, Radius: radius, Color: color})
}

func (c *RecordingCanvas) StrokeCircle(center graphics.Offset, radius float64, color graphics.Color) {
	c.Ops = append(c.Ops, PaintOp{Kind: OpStrokeCircle, Center: center, Radius: radius, Color: color})
}

func (c *RecordingCanvas) DrawText(pos graphics.Offset, s string, color graphics.Color) {
	c.Ops = append(c.Ops, PaintOp{Kind: OpText, Pos: pos, Text: s, Color: color})
}

// Reset discards the recording.
func (c *RecordingCanvas) Reset() {
	c.Ops = nil
}

// Count returns the number of recorded ops of the given kind.
func (c *RecordingCanvas) Count(kind string) int {
	n := 0
	for _, op := range c.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Texts returns every recorded text string, in draw order.
func (c *RecordingCanvas) Texts() []string {
	var out []string
	for _, op := range c.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}
