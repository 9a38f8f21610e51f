package graphics

// Align is a bitmask of horizontal and vertical content alignment flags.
type Align uint8

const (
	AlignLeft Align = 1 << iota
	AlignCenter
	AlignRight
	AlignTop
	AlignMiddle
	AlignBottom
)
