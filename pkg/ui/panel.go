package ui

// Panel is a plain container widget. It draws nothing and consumes no input;
// it exists to group children and give subtrees a root.
type Panel struct {
	WidgetBase
}

// NewPanel creates an empty container.
func NewPanel() *Panel {
	p := &Panel{}
	p.SetSelf(p)
	return p
}
