// Package widgets provides the clickable widget family: momentary buttons,
// toggle checkboxes, and mutually exclusive radio buttons.
//
// All three are thin configurations over ButtonBase, which implements the
// shared interaction state machine. A widget's behavior kind (how input
// transitions its state) and paint kind (which theme routine draws it) are
// independent and both fixed at construction: a checkbox-styled widget may
// use momentary behavior, and so on.
package widgets
