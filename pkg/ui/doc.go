// Package ui provides the retained-mode widget tree and its manager.
//
// Widgets are long-lived tree nodes. Input enters the tree as messages
// (pkg/events) routed by the Manager: pointer messages go to the widget under
// the pointer, or to the capture owner while a mouse capture is held; key
// messages go to the focused widget first and then, unconsumed, to the rest
// of the tree so mnemonics work without focus.
//
// Concrete widgets embed WidgetBase and register themselves with SetSelf so
// the base can dispatch overridable hooks (OnSelect, OnDispose) to the
// outermost type.
//
// Everything is single threaded: all state transitions happen synchronously
// within the delivery of one message, driven by an external event loop.
package ui
