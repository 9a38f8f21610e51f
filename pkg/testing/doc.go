// Package testing provides a widget testing harness for Ember.
//
// Create a tester, mount a tree, and feed synthetic input:
//
//	func TestMyButton(t *testing.T) {
//	    tester := embertest.NewWidgetTesterWithT(t)
//
//	    btn := widgets.NewButton("Go")
//	    btn.SetBounds(graphics.RectFromLTWH(0, 0, 100, 40))
//	    tester.Mount(btn)
//
//	    tester.Tap(btn)
//	    if btn.Selected() {
//	        t.Error("momentary button should end unselected")
//	    }
//	}
//
// The tester drives the same manager and dispatch paths as a real backend
// but records painting into a RecordingCanvas instead of rendering.
package testing
