// Package ui contains the Bubble Tea program that hosts a cascading menu.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (mouse taps, keys, resizes, animation frames, selections).
//   - Left mouse presses become cascade.Session.Tap calls. The session owns all
//     menu state; the model only mirrors it on screen.
//
// Session callbacks:
//   - Model is both the session delegate and its surface. Callbacks run
//     synchronously inside Update and queue commands that finishUpdate
//     returns, so the session never talks to Bubble Tea directly.
//   - A chosen leaf is executed through the internal/ui/command bus, whose
//     SelectionMsg records the result and dismisses the session. Dismissal
//     queues tea.Quit.
//
// Rendering:
//   - Cards are composited onto a cell canvas (canvas.go) so overlapping
//     cards and the anchor button can share rows. New cards slide in from the
//     left on a harmonica spring (animation.go).
package ui
