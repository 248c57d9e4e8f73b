// Package cli implements the kiosk shell: it owns the UI state, renders a
// fresh view after every transition, and dispatches typed commands to the
// handlers named by the rendered view's controls.
//
// The flow mirrors the site it fronts: a handler validates input and
// mutates domain data, updates the state, and requests a re-render; the
// renderer rebuilds the whole view and the shell re-binds its controls.
package cli
