// Package present projects catalog items into card and detail views.
//
// Projections own no state. Cards yields lazily so the list view can stop at
// the bottom of the screen without building cards it will not draw.
package present
