// Package ui provides Scout's terminal interface, built on Bubble Tea.
//
// # Architecture Overview
//
// Model is a value-receiver tea.Model. It owns the search and detail
// controllers from package session and the location history from package nav.
// Only Update mutates them, so the controllers need no locking.
//
// # Event Flow
//
//  1. A key press updates the draft query or commits it
//  2. The controller returns a request; the model wraps req.Run in a tea.Cmd
//  3. The command runs off the event loop and returns a result message
//  4. Update hands the response to Resolve, which drops it if a newer query
//     or product has been requested since
//  5. View projects the current state through package present
//
// # Views
//
//   - Search: input with recent-query suggestions, status line, result cards
//   - Product: title, markdown description, business block, links
//
// Overlays for help (?) and recent log entries (L) sit above either view. The
// footer always shows the current shareable location, e.g. /?q=term+life.
//
// # Key Bindings
//
//   - /: Focus search
//   - enter: Commit the query, or open the selected product
//   - tab, up/down: Pick a recent query while typing
//   - j/k, g/G, pgup/pgdown: Move through results or scroll a product
//   - esc: Leave the input, or go back from a product
//   - [ / ]: Back and forward through locations
//   - T: Toggle light/dark (saved to prefs)
//   - L: Recent log entries
//   - q or Ctrl+C: Exit
package ui
