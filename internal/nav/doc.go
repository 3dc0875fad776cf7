// Package nav models Scout's shareable locations and the back/forward history
// that moves between them.
//
// Two routes exist:
//
//	/?q=<query>      search view; q is the committed query
//	/product/<id>    detail view of one product
//
// A Location renders to and parses from this string form, so a location shown
// in the footer can be pasted back on the command line to reproduce the same
// view. History mirrors browser semantics: Push truncates forward entries, Back
// and Forward walk the stack without modifying it.
package nav
