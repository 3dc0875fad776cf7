// Package logtail reads the tail of Scout's own zerolog file for the in-app
// log overlay.
//
// # Reading Log Files
//
// Read uses a ring buffer of size maxLines, so the file is scanned once and
// memory stays O(maxLines) regardless of file size. A missing file returns
// nil, nil: the overlay simply shows nothing until the first line is written.
//
// # Decoding
//
// Parse decodes one JSON line using zerolog's configured field names (level,
// time, message, error). Remaining fields are kept as strings. Lines that are
// not JSON (a panic trace, for example) are returned verbatim with NoLevel so
// they are never hidden by the level filter in Tail.
//
//	entries, err := logtail.Tail(cfg.LogFile, 200, zerolog.InfoLevel)
//	for _, e := range entries {
//		fmt.Println(e.Format())
//	}
package logtail
