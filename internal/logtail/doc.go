// Package logtail reads back the storedash log file.
//
// Read returns the last N lines of a file in one pass with O(N) memory.
// Parse splits a line written by slog's text handler into time, level,
// message and the remaining attributes; Problems keeps the warnings and
// errors, which is where every failed API request ends up.
//
//	lines, err := logtail.Read(cfg.LogFile, 200)
//	if err != nil {
//		return err
//	}
//	for _, e := range logtail.Problems(lines) {
//		fmt.Println(e.Time, e.Attr("op"), e.Attr("error"))
//	}
package logtail
