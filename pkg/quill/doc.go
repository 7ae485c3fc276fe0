// Package quill provides a configurable pretty-logging facade: log events
// are filtered by verbosity, rendered through a placeholder template with
// per-severity colored headers, and routed to any combination of stderr,
// an in-memory buffer, and a buffered log file.
//
// Quick start:
//
//	l, err := quill.New(quill.WithVerbosity(quill.Quiet))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer l.Close()
//
//	l.Warning("disk usage above 90%")
//	l.Error("connection refused to db-primary:5432")
//
// Loggers round-trip through JSON template files:
//
//	l, err := quill.FromTemplate("quill.json")
//
// A Logger assumes a single logical owner; wrap it in a mutex to share it
// across goroutines.
package quill
