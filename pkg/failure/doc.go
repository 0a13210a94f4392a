// Package failure implements validation errors that must be acknowledged.
//
// A Failure is a soft error: it is collected instead of returned immediately,
// but it records whether anyone has looked at it. Reading its field or its
// message marks it handled. At the end of a validation pass or request
// lifecycle the owner calls Audit, which reports every Failure that is still
// unhandled together with the source location where it was created. This turns
// "forgot to inspect a validation error" into a loud, deterministic fault.
//
// # Usage
//
//	f := failure.New("age", "Invalid field age")
//	fmt.Println(f.Message()) // marks f handled
//
//	if err := failure.Audit(f); err != nil {
//	    panic(err) // never reached: f was handled
//	}
//
// Message is the inert counterpart used when a caller opts out of the
// protocol; Audit ignores it.
//
// Group aggregates failures of several fields under one key (for example all
// fields matched by a pattern rule). Audit descends into groups and reports a
// shared Failure only once.
package failure
