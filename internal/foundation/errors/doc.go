// Package errors classifies the errors that end a symdoc run.
//
// Only failures that stop a run are classified: an unreadable configuration
// or symbol index, an output directory that cannot be created, invalid flags.
// Problems with individual pages are logged and counted by the renderer
// instead. The category of a ClassifiedError selects the process exit code;
// an optional hint tells the user how to fix the problem.
//
//	err := errors.IndexError("cannot load symbol index").
//		WithCause(cause).
//		WithContext("index", path).
//		Hint("check the index setting or pass --index").
//		Build()
package errors
