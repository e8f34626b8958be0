package codecs

import "errors"

// Error taxonomy for the codec layer. The key split is caller-input errors
// versus protocol violations from the server: the first four types mean the
// caller handed the driver something that does not fit the schema, while
// ProtocolError means the peer sent malformed or contract-violating bytes.
// All types are matchable with errors.As.

// QueryArgumentError reports a value whose element count does not match the
// codec's schema arity.
type QueryArgumentError struct {
	Message string
}

func (e *QueryArgumentError) Error() string { return e.Message }

// InvalidArgumentError reports a value of the wrong shape or type. It is
// also the wrapper applied when a nested sub-codec rejects a named tuple
// field, in which case Cause holds the sub-codec's error.
type InvalidArgumentError struct {
	Message string
	Cause   error
}

func (e *InvalidArgumentError) Error() string { return e.Message }

func (e *InvalidArgumentError) Unwrap() error { return e.Cause }

// MissingArgumentError reports a required field that was absent or null, or
// an argument mapping that was nil as a whole.
type MissingArgumentError struct {
	Message string
}

func (e *MissingArgumentError) Error() string { return e.Message }

// UnknownArgumentError reports argument names supplied by the caller that
// the schema does not declare.
type UnknownArgumentError struct {
	Message string
}

func (e *UnknownArgumentError) Error() string { return e.Message }

// ProtocolError reports wire bytes from the server that violate the codec
// contract, such as an element count disagreeing with the schema arity.
type ProtocolError struct {
	Message string
}

func (e *ProtocolError) Error() string { return e.Message }

// isArgumentError reports whether err belongs to the caller-input family.
// Invalid, missing and unknown argument errors all specialize the
// query-argument condition for classification purposes.
func isArgumentError(err error) bool {
	var (
		qa *QueryArgumentError
		ia *InvalidArgumentError
		ma *MissingArgumentError
		ua *UnknownArgumentError
	)
	return errors.As(err, &qa) || errors.As(err, &ia) ||
		errors.As(err, &ma) || errors.As(err, &ua)
}

// pluralSuffix returns "s" unless n is 1. Error messages promise correct
// singular/plural phrasing, so this is part of the observable contract.
func pluralSuffix(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
