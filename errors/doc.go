/*
Package errors implements the error kinds shared by every quorum package.

Each kind is a root *Error created once with Register. Runtime errors are
built by wrapping a root with Wrap or Wrapf, which keeps the kind testable
through Is and attaches a stack trace at the innermost wrap.

Extensions that need their own kinds register them with codes from their
own range (x/multisig uses 1030-1049):

	var ErrForbidden = errors.Register(1030, "forbidden")

Once you have an error, fmt verbs give more context:
	%s is just the error message
	%+v is the message followed by the stack trace of the innermost wrap
	%v is the message

ABCIInfo converts any error into a (code, log) pair that is safe to return
to a client: errors that do not wrap a registered root are reported as
"internal error".
*/
package errors
