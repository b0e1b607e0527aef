package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
	CodeUnimplemented      Code = "UNIMPLEMENTED"

	// CodeImpossible marks an action that cannot be performed in the
	// current world state. It is the only rejection that is recoverable
	// at the turn boundary: no mutation happened and the message is
	// meant for direct display to the player.
	CodeImpossible Code = "IMPOSSIBLE"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Recoverable reports whether an error with this code should be
// surfaced to the player and the turn retried, rather than treated as
// a programming-contract violation.
func (c Code) Recoverable() bool {
	return c == CodeImpossible
}
