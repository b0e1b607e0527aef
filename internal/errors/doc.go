// Package errors provides structured error handling for roguelike-api.
//
// Errors carry a Code, a human-readable Message, and optional metadata.
// The IMPOSSIBLE code is special: it is the single recoverable rejection
// of the action resolution core. An Impossible error means the requested
// action cannot be performed in the current world state, no mutation
// happened, and the message is suitable for showing to the player as-is.
// Every other code is a programming-contract or infrastructure failure.
//
// Creating errors:
//
//	err := errors.Impossible("that way is blocked")
//	err := errors.InvalidArgumentf("unknown action kind: %s", kind)
//
// Checking at the turn boundary:
//
//	if errors.IsImpossible(err) {
//	    log.Emit(errors.GetMessage(err), messagelog.StyleImpossible)
//	    // turn not consumed
//	}
//
// Wrapping infrastructure errors:
//
//	if err := repo.Append(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to persist message")
//	}
//
// Config validation uses the ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	if c.IDGenerator == nil {
//	    vb.RequiredField("IDGenerator")
//	}
//	return vb.Build()
package errors
