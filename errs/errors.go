// Package errs defines the typed error taxonomy shared by the engagement
// engine and its callers. Resolvers translate these into GraphQL error
// payloads; store-layer errors are never wrapped into these types and
// propagate as-is.
package errs

import "fmt"

// NotFoundError is returned when a required identity (User, Post, Comment,
// Artist, Album, Track, Parent comment) cannot be resolved. It is always
// raised before any mutation happens.
type NotFoundError struct {
	Entity string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found.", e.Entity)
}

// NotFound builds a NotFoundError for the given entity kind.
func NotFound(entity string) NotFoundError {
	return NotFoundError{Entity: entity}
}

// ConflictError is returned when a requested edge transition is invalid
// given the current state of both documents: already-linked, not-linked,
// already-liked, already-deleted and friends. Checks run before any
// in-memory mutation, so a conflict never leaves partial state.
type ConflictError struct {
	Reason string
}

func (e ConflictError) Error() string {
	return e.Reason
}

// Conflict builds a ConflictError with the given user-facing reason.
func Conflict(reason string) ConflictError {
	return ConflictError{Reason: reason}
}

// NotAuthorizedError is returned when the acting user does not own the
// resource being mutated.
type NotAuthorizedError struct {
	Action string
}

func (e NotAuthorizedError) Error() string {
	return fmt.Sprintf("Not authorized to %s.", e.Action)
}

// NotAuthorized builds a NotAuthorizedError for the given action, e.g.
// "delete comment".
func NotAuthorized(action string) NotAuthorizedError {
	return NotAuthorizedError{Action: action}
}

// FollowError is the user-follows-user specialization of ConflictError.
// It plays the same semantic role but is kept as its own type because the
// user-user edge predates the generic protocol and callers match on it.
type FollowError struct {
	Reason string
}

func (e FollowError) Error() string {
	return e.Reason
}

// Follow builds a FollowError with the given reason.
func Follow(reason string) FollowError {
	return FollowError{Reason: reason}
}

// IsConflict reports whether err is one of the conflict-flavored types
// (ConflictError or FollowError).
func IsConflict(err error) bool {
	switch err.(type) {
	case ConflictError, FollowError:
		return true
	}
	return false
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	_, ok := err.(NotFoundError)
	return ok
}
