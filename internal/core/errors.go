// ABOUTME: Failure categories surfaced by the routing graph
// ABOUTME: Model-call failures and schema violations are fatal for a turn
package core

import "errors"

var (
	// ErrModelCall means the collaborator could not produce a response
	ErrModelCall = errors.New("model call failed")

	// ErrSchemaViolation means the classifier's structured reply did not
	// decode into one of the two labels
	ErrSchemaViolation = errors.New("classifier schema violation")
)
