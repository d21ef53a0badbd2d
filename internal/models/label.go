// ABOUTME: Classification labels and routing branches
// ABOUTME: Labels come from the classifier, branches are derived by the router
package models

import (
	"errors"
	"fmt"
)

// Label is the classifier's verdict for the latest user message.
// The zero value means no label has been assigned this turn.
type Label string

const (
	LabelUnset     Label = ""
	LabelEmotional Label = "emotional"
	LabelLogical   Label = "logical"
)

// ErrInvalidLabel is returned when a value is not one of the two labels
var ErrInvalidLabel = errors.New("invalid classification label")

// Labels returns the allowed label values in schema order
func Labels() []Label {
	return []Label{LabelEmotional, LabelLogical}
}

// IsValid reports whether the label is one of the two enumerated values
func (l Label) IsValid() bool {
	return l == LabelEmotional || l == LabelLogical
}

// ParseLabel decodes a raw string into a Label.
// It is strict: case and surrounding whitespace are not normalized.
func ParseLabel(s string) (Label, error) {
	l := Label(s)
	if !l.IsValid() {
		return LabelUnset, fmt.Errorf("%w: %q", ErrInvalidLabel, s)
	}
	return l, nil
}

// Branch names the responder chosen for a turn
type Branch string

const (
	BranchTherapist Branch = "therapist"
	BranchLogical   Branch = "logical"
)
