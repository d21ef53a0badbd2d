// ABOUTME: Router maps a classification label to a responder branch
// ABOUTME: Pure and total; anything but emotional goes to the logical branch
package core

import "github.com/harper/chatroute/internal/models"

// Route picks the responder branch for a label.
//
// Only LabelEmotional selects the therapist. Every other value, including
// an unset label, falls back to the logical branch rather than failing.
func Route(label models.Label) models.Branch {
	if label == models.LabelEmotional {
		return models.BranchTherapist
	}
	return models.BranchLogical
}
