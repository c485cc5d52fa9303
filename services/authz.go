package services

import "backend/apperror"

// checkOwner gates access to a record that already exists. Existence is
// checked before ownership everywhere this is used, so a caller probing
// another user's IDs sees NotFound for missing records and Forbidden for
// records that exist but are not theirs. That split reveals existence, not
// content, and it is the documented behavior.
func checkOwner(ownerID, callerID uint) error {
	if ownerID != callerID {
		return apperror.Forbidden("Forbidden")
	}
	return nil
}
