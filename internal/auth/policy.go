package auth

import "github.com/medsbuddy/medsbuddy/internal/models"

// Access policy predicates. Each rule the guard applies is a named function so
// the current behavior is explicit, testable, and swappable.

// CanViewMedications decides whether ident may list the medications owned by
// ownerUserID. Owners may view their own list; any caretaker may view any
// patient's list. No patient-caretaker link is consulted; the linking table
// exists but is not wired into policy yet.
func CanViewMedications(ident Identity, ownerUserID uint) bool {
	return ident.UserID == ownerUserID || ident.Role == models.RoleCaretaker
}

// CanModifyMedication decides whether ident may create, update, or delete a
// medication. Any authenticated subject qualifies: ownership of the target is
// not checked, matching the original behavior. Tightening this to owner-only
// means adding the owner id parameter here and nowhere else.
func CanModifyMedication(ident Identity) bool {
	return ident.UserID != 0
}

// CanAccessLogs decides whether ident may record or read dose logs for a
// medication. Same rule as CanModifyMedication: a valid credential suffices.
func CanAccessLogs(ident Identity) bool {
	return ident.UserID != 0
}
