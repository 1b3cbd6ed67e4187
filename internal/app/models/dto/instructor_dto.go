package dto

// UpdatePasswordRequest is the body of PUT /api/instructors/password/{username}.
// Pointers distinguish a missing key from an empty value: missing keys reject
// the request, while an empty new password is stored verbatim.
type UpdatePasswordRequest struct {
	OldPassword *string `json:"oldPassword" example:"password789"`
	NewPassword *string `json:"newPassword" example:"newpw"`
}
