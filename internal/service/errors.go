package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrInvalidCategory rejects a demanda write whose category is not in the
	// current valid set. The HTTP layer appends the valid set to the message.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrInvalidStatus rejects a demanda write whose status is outside the
	// closed status set.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidRole rejects a role value outside the closed role set, or a
	// self-assigned supreme role at registration.
	ErrInvalidRole = errors.New("invalid role")

	// ErrNoFieldsToUpdate rejects an empty patch; a silent no-op 200 would
	// mask client bugs.
	ErrNoFieldsToUpdate = errors.New("no fields to update")

	// ErrWrongCurrentPassword rejects a password change whose current
	// password does not verify.
	ErrWrongCurrentPassword = errors.New("wrong current password")

	// ErrAccessDenied is returned when the requester does not own the target
	// resource or lacks the capability for the operation.
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotDeleteSelf prevents the supreme admin from deleting their own
	// account, which would leave the system without one.
	ErrCannotDeleteSelf = errors.New("cannot delete own account")
)
