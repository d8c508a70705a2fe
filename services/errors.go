package services

import "errors"

// Messages are shown to the parent as-is.
var (
	ErrPhoneRequired        = errors.New("please enter a phone number")
	ErrPhoneAndCodeRequired = errors.New("please enter the phone number and code")
	ErrOtpInvalid           = errors.New("the code is invalid or has expired")
	ErrOtpMismatch          = errors.New("wrong code")
	ErrNotLoggedIn          = errors.New("not logged in")

	ErrChildNameRequired = errors.New("please enter the child's name")
	ErrChildRequired     = errors.New("please choose a child")
	ErrChildNotFound     = errors.New("child not found")
	ErrTaskTitleRequired = errors.New("please enter a task title")
	ErrNoPermissionTask  = errors.New("no permission to add tasks for this child")
	ErrNoPermissionStar  = errors.New("no permission to log stars for this child")
	ErrInvalidTask       = errors.New("invalid task")
	ErrTemplateNotFound  = errors.New("template not found")
	ErrInvalidMonth      = errors.New("invalid month")
	ErrDeviceTokenEmpty  = errors.New("device token is empty")
)

var userErrors = []error{
	ErrPhoneRequired, ErrPhoneAndCodeRequired, ErrOtpInvalid, ErrOtpMismatch, ErrNotLoggedIn,
	ErrChildNameRequired, ErrChildRequired, ErrChildNotFound, ErrTaskTitleRequired,
	ErrNoPermissionTask, ErrNoPermissionStar, ErrInvalidTask, ErrTemplateNotFound,
	ErrInvalidMonth, ErrDeviceTokenEmpty,
}

// IsUserError reports whether err is a validation or permission failure that
// can be shown to the caller, as opposed to an infrastructure error.
func IsUserError(err error) bool {
	for _, target := range userErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
