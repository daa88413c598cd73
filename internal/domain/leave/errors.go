package leave

import "errors"

var (
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request already processed")
	ErrDuplicateLeaveDate           = errors.New("employee already has a leave request on this date")
	ErrDateOrder                    = errors.New("end date must not be before start date")
	ErrStartDateInPast              = errors.New("start date cannot be in the past")
)
