package plan

import "errors"

var (
	ErrPlanNotFound            = errors.New("bunker plan not found")
	ErrInvalidStatus           = errors.New("invalid bunker plan status")
	ErrInvalidStatusTransition = errors.New("invalid bunker plan status transition")
	ErrRejectionReasonRequired = errors.New("rejection reason is required")
	ErrApproverRequired        = errors.New("approver is required")
)
