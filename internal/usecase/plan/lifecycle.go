package plan

import (
	"fmt"

	"fuel-sense/internal/domain/plan"
	appErrors "fuel-sense/pkg/errors"
)

// State machine for bunker plan status transitions. A rejected or completed
// plan is terminal; in particular rejected plans can never be approved later.
var validTransitions = map[plan.Status][]plan.Status{
	plan.StatusPendingApproval: {
		plan.StatusApproved,
		plan.StatusRejected,
	},
	plan.StatusApproved: {
		plan.StatusCompleted,
	},
	plan.StatusRejected:  {},
	plan.StatusCompleted: {},
}

// ValidateStatusTransition checks if a status transition is allowed.
func ValidateStatusTransition(currentStatus, newStatus plan.Status) error {
	allowedStatuses, exists := validTransitions[currentStatus]
	if !exists {
		return appErrors.NewAppError(
			"INVALID_STATUS",
			fmt.Sprintf("Unknown current status: %s", currentStatus),
			plan.ErrInvalidStatus,
		)
	}

	for _, allowed := range allowedStatuses {
		if newStatus == allowed {
			return nil
		}
	}

	return appErrors.NewAppError(
		"INVALID_TRANSITION",
		fmt.Sprintf("Cannot transition from %s to %s", currentStatus, newStatus),
		plan.ErrInvalidStatusTransition,
	)
}

// AllowedTransitions returns the allowed next statuses.
func AllowedTransitions(currentStatus plan.Status) []plan.Status {
	return validTransitions[currentStatus]
}
