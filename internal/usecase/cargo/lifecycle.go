package cargo

import (
	"fmt"

	"fuel-sense/internal/domain/cargo"
	appErrors "fuel-sense/pkg/errors"
)

// State machine for cargo decision transitions. Fixed and rejected cargoes
// are terminal; a cargo can be fixed straight from pending analysis since
// charterers sometimes commit before the analysis run finishes.
var validTransitions = map[cargo.Status][]cargo.Status{
	cargo.StatusPendingAnalysis: {
		cargo.StatusReadyForDecision,
		cargo.StatusFixed,
		cargo.StatusRejected,
	},
	cargo.StatusReadyForDecision: {
		cargo.StatusPendingAnalysis, // re-run analysis
		cargo.StatusFixed,
		cargo.StatusRejected,
	},
	cargo.StatusFixed:    {},
	cargo.StatusRejected: {},
}

// ValidateStatusTransition checks if a status transition is allowed.
func ValidateStatusTransition(currentStatus, newStatus cargo.Status) error {
	allowedStatuses, exists := validTransitions[currentStatus]
	if !exists {
		return appErrors.NewAppError(
			"INVALID_STATUS",
			fmt.Sprintf("Unknown current status: %s", currentStatus),
			cargo.ErrInvalidStatus,
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
		cargo.ErrInvalidStatusTransition,
	)
}
