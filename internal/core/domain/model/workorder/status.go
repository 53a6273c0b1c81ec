package workorder

import (
	"fmt"
	"strings"

	"workshop/internal/pkg/errs"
)

// Status represents the lifecycle state of a work order. Values are
// case-significant strings persisted as-is.
//
// There is deliberately no single transition table: each business operation
// guards the subset of states it may execute from and writes its own target
// state. The generic status update accepts any valid target from any current
// state, while approval and disapproval are strict. The two paths are kept
// independent on purpose and must not be unified.
type Status string

const (
	// Received is the initial status of every work order.
	Received Status = "RECEIVED"

	// InDiagnosis marks the order as being inspected by a mechanic.
	InDiagnosis Status = "IN_DIAGNOSIS"

	// AwaitingApproval marks the order as waiting for the client's decision.
	AwaitingApproval Status = "AWAITING_APPROVAL"

	// Approved means the client accepted the proposed work.
	Approved Status = "APPROVED"

	// Rejected means the client declined the proposed work.
	Rejected Status = "REJECTED"

	// Cancelled marks an order abandoned before completion.
	Cancelled Status = "CANCELLED"

	// InProgress marks the order as under repair.
	InProgress Status = "IN_PROGRESS"

	// Finished means the repair work is done. The persistence gateway stamps
	// the finished-at timestamp on the transition into this status.
	Finished Status = "FINISHED"

	// Delivered means the vehicle was handed back to the client.
	Delivered Status = "DELIVERED"
)

// AllStatuses returns the nine valid statuses in their fixed declaration
// order. The order is part of the validation error message contract.
func AllStatuses() []Status {
	return []Status{
		Received,
		InDiagnosis,
		AwaitingApproval,
		Approved,
		Rejected,
		Cancelled,
		InProgress,
		Finished,
		Delivered,
	}
}

// Validate checks membership in the nine-value enumeration.
// The error message lists every valid option in the fixed order.
func (s Status) Validate() error {
	for _, valid := range AllStatuses() {
		if s == valid {
			return nil
		}
	}

	options := make([]string, 0, len(AllStatuses()))
	for _, valid := range AllStatuses() {
		options = append(options, string(valid))
	}

	return errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%s is not a valid status, valid options are: %s", s, strings.Join(options, ", ")),
	)
}

// Approve transitions the status to Approved.
//
// Valid only from AwaitingApproval. An already approved order yields a
// conflict; every other status yields a guard violation naming the current
// status.
func (s Status) Approve() (Status, error) {
	if s == Approved {
		return "", errs.NewConflictError("work order is already approved")
	}
	if s != AwaitingApproval {
		return "", errs.NewGuardViolationError(
			fmt.Sprintf("work order cannot be approved, current status is %s", s),
		)
	}

	return Approved, nil
}

// Disapprove transitions the status to Rejected.
// Mirrors Approve with Rejected as target.
func (s Status) Disapprove() (Status, error) {
	if s == Rejected {
		return "", errs.NewConflictError("work order is already rejected")
	}
	if s != AwaitingApproval {
		return "", errs.NewGuardViolationError(
			fmt.Sprintf("work order cannot be rejected, current status is %s", s),
		)
	}

	return Rejected, nil
}

// closedForAdditions reports whether the order can no longer receive new
// services or materials.
func (s Status) closedForAdditions() bool {
	switch s {
	case Finished, Cancelled, Rejected, Delivered:
		return true
	}
	return false
}

// ValidateAttachService checks whether a service may be linked from the
// current status. Allowed from every status except Finished, Cancelled,
// Rejected and Delivered.
func (s Status) ValidateAttachService() error {
	if s.closedForAdditions() {
		return errs.NewGuardViolationErrorWithCause(
			"work order can no longer receive services",
			fmt.Errorf("current status is %s", s),
		)
	}
	return nil
}

// ValidateAttachMaterial checks whether a material may be linked from the
// current status. Shares the attach guard with services.
func (s Status) ValidateAttachMaterial() error {
	if s.closedForAdditions() {
		return errs.NewGuardViolationErrorWithCause(
			"work order can no longer receive materials",
			fmt.Errorf("current status is %s", s),
		)
	}
	return nil
}

// ValidateDetachService checks whether a linked service may be removed.
// Allowed only while the order is Received or AwaitingApproval.
func (s Status) ValidateDetachService() error {
	if s != Received && s != AwaitingApproval {
		return errs.NewGuardViolationErrorWithCause(
			"only received or awaiting-approval work orders may have services removed",
			fmt.Errorf("current status is %s", s),
		)
	}
	return nil
}

// ValidateDetachMaterial checks whether a linked material may be removed.
// Shares the detach guard with services.
func (s Status) ValidateDetachMaterial() error {
	if s != Received && s != AwaitingApproval {
		return errs.NewGuardViolationErrorWithCause(
			"only received or awaiting-approval work orders may have materials removed",
			fmt.Errorf("current status is %s", s),
		)
	}
	return nil
}
