package workorder_test

import (
	"testing"

	"workshop/internal/core/domain/model/workorder"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("all nine values are valid", func(t *testing.T) {
		for _, s := range workorder.AllStatuses() {
			require.NoError(t, s.Validate(), "status %s", s)
		}
	})

	t.Run("unknown value is rejected with the full option list", func(t *testing.T) {
		err := workorder.Status("SHIPPED").Validate()
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(),
			"valid options are: RECEIVED, IN_DIAGNOSIS, AWAITING_APPROVAL, APPROVED, REJECTED, CANCELLED, IN_PROGRESS, FINISHED, DELIVERED")
	})

	t.Run("matching is case-significant", func(t *testing.T) {
		require.Error(t, workorder.Status("received").Validate())
		require.Error(t, workorder.Status("Finished").Validate())
	})
}

func TestStatus_Approve(t *testing.T) {
	t.Run("awaiting approval becomes approved", func(t *testing.T) {
		next, err := workorder.AwaitingApproval.Approve()
		require.NoError(t, err)
		assert.Equal(t, workorder.Approved, next)
	})

	t.Run("already approved is a conflict", func(t *testing.T) {
		_, err := workorder.Approved.Approve()
		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Contains(t, err.Error(), "already approved")
	})

	t.Run("every other status is a guard violation naming the status", func(t *testing.T) {
		for _, s := range []workorder.Status{
			workorder.Received,
			workorder.InDiagnosis,
			workorder.Rejected,
			workorder.Cancelled,
			workorder.InProgress,
			workorder.Finished,
			workorder.Delivered,
		} {
			_, err := s.Approve()
			require.ErrorIs(t, err, errs.ErrGuardViolation, "status %s", s)
			assert.Contains(t, err.Error(), "cannot be approved, current status is "+string(s))
		}
	})
}

func TestStatus_Disapprove(t *testing.T) {
	t.Run("awaiting approval becomes rejected", func(t *testing.T) {
		next, err := workorder.AwaitingApproval.Disapprove()
		require.NoError(t, err)
		assert.Equal(t, workorder.Rejected, next)
	})

	t.Run("already rejected is a conflict", func(t *testing.T) {
		_, err := workorder.Rejected.Disapprove()
		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Contains(t, err.Error(), "already rejected")
	})

	t.Run("every other status is a guard violation naming the status", func(t *testing.T) {
		for _, s := range []workorder.Status{
			workorder.Received,
			workorder.InDiagnosis,
			workorder.Approved,
			workorder.Cancelled,
			workorder.InProgress,
			workorder.Finished,
			workorder.Delivered,
		} {
			_, err := s.Disapprove()
			require.ErrorIs(t, err, errs.ErrGuardViolation, "status %s", s)
			assert.Contains(t, err.Error(), "cannot be rejected, current status is "+string(s))
		}
	})
}

func TestStatus_AttachGuards(t *testing.T) {
	closed := map[workorder.Status]bool{
		workorder.Finished:  true,
		workorder.Cancelled: true,
		workorder.Rejected:  true,
		workorder.Delivered: true,
	}

	for _, s := range workorder.AllStatuses() {
		if closed[s] {
			err := s.ValidateAttachService()
			require.ErrorIs(t, err, errs.ErrGuardViolation, "status %s", s)
			assert.Contains(t, err.Error(), "can no longer receive services")

			err = s.ValidateAttachMaterial()
			require.ErrorIs(t, err, errs.ErrGuardViolation, "status %s", s)
			assert.Contains(t, err.Error(), "can no longer receive materials")
		} else {
			require.NoError(t, s.ValidateAttachService(), "status %s", s)
			require.NoError(t, s.ValidateAttachMaterial(), "status %s", s)
		}
	}
}

func TestStatus_DetachGuards(t *testing.T) {
	removable := map[workorder.Status]bool{
		workorder.Received:         true,
		workorder.AwaitingApproval: true,
	}

	for _, s := range workorder.AllStatuses() {
		if removable[s] {
			require.NoError(t, s.ValidateDetachService(), "status %s", s)
			require.NoError(t, s.ValidateDetachMaterial(), "status %s", s)
		} else {
			err := s.ValidateDetachService()
			require.ErrorIs(t, err, errs.ErrGuardViolation, "status %s", s)
			assert.Contains(t, err.Error(), "may have services removed")

			err = s.ValidateDetachMaterial()
			require.ErrorIs(t, err, errs.ErrGuardViolation, "status %s", s)
			assert.Contains(t, err.Error(), "may have materials removed")
		}
	}
}
