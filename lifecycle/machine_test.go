package lifecycle_test

import (
	"testing"

	"fieldpro-backend/lifecycle"

	"github.com/stretchr/testify/assert"
)

func TestFire(t *testing.T) {
	tests := []struct {
		name    string
		from    lifecycle.Status
		trigger lifecycle.Trigger
		want    lifecycle.Status
		wantErr error
	}{
		{
			name:    "created_generate_pdf",
			from:    lifecycle.StatusCreated,
			trigger: lifecycle.TriggerGeneratePDF,
			want:    lifecycle.StatusInvoiced,
		},
		{
			name:    "created_complete",
			from:    lifecycle.StatusCreated,
			trigger: lifecycle.TriggerComplete,
			want:    lifecycle.StatusCompleted,
		},
		{
			name:    "created_pay",
			from:    lifecycle.StatusCreated,
			trigger: lifecycle.TriggerPay,
			want:    lifecycle.StatusPaid,
		},
		{
			name:    "created_cancel",
			from:    lifecycle.StatusCreated,
			trigger: lifecycle.TriggerCancel,
			want:    lifecycle.StatusCancelled,
		},
		{
			name:    "invoiced_complete",
			from:    lifecycle.StatusInvoiced,
			trigger: lifecycle.TriggerComplete,
			want:    lifecycle.StatusCompleted,
		},
		{
			name:    "invoiced_generate_pdf_again",
			from:    lifecycle.StatusInvoiced,
			trigger: lifecycle.TriggerGeneratePDF,
			wantErr: lifecycle.ErrInvalidTransition,
		},
		{
			name:    "invoiced_pay",
			from:    lifecycle.StatusInvoiced,
			trigger: lifecycle.TriggerPay,
			wantErr: lifecycle.ErrInvalidTransition,
		},
		{
			name:    "paid_pay_again",
			from:    lifecycle.StatusPaid,
			trigger: lifecycle.TriggerPay,
			wantErr: lifecycle.ErrInvalidTransition,
		},
		{
			name:    "paid_cancel",
			from:    lifecycle.StatusPaid,
			trigger: lifecycle.TriggerCancel,
			wantErr: lifecycle.ErrInvalidTransition,
		},
		{
			name:    "cancelled_complete",
			from:    lifecycle.StatusCancelled,
			trigger: lifecycle.TriggerComplete,
			wantErr: lifecycle.ErrInvalidTransition,
		},
		{
			name:    "completed_generate_pdf",
			from:    lifecycle.StatusCompleted,
			trigger: lifecycle.TriggerGeneratePDF,
			wantErr: lifecycle.ErrInvalidTransition,
		},
		{
			name:    "unknown_status",
			from:    lifecycle.Status("draft"),
			trigger: lifecycle.TriggerPay,
			wantErr: lifecycle.ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := lifecycle.Fire(tt.from, tt.trigger)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.from, got, "status must not move on a rejected trigger")
				assert.False(t, lifecycle.CanFire(tt.from, tt.trigger))
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, lifecycle.CanFire(tt.from, tt.trigger))
		})
	}
}

func TestTerminalStatusesPermitNothing(t *testing.T) {
	for _, status := range []lifecycle.Status{
		lifecycle.StatusCompleted,
		lifecycle.StatusPaid,
		lifecycle.StatusCancelled,
	} {
		assert.True(t, status.IsTerminal())
		assert.Empty(t, lifecycle.PermittedTriggers(status))
		assert.False(t, lifecycle.CanEdit(status))
		assert.False(t, lifecycle.CanDelete(status))
	}
}

func TestEditAndDeleteGuards(t *testing.T) {
	assert.True(t, lifecycle.CanEdit(lifecycle.StatusCreated))
	assert.True(t, lifecycle.CanDelete(lifecycle.StatusCreated))

	// Once a document exists the invoice is locked for editing
	assert.False(t, lifecycle.CanEdit(lifecycle.StatusInvoiced))
	assert.False(t, lifecycle.CanDelete(lifecycle.StatusInvoiced))
}

func TestPermittedTriggers(t *testing.T) {
	created := lifecycle.PermittedTriggers(lifecycle.StatusCreated)
	assert.ElementsMatch(t, []lifecycle.Trigger{
		lifecycle.TriggerGeneratePDF,
		lifecycle.TriggerComplete,
		lifecycle.TriggerPay,
		lifecycle.TriggerCancel,
	}, created)

	invoiced := lifecycle.PermittedTriggers(lifecycle.StatusInvoiced)
	assert.Equal(t, []lifecycle.Trigger{lifecycle.TriggerComplete}, invoiced)
}
