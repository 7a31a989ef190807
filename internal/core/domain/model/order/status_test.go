package order_test

import (
	"fmt"
	"testing"

	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/order"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Draft))
		assert.Equal(t, 2, int(order.Confirmed))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Draft,
			order.Confirmed,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				err := status.Validate()
				require.NoError(t, err)
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status is invalid")
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Status(-1),
			order.Status(3),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return correct string for valid statuses", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected string
		}{
			{order.Draft, "Draft"},
			{order.Confirmed, "Confirmed"},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("should return %s for %d", tc.expected, int(tc.status)), func(t *testing.T) {
				assert.Equal(t, tc.expected, tc.status.String())
			})
		}
	})

	t.Run("should return Unknown for invalid statuses", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Unknown,
			order.Status(-1),
			order.Status(3),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should return Unknown for status value %d", int(status)), func(t *testing.T) {
				assert.Equal(t, "Unknown", status.String())
			})
		}
	})
}

func TestStatus_Confirm(t *testing.T) {
	t.Run("should allow transition from Draft to Confirmed", func(t *testing.T) {
		status := order.Draft

		newStatus, err := status.Confirm()

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, newStatus)
	})

	t.Run("should reject transition from Confirmed", func(t *testing.T) {
		status := order.Confirmed

		newStatus, err := status.Confirm()

		require.Error(t, err)
		assert.Equal(t, order.Status(0), newStatus)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "Confirmed is not a valid status to confirm")
	})

	t.Run("should reject transition from Unknown", func(t *testing.T) {
		status := order.Unknown

		newStatus, err := status.Confirm()

		require.Error(t, err)
		assert.Equal(t, order.Status(0), newStatus)
	})
}
