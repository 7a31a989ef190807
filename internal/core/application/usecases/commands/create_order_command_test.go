package commands_test

import (
	"testing"

	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/application/usecases/commands"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create command with valid parameters", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(validID, "SO0042", "Dupont SARL", "EUR")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(validID))
		assert.Equal(t, "SO0042", cmd.Reference())
		assert.Equal(t, "Dupont SARL", cmd.CustomerName())
		assert.Equal(t, "EUR", cmd.Currency())
	})

	t.Run("should return error for invalid order ID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewCreateOrderCommand(invalidID, "SO0042", "Dupont SARL", "EUR")

		require.Error(t, err)
	})

	t.Run("should return error for empty reference", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(validID, "", "Dupont SARL", "EUR")

		assert.ErrorIs(t, err, commands.ErrReferenceIsRequired)
	})

	t.Run("should return error for empty customer name", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(validID, "SO0042", "", "EUR")

		assert.ErrorIs(t, err, commands.ErrCustomerNameIsRequired)
	})

	t.Run("should return error for empty currency", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(validID, "SO0042", "Dupont SARL", "")

		assert.ErrorIs(t, err, commands.ErrCurrencyIsRequired)
	})

	t.Run("should fail validation for zero value command", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
