package commands_test

import (
	"testing"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewPlaceOrderCommand(3, 2, 2, "less spicy")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, int64(3), cmd.UserID())
		assert.Equal(t, int64(2), cmd.ItemID())
		assert.Equal(t, 2, cmd.Quantity())
		assert.Equal(t, "less spicy", cmd.Note())
	})

	t.Run("should allow empty note", func(t *testing.T) {
		cmd, err := commands.NewPlaceOrderCommand(3, 2, 1, "")

		require.NoError(t, err)
		assert.Empty(t, cmd.Note())
	})

	t.Run("should fail without user id", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(0, 2, 1, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "userId")
	})

	t.Run("should fail without item id", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(3, 0, 1, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "itemId")
	})

	t.Run("should fail with non-positive quantity", func(t *testing.T) {
		for _, quantity := range []int{0, -1, -100} {
			_, err := commands.NewPlaceOrderCommand(3, 2, quantity, "")

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), "quantity")
		}
	})

	t.Run("unconstructed command fails validation", func(t *testing.T) {
		var cmd commands.PlaceOrderCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.Equal(t, commands.ErrPlaceOrderCommandIsNotConstructed, err)
	})
}
