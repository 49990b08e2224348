package commands_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/application/usecases/commands"
)

func TestNewProcessPendingOrdersCommand_ValidInput(t *testing.T) {
	runID := uuid.New()
	cmd, err := commands.NewProcessPendingOrdersCommand(runID)
	require.NoError(t, err)
	assert.Equal(t, runID, cmd.RunID())
	assert.NoError(t, cmd.Validate())
}

func TestNewProcessPendingOrdersCommand_NilRunID(t *testing.T) {
	_, err := commands.NewProcessPendingOrdersCommand(uuid.Nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRunIDIsRequired)
}

func TestProcessPendingOrdersCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.ProcessPendingOrdersCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrProcessPendingOrdersCommandIsNotConstructed)
}
