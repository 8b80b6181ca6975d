package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRebootCommand_Execute(t *testing.T) {
	t.Run("reboots by name", func(t *testing.T) {
		svc, log := newFakeService()
		svc.rebootResult["a"] = true
		cmd := NewRebootCommand(svc, &recordingOutput{})

		err := cmd.Execute(context.Background(), []string{"a"})

		require.NoError(t, err)
		assert.Equal(t, []string{"reboot a"}, log.events)
	})

	t.Run("reboots by role", func(t *testing.T) {
		svc, log := newFakeService()
		svc.rebootResult["w"] = true
		cmd := NewRebootCommand(svc, &recordingOutput{})

		err := cmd.Execute(context.Background(), []string{"w"})

		require.NoError(t, err)
		assert.Equal(t, []string{"reboot w"}, log.events)
	})

	t.Run("nothing matched", func(t *testing.T) {
		svc, _ := newFakeService()
		cmd := NewRebootCommand(svc, &recordingOutput{})

		err := cmd.Execute(context.Background(), []string{"z"})

		var paramErr *ParamError
		require.ErrorAs(t, err, &paramErr)
		assert.Equal(t, `Machine "z" not found`, err.Error())
	})

	t.Run("requires exactly one argument", func(t *testing.T) {
		svc, _ := newFakeService()
		cmd := NewRebootCommand(svc, &recordingOutput{})

		err := cmd.Execute(context.Background(), []string{"a", "b"})

		var paramErr *ParamError
		require.ErrorAs(t, err, &paramErr)
		assert.Equal(t, "usage: reboot <machine>", err.Error())
	})
}
