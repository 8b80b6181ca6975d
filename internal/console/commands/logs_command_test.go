package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogsCommand_Execute(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantEvent string
		wantText  string
	}{
		{
			name:      "no argument shows the default machine's logs",
			args:      nil,
			wantEvent: "logs 0a1b2c3d4e5f",
			wantText:  "log output for a\n",
		},
		{
			name:      "named machine",
			args:      []string{"b"},
			wantEvent: "logs 5f4e3d2c1b0a",
			wantText:  "log output for b\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, log := newFakeService()
			out := &recordingOutput{}
			cmd := NewLogsCommand(svc, out)

			err := cmd.Execute(context.Background(), tt.args)

			require.NoError(t, err)
			assert.Equal(t, []string{tt.wantEvent}, log.events)
			assert.Equal(t, []string{tt.wantText}, out.lines)
		})
	}
}

func TestLogsCommand_UnknownMachine(t *testing.T) {
	svc, _ := newFakeService()
	cmd := NewLogsCommand(svc, &recordingOutput{})

	err := cmd.Execute(context.Background(), []string{"z"})

	var paramErr *ParamError
	require.ErrorAs(t, err, &paramErr)
	assert.Equal(t, `Machine "z" not found`, err.Error())
}
