package cluster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDefinition(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cluster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefinition(t *testing.T) {
	path := writeDefinition(t, `
name: bolt
image: graphdb:latest
auth: user:password
machines:
  - name: a
    mode: CORE
    boltPort: 17687
    httpPort: 17474
    debugPort: 15005
  - name: b
    mode: READ_REPLICA
    boltPort: 17688
    httpPort: 17475
`)

	def, err := LoadDefinition(path)
	require.NoError(t, err)

	assert.Equal(t, "bolt", def.Name)
	assert.Equal(t, "graphdb:latest", def.Image)
	assert.Equal(t, "user:password", def.Auth)
	require.Len(t, def.Machines, 2)
	assert.Equal(t, MachineDef{Name: "a", Mode: "CORE", BoltPort: 17687, HTTPPort: 17474, DebugPort: 15005}, def.Machines[0])
	assert.Equal(t, MachineDef{Name: "b", Mode: "READ_REPLICA", BoltPort: 17688, HTTPPort: 17475}, def.Machines[1])
}

func TestLoadDefinition_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing name",
			content: "image: graphdb:latest\nmachines:\n  - name: a\n    boltPort: 1\n    httpPort: 2\n",
			wantErr: "needs a name",
		},
		{
			name:    "missing image",
			content: "name: bolt\nmachines:\n  - name: a\n    boltPort: 1\n    httpPort: 2\n",
			wantErr: "needs an image",
		},
		{
			name:    "no machines",
			content: "name: bolt\nimage: graphdb:latest\n",
			wantErr: "at least one machine",
		},
		{
			name:    "unnamed machine",
			content: "name: bolt\nimage: graphdb:latest\nmachines:\n  - boltPort: 1\n    httpPort: 2\n",
			wantErr: "every machine needs a name",
		},
		{
			name:    "duplicate machine name",
			content: "name: bolt\nimage: graphdb:latest\nmachines:\n  - name: a\n    boltPort: 1\n    httpPort: 2\n  - name: a\n    boltPort: 3\n    httpPort: 4\n",
			wantErr: `duplicate machine name "a"`,
		},
		{
			name:    "missing ports",
			content: "name: bolt\nimage: graphdb:latest\nmachines:\n  - name: a\n",
			wantErr: `machine "a" needs boltPort and httpPort`,
		},
		{
			name:    "not yaml",
			content: "{{nope",
			wantErr: "invalid cluster definition",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadDefinition(writeDefinition(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadDefinition_MissingFile(t *testing.T) {
	_, err := LoadDefinition(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestDefaultDefinition(t *testing.T) {
	def := DefaultDefinition()

	require.NoError(t, def.validate())
	assert.Equal(t, "bolt", def.Name)
	require.Len(t, def.Machines, 1)
	assert.Equal(t, "a", def.Machines[0].Name)
}
