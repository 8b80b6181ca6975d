package cluster

import (
	"fmt"
	"os/exec"
	"sort"
	"strings"

	"boltyard/pkg/logging"
)

// Ports inside the container that a spec's host ports publish.
const (
	containerBoltPort  = 7687
	containerHTTPPort  = 7474
	containerDebugPort = 5005
)

const dockerSubsystem = "Docker"

// Runtime starts and manages the containers behind live machines.
type Runtime interface {
	// Start runs a detached container for spec and returns its handle.
	Start(spec MachineSpec, image string, env map[string]string) (Container, error)

	// Remove force-removes the container.
	Remove(c Container) error

	// Restart restarts the container in place.
	Restart(c Container) error
}

// DockerRuntime drives containers through the docker command line client.
type DockerRuntime struct {
	bin string
}

// NewDockerRuntime returns a runtime backed by the docker CLI.
func NewDockerRuntime() *DockerRuntime {
	return &DockerRuntime{bin: "docker"}
}

func (r *DockerRuntime) Start(spec MachineSpec, image string, env map[string]string) (Container, error) {
	args := runArgs(spec, image, env)
	logging.Debug(dockerSubsystem, "running %s %s", r.bin, strings.Join(args, " "))
	out, err := exec.Command(r.bin, args...).Output()
	if err != nil {
		return nil, fmt.Errorf("docker run failed for %s: %w", spec.FQName, err)
	}
	return &dockerContainer{bin: r.bin, id: strings.TrimSpace(string(out))}, nil
}

func (r *DockerRuntime) Remove(c Container) error {
	return dockerExec(r.bin, "rm", "--force", c.ShortID())
}

func (r *DockerRuntime) Restart(c Container) error {
	return dockerExec(r.bin, "restart", c.ShortID())
}

// runArgs builds the docker run argument list for spec. Config and env
// keys are emitted in sorted order so invocations are reproducible.
func runArgs(spec MachineSpec, image string, env map[string]string) []string {
	args := []string{
		"run", "--detach",
		"--name", spec.FQName,
		"--publish", fmt.Sprintf("%d:%d", spec.BoltPort, containerBoltPort),
		"--publish", fmt.Sprintf("%d:%d", spec.HTTPPort, containerHTTPPort),
		"--publish", fmt.Sprintf("%d:%d", spec.DebugPort, containerDebugPort),
	}
	for _, key := range sortedKeys(spec.Config) {
		args = append(args, "--env", configToEnv(key)+"="+spec.Config[key])
	}
	for _, key := range sortedKeys(env) {
		args = append(args, "--env", key+"="+env[key])
	}
	return append(args, image)
}

// configToEnv converts a dotted config key to the container image's
// environment convention: "dbms.mode" becomes "GRAPHDB_dbms_mode".
func configToEnv(key string) string {
	return "GRAPHDB_" + strings.ReplaceAll(key, ".", "_")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// dockerContainer is the live handle for one docker container.
type dockerContainer struct {
	bin string
	id  string
}

func (c *dockerContainer) ShortID() string {
	if len(c.id) > 12 {
		return c.id[:12]
	}
	return c.id
}

func (c *dockerContainer) Logs() (string, error) {
	out, err := exec.Command(c.bin, "logs", c.id).CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("docker logs failed for %s: %w", c.ShortID(), err)
	}
	return string(out), nil
}

func (c *dockerContainer) Pause() error {
	return dockerExec(c.bin, "pause", c.id)
}

func (c *dockerContainer) Unpause() error {
	return dockerExec(c.bin, "unpause", c.id)
}

func dockerExec(bin string, args ...string) error {
	logging.Debug(dockerSubsystem, "running %s %s", bin, strings.Join(args, " "))
	if out, err := exec.Command(bin, args...).CombinedOutput(); err != nil {
		return fmt.Errorf("%s %s failed: %s: %w", bin, args[0], strings.TrimSpace(string(out)), err)
	}
	return nil
}
