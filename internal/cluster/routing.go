package cluster

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"boltyard/pkg/logging"

	"github.com/hashicorp/go-retryablehttp"
)

const routingSubsystem = "Routing"

// RoutingTable groups the cluster's endpoints by capability, as reported
// by one router.
type RoutingTable struct {
	Routers []string `json:"routers"`
	Readers []string `json:"readers"`
	Writers []string `json:"writers"`
}

// Connector is a transient routing-capable connection to one router.
// Callers own the connector's lifetime and must Close it regardless of
// how a refresh terminates.
type Connector interface {
	// RefreshRoutingTable fetches a fresh routing table, optionally
	// scoped to a named database. An empty name means the default
	// database.
	RefreshRoutingTable(database string) (*RoutingTable, error)

	// RouterProfiles returns the router endpoints the connector knows.
	RouterProfiles() []string

	// Close releases the connection.
	Close() error
}

// ConnectorFactory opens a Connector against one router spec.
type ConnectorFactory func(router MachineSpec) (Connector, error)

// httpConnector fetches routing tables over the router's web port.
type httpConnector struct {
	spec   MachineSpec
	client *retryablehttp.Client
}

// NewHTTPConnector opens a routing connector against the router's web
// port.
func NewHTTPConnector(router MachineSpec) (Connector, error) {
	client := retryablehttp.NewClient()
	client.Logger = nil
	client.RetryMax = 2
	return &httpConnector{spec: router, client: client}, nil
}

func (c *httpConnector) RefreshRoutingTable(database string) (*RoutingTable, error) {
	u := c.spec.HTTPURI() + "/routing"
	if database != "" {
		u += "?database=" + url.QueryEscape(database)
	}
	logging.Debug(routingSubsystem, "GET %s", u)

	resp, err := c.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("routing refresh against %s failed: %w", c.spec.FQName, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("routing refresh against %s answered with status %d", c.spec.FQName, resp.StatusCode)
	}

	var table RoutingTable
	if err := json.NewDecoder(resp.Body).Decode(&table); err != nil {
		return nil, fmt.Errorf("failed to decode routing table from %s: %w", c.spec.FQName, err)
	}
	return &table, nil
}

func (c *httpConnector) RouterProfiles() []string {
	return []string{c.spec.BoltAddress()}
}

func (c *httpConnector) Close() error {
	c.client.HTTPClient.CloseIdleConnections()
	return nil
}
