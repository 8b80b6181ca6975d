package cluster

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// routerSpec binds a spec's web port to the test server's listen port.
func routerSpec(t *testing.T, srv *httptest.Server) MachineSpec {
	t.Helper()
	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)
	return MachineSpec{Name: "a", FQName: "a.11aa22b", BoltPort: 17687, HTTPPort: port}
}

func TestHTTPConnector_RefreshRoutingTable(t *testing.T) {
	var gotDatabase []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/routing", r.URL.Path)
		gotDatabase = append(gotDatabase, r.URL.Query().Get("database"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"routers": ["localhost:17687"],
			"readers": ["localhost:17688", "localhost:17689"],
			"writers": ["localhost:17687"]
		}`))
	}))
	defer srv.Close()

	cx, err := NewHTTPConnector(routerSpec(t, srv))
	require.NoError(t, err)
	defer cx.Close()

	table, err := cx.RefreshRoutingTable("")
	require.NoError(t, err)
	assert.Equal(t, []string{"localhost:17687"}, table.Routers)
	assert.Equal(t, []string{"localhost:17688", "localhost:17689"}, table.Readers)
	assert.Equal(t, []string{"localhost:17687"}, table.Writers)

	_, err = cx.RefreshRoutingTable("movies")
	require.NoError(t, err)

	assert.Equal(t, []string{"", "movies"}, gotDatabase)
}

func TestHTTPConnector_RefreshFailures(t *testing.T) {
	t.Run("non-200 answer", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		cx, err := NewHTTPConnector(routerSpec(t, srv))
		require.NoError(t, err)
		defer cx.Close()

		_, err = cx.RefreshRoutingTable("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 404")
	})

	t.Run("unparsable body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer srv.Close()

		cx, err := NewHTTPConnector(routerSpec(t, srv))
		require.NoError(t, err)
		defer cx.Close()

		_, err = cx.RefreshRoutingTable("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode routing table")
	})
}

func TestHTTPConnector_RouterProfiles(t *testing.T) {
	spec := MachineSpec{Name: "a", FQName: "a.11aa22b", BoltPort: 17687, HTTPPort: 17474}
	cx, err := NewHTTPConnector(spec)
	require.NoError(t, err)
	defer cx.Close()

	assert.Equal(t, []string{"localhost:17687"}, cx.RouterProfiles())
}
