//go:build integration

package hammer

import (
	"context"
	"fmt"
	"io"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/tidwall/gjson"

	"github.com/Aleph-Alpha/knn-hammer/pkg/opensearch"
)

// createOpenSearchContainer starts a single-node cluster with the security
// plugin disabled and returns its host and mapped port.
func createOpenSearchContainer(ctx context.Context) (testcontainers.Container, string, int, error) {
	port, err := getFreePort()
	if err != nil {
		return nil, "", 0, fmt.Errorf("could not get free port: %w", err)
	}

	portBindings := nat.PortMap{
		"9200/tcp": []nat.PortBinding{{HostPort: strconv.Itoa(port)}},
	}

	req := testcontainers.ContainerRequest{
		Image: "opensearchproject/opensearch:2.11.1",
		Env: map[string]string{
			"discovery.type":          "single-node",
			"DISABLE_SECURITY_PLUGIN": "true",
			"OPENSEARCH_JAVA_OPTS":    "-Xms512m -Xmx512m",
		},
		ExposedPorts: []string{"9200/tcp"},
		HostConfigModifier: func(cfg *container.HostConfig) {
			cfg.PortBindings = portBindings
		},
		WaitingFor: wait.ForHTTP("/_cluster/health").
			WithPort("9200/tcp").
			WithStartupTimeout(3 * time.Minute),
	}

	containerInstance, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, "", 0, fmt.Errorf("failed to start OpenSearch container: %w", err)
	}

	host, err := containerInstance.Host(ctx)
	if err != nil {
		_ = containerInstance.Terminate(ctx)
		return nil, "", 0, fmt.Errorf("failed to get host: %w", err)
	}
	return containerInstance, host, port, nil
}

func getFreePort() (int, error) {
	addr, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		return 0, err
	}
	defer func() { _ = addr.Close() }()
	return addr.Addr().(*net.TCPAddr).Port, nil
}

func TestIntegration_IngestAndSearch(t *testing.T) {
	ctx := context.Background()

	containerInstance, host, port, err := createOpenSearchContainer(ctx)
	require.NoError(t, err)
	defer func() { _ = containerInstance.Terminate(ctx) }()

	logger := permissiveLogger(t)
	client, err := opensearch.NewClient(opensearch.Config{
		Connection: opensearch.ConnectionConfig{Host: host, Port: port, RequestTimeout: time.Minute},
	}, logger, nil)
	require.NoError(t, err)
	defer client.Close()

	driver, err := NewDriver(DefaultConfig(), client, logger, io.Discard)
	require.NoError(t, err)

	_, err = driver.AddTrainData(ctx, IngestRequest{Index: "vectors", Field: "vec", Dimension: 8, DocCount: 650})
	require.NoError(t, err)

	resp, err := client.CatIndices(ctx)
	require.NoError(t, err)
	assert.Contains(t, string(resp), "vectors")

	count, err := client.Search(ctx, "vectors", map[string]any{"size": 0, "track_total_hits": true}, "")
	require.NoError(t, err)
	assert.Equal(t, int64(650), gjson.GetBytes(count, "hits.total.value").Int())

	n, err := driver.RunQueries(ctx, QueryRequest{Index: "vectors", Field: "vec", Dimension: 8, K: 5, Size: 5, NumQueries: 20})
	require.NoError(t, err)
	assert.Equal(t, 20, n)

	require.NoError(t, driver.Stats(ctx))
}
