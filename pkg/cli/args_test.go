package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleph-Alpha/knn-hammer/pkg/hammer"
)

func boolPtr(b bool) *bool { return &b }

func TestParseInvocation(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		target Target
		inv    hammer.Invocation
	}{
		{
			name:   "plain",
			args:   []string{"localhost", "ingest", "i", "f", "4", "10"},
			target: Target{Host: "localhost"},
			inv:    hammer.Invocation{Case: "ingest", Args: []string{"i", "f", "4", "10"}},
		},
		{
			name:   "security true",
			args:   []string{"localhost", "true", "stats"},
			target: Target{Host: "localhost", Security: boolPtr(true)},
			inv:    hammer.Invocation{Case: "stats", Args: []string{}},
		},
		{
			name:   "security insecure",
			args:   []string{"localhost", "Insecure", "search", "i", "f", "4", "1", "1", "1"},
			target: Target{Host: "localhost", Security: boolPtr(false)},
			inv:    hammer.Invocation{Case: "search", Args: []string{"i", "f", "4", "1", "1", "1"}},
		},
		{
			name:   "security secure",
			args:   []string{"10.0.0.1", "secure", "get_model", "m"},
			target: Target{Host: "10.0.0.1", Security: boolPtr(true)},
			inv:    hammer.Invocation{Case: "get_model", Args: []string{"m"}},
		},
		{
			name:   "host with port",
			args:   []string{"localhost:9200", "stats"},
			target: Target{Host: "localhost", Port: 9200},
			inv:    hammer.Invocation{Case: "stats", Args: []string{}},
		},
		{
			name:   "ipv6 with port and literal",
			args:   []string{"[::1]:9201", "secure", "nodes"},
			target: Target{Host: "::1", Port: 9201, Security: boolPtr(true)},
			inv:    hammer.Invocation{Case: "nodes", Args: []string{}},
		},
		{
			name:   "bracketed ipv6 without port",
			args:   []string{"[::1]", "stats"},
			target: Target{Host: "::1"},
			inv:    hammer.Invocation{Case: "stats", Args: []string{}},
		},
		{
			name:   "unknown case is left to the driver",
			args:   []string{"localhost", "explode"},
			target: Target{Host: "localhost"},
			inv:    hammer.Invocation{Case: "explode", Args: []string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, inv, err := ParseInvocation(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.target, target)
			assert.Equal(t, tt.inv, inv)
		})
	}
}

func TestParseInvocation_Errors(t *testing.T) {
	for _, args := range [][]string{
		nil,
		{""},
		{"localhost"},
		{"localhost", "false"},
		{"localhost:", "stats"},
		{"localhost:http", "stats"},
		{"localhost:70000", "stats"},
		{":9200", "stats"},
	} {
		_, _, err := ParseInvocation(args)
		require.ErrorIs(t, err, hammer.ErrUsage, "args %q", args)
	}
}
