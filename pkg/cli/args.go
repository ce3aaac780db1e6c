package cli

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/Aleph-Alpha/knn-hammer/pkg/hammer"
)

// Target is the cluster half of the command line.
type Target struct {
	Host string

	// Port is taken from a host:port argument; 0 when the host had none.
	Port int

	// Security is set when the command line carried a security literal
	// directly after the host.
	Security *bool
}

// ParseInvocation splits the positional arguments
//
//	<host> [<security_flag>] <case> <case-args...>
//
// into the target and the driver invocation. The security flag is one of
// true, false, secure or insecure (case-insensitive). The host may carry a
// port, as in localhost:9200 or [::1]:9200.
func ParseInvocation(args []string) (Target, hammer.Invocation, error) {
	if len(args) == 0 || args[0] == "" {
		return Target{}, hammer.Invocation{}, fmt.Errorf("%w: missing host", hammer.ErrUsage)
	}

	host, port, err := splitHostPort(args[0])
	if err != nil {
		return Target{}, hammer.Invocation{}, err
	}
	target := Target{Host: host, Port: port}
	rest := args[1:]

	if len(rest) > 0 {
		if secure, ok := parseSecurityLiteral(rest[0]); ok {
			target.Security = &secure
			rest = rest[1:]
		}
	}

	if len(rest) == 0 {
		return Target{}, hammer.Invocation{}, fmt.Errorf("%w: missing case (one of %s)", hammer.ErrUsage, strings.Join(hammer.Cases(), ", "))
	}

	return target, hammer.Invocation{Case: rest[0], Args: rest[1:]}, nil
}

func parseSecurityLiteral(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "true", "secure":
		return true, true
	case "false", "insecure":
		return false, true
	}
	return false, false
}

// splitHostPort accepts a bare host, a bracketed IPv6 literal or host:port.
func splitHostPort(s string) (string, int, error) {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
			return s[1 : len(s)-1], 0, nil
		}
		return s, 0, nil
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port < 1 || port > 65535 || host == "" {
		return "", 0, fmt.Errorf("%w: invalid host %q", hammer.ErrUsage, s)
	}
	return host, port, nil
}
