package infra

import (
	"fmt"
	"net"
	"strconv"
)

// FindAvailablePort returns the first port at or above start that can be bound.
func FindAvailablePort(start int) (int, error) {
	for port := start; port <= 65535; port++ {
		l, err := net.Listen("tcp", ":"+strconv.Itoa(port))
		if err != nil {
			continue
		}
		_ = l.Close()
		return port, nil
	}
	return 0, fmt.Errorf("no available port at or above %d", start)
}
