//go:build !linux

package relay

import (
	"errors"
	"net"
	"time"
)

func roundTrip(net.Conn) (time.Duration, error) {
	return 0, errors.ErrUnsupported
}
