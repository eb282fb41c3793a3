//go:build linux

package relay

import (
	"errors"
	"net"
	"time"

	"golang.org/x/sys/unix"
)

var errNotTCP = errors.New("relay: not a TCP connection")

// roundTrip reads the kernel's smoothed round trip estimate for conn.
func roundTrip(conn net.Conn) (time.Duration, error) {
	tcp, ok := conn.(*net.TCPConn)
	if !ok {
		return 0, errNotTCP
	}
	info, err := tcpInfo(tcp)
	if err != nil {
		return 0, err
	}
	return time.Duration(info.Rtt) * time.Microsecond, nil
}

func tcpInfo(conn *net.TCPConn) (*unix.TCPInfo, error) {
	raw, err := conn.SyscallConn()
	if err != nil {
		return nil, err
	}

	var info *unix.TCPInfo
	ctrlErr := raw.Control(func(fd uintptr) {
		info, err = unix.GetsockoptTCPInfo(int(fd), unix.IPPROTO_TCP, unix.TCP_INFO)
	})
	switch {
	case ctrlErr != nil:
		return nil, ctrlErr
	case err != nil:
		return nil, err
	}

	return info, nil
}
