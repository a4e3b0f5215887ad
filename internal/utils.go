package internal

import (
	"errors"
	"net"
)

var ErrNoServerIpNet = errors.New("ipnet could not be found")

// ServerIpNet returns the first IPv4 network of an interface that is up
// and not a loopback.
func ServerIpNet() (net.IPNet, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return net.IPNet{}, err
	}

	for _, iface := range ifaces {
		// If the flag is down
		if iface.Flags&net.FlagUp == 0 {
			continue
		}
		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			return net.IPNet{}, err
		}

		if ipnet, ok := firstIPv4Net(addrs); ok {
			return ipnet, nil
		}
	}

	return net.IPNet{}, ErrNoServerIpNet
}

func firstIPv4Net(addrs []net.Addr) (net.IPNet, bool) {
	for _, addr := range addrs {
		var ipnet net.IPNet

		switch v := addr.(type) {
		case *net.IPNet:
			ipnet = *v
		case *net.IPAddr:
			ipnet = net.IPNet{IP: v.IP, Mask: net.CIDRMask(32, 32)}
		default:
			continue
		}

		if ip4 := ipnet.IP.To4(); ip4 != nil && !ip4.IsLoopback() {
			return ipnet, true
		}
	}
	return net.IPNet{}, false
}
