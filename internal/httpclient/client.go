// Package httpclient builds the HTTP client used to fetch remote schema
// documents: bounded by a timeout and a redirect limit, and optionally
// refusing private and loopback hosts.
package httpclient

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/teranos/protodts/errors"
)

// Defaults applied by New when Options leaves a field zero.
const (
	DefaultTimeout      = 30 * time.Second
	DefaultMaxRedirects = 10
)

// Options configures New.
type Options struct {
	Timeout      time.Duration
	MaxRedirects int
	// BlockPrivate refuses loopback, link-local and RFC 1918 hosts, both by
	// name and after DNS resolution.
	BlockPrivate bool
}

// New returns an http.Client enforcing opts on every request and redirect.
func New(opts Options) *http.Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxRedirects <= 0 {
		opts.MaxRedirects = DefaultMaxRedirects
	}

	client := &http.Client{Timeout: opts.Timeout}
	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		if len(via) >= opts.MaxRedirects {
			return errors.Newf("stopped after %d redirects", opts.MaxRedirects)
		}
		if err := ValidateURL(req.URL, opts.BlockPrivate); err != nil {
			return errors.Wrap(err, "redirect blocked")
		}
		return nil
	}

	if opts.BlockPrivate {
		dialer := &net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}
		client.Transport = &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			DialContext:           pinnedDial(net.DefaultResolver.LookupIP, dialer.DialContext),
			MaxIdleConns:          10,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		}
	}

	return client
}

type lookupFunc func(ctx context.Context, network, host string) ([]net.IP, error)

type dialFunc func(ctx context.Context, network, addr string) (net.Conn, error)

// pinnedDial resolves the host once, refuses private addresses and dials the
// vetted IP itself, so a second lookup cannot return a different answer.
func pinnedDial(lookup lookupFunc, dial dialFunc) dialFunc {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		host, port, err := net.SplitHostPort(addr)
		if err != nil {
			return nil, errors.Wrap(err, "invalid address")
		}
		ips, err := lookup(ctx, "ip", host)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to resolve host %q", host)
		}
		if len(ips) == 0 {
			return nil, errors.Newf("no addresses for host %q", host)
		}
		for _, ip := range ips {
			if IsPrivateIP(ip) {
				return nil, errors.Newf("private IP address blocked: %s", ip)
			}
		}
		return dial(ctx, network, net.JoinHostPort(ips[0].String(), port))
	}
}

// ValidateURL rejects non-http(s) schemes and URLs carrying userinfo. With
// blockPrivate it also rejects localhost names and literal private IPs.
func ValidateURL(u *url.URL, blockPrivate bool) error {
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return errors.Newf("scheme %q not allowed (allowed: http, https)", scheme)
	}

	// http://trusted.example@10.0.0.1/ reads as one host and dials another
	if u.User != nil {
		return errors.New("URL contains credentials")
	}

	hostname := u.Hostname()
	if hostname == "" {
		return errors.New("URL missing hostname")
	}

	if blockPrivate {
		if isLocalhost(hostname) {
			return errors.New("localhost access blocked")
		}
		if ip := net.ParseIP(hostname); ip != nil && IsPrivateIP(ip) {
			return errors.Newf("private IP address blocked: %s", hostname)
		}
	}
	return nil
}

var privateBlocks = func() []*net.IPNet {
	cidrs := []string{
		"10.0.0.0/8",
		"172.16.0.0/12",
		"192.168.0.0/16",
		"127.0.0.0/8",
		"169.254.0.0/16",
		"0.0.0.0/8",
		"224.0.0.0/4",
		"240.0.0.0/4",
		"fc00::/7",
		"fec0::/10",
		"2001:db8::/32",
	}
	blocks := make([]*net.IPNet, 0, len(cidrs))
	for _, cidr := range cidrs {
		_, block, err := net.ParseCIDR(cidr)
		if err != nil {
			panic(err)
		}
		blocks = append(blocks, block)
	}
	return blocks
}()

// IsPrivateIP reports whether ip is loopback, link-local, multicast,
// unspecified or inside a private or reserved range.
func IsPrivateIP(ip net.IP) bool {
	if ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsMulticast() || ip.IsUnspecified() {
		return true
	}
	for _, block := range privateBlocks {
		if block.Contains(ip) {
			return true
		}
	}
	return false
}

func isLocalhost(hostname string) bool {
	hostname = strings.ToLower(hostname)
	return hostname == "localhost" ||
		hostname == "localhost.localdomain" ||
		strings.HasSuffix(hostname, ".localhost")
}
