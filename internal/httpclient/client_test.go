package httpclient

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	client := New(Options{})
	assert.Equal(t, DefaultTimeout, client.Timeout)
	assert.Nil(t, client.Transport, "default transport unless private hosts are blocked")

	client = New(Options{Timeout: 5 * time.Second, BlockPrivate: true})
	assert.Equal(t, 5*time.Second, client.Timeout)
	assert.NotNil(t, client.Transport)
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name         string
		url          string
		blockPrivate bool
		errContains  string
	}{
		{name: "https", url: "https://raw.githubusercontent.com/ChromeDevTools/devtools-protocol/master/json/js_protocol.json"},
		{name: "http", url: "http://example.com/protocol.json"},
		{name: "localhost allowed by default", url: "http://localhost:8080/protocol.json"},
		{name: "file scheme", url: "file:///etc/passwd", errContains: "scheme"},
		{name: "ftp scheme", url: "ftp://example.com/protocol.json", errContains: "scheme"},
		{name: "credentials", url: "http://example.com@10.0.0.1/", errContains: "credentials"},
		{name: "missing host", url: "http:///protocol.json", errContains: "hostname"},
		{name: "localhost blocked", url: "http://localhost/protocol.json", blockPrivate: true, errContains: "localhost"},
		{name: "localhost subdomain blocked", url: "http://api.localhost/", blockPrivate: true, errContains: "localhost"},
		{name: "loopback blocked", url: "http://127.0.0.1/", blockPrivate: true, errContains: "private"},
		{name: "rfc1918 blocked", url: "http://192.168.1.10/", blockPrivate: true, errContains: "private"},
		{name: "public ip allowed", url: "http://8.8.8.8/", blockPrivate: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse(tt.url)
			require.NoError(t, err)

			err = ValidateURL(u, tt.blockPrivate)
			if tt.errContains == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestIsPrivateIP(t *testing.T) {
	tests := []struct {
		ip   string
		want bool
	}{
		{"10.1.2.3", true},
		{"172.16.0.1", true},
		{"172.32.0.1", false},
		{"192.168.0.1", true},
		{"127.0.0.1", true},
		{"169.254.169.254", true},
		{"0.0.0.0", true},
		{"224.0.0.1", true},
		{"8.8.8.8", false},
		{"::1", true},
		{"fe80::1", true},
		{"fd00::1", true},
		{"2001:db8::1", true},
		{"::ffff:10.0.0.1", true},
		{"2606:4700:4700::1111", false},
	}

	for _, tt := range tests {
		t.Run(tt.ip, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPrivateIP(net.ParseIP(tt.ip)))
		})
	}
}

func TestBlockPrivateRefusesLoopbackServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	resp, err := New(Options{}).Get(server.URL)
	require.NoError(t, err)
	resp.Body.Close()

	_, err = New(Options{BlockPrivate: true}).Get(server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "private IP address blocked")
}

func TestMaxRedirects(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, server.URL+"/again", http.StatusFound)
	}))
	defer server.Close()

	_, err := New(Options{MaxRedirects: 2}).Get(server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stopped after 2 redirects")
}

func TestPinnedDial(t *testing.T) {
	tests := []struct {
		name        string
		ips         []string
		wantAddr    string
		errContains string
	}{
		{name: "dials resolved address", ips: []string{"93.184.216.34"}, wantAddr: "93.184.216.34:443"},
		{name: "first of several", ips: []string{"2606:4700::1", "93.184.216.34"}, wantAddr: "[2606:4700::1]:443"},
		{name: "any private answer blocks", ips: []string{"93.184.216.34", "10.0.0.1"}, errContains: "private IP address blocked: 10.0.0.1"},
		{name: "loopback blocked", ips: []string{"127.0.0.1"}, errContains: "private IP address blocked"},
		{name: "no answers", errContains: "no addresses"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookups := 0
			lookup := func(_ context.Context, _, host string) ([]net.IP, error) {
				lookups++
				assert.Equal(t, "schemas.example", host)
				var ips []net.IP
				for _, s := range tt.ips {
					ips = append(ips, net.ParseIP(s))
				}
				return ips, nil
			}
			var dialed string
			dial := func(_ context.Context, _, addr string) (net.Conn, error) {
				dialed = addr
				client, server := net.Pipe()
				server.Close()
				return client, nil
			}

			conn, err := pinnedDial(lookup, dial)(context.Background(), "tcp", "schemas.example:443")
			assert.Equal(t, 1, lookups, "host is resolved exactly once")
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				assert.Empty(t, dialed, "nothing is dialed after a rejection")
				return
			}
			require.NoError(t, err)
			conn.Close()
			assert.Equal(t, tt.wantAddr, dialed, "the vetted IP is dialed, not the hostname")
		})
	}
}

func TestPinnedDialLookupError(t *testing.T) {
	lookup := func(context.Context, string, string) ([]net.IP, error) {
		return nil, &net.DNSError{Err: "no such host", Name: "schemas.example"}
	}
	dial := func(context.Context, string, string) (net.Conn, error) {
		t.Fatal("dial must not run when resolution fails")
		return nil, nil
	}

	_, err := pinnedDial(lookup, dial)(context.Background(), "tcp", "schemas.example:443")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `failed to resolve host "schemas.example"`)
}
