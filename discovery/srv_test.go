package discovery

import (
	"errors"
	"net"
	"testing"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startDNS serves records on a loopback UDP port and returns its address.
func startDNS(t *testing.T, records map[string][]dns.RR) string {
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)

	mux := dns.NewServeMux()
	mux.HandleFunc(".", func(w dns.ResponseWriter, r *dns.Msg) {
		m := new(dns.Msg)
		m.SetReply(r)
		rrs, ok := records[r.Question[0].Name]
		if !ok {
			m.Rcode = dns.RcodeNameError
		}
		m.Answer = rrs
		w.WriteMsg(m)
	})

	started := make(chan struct{})
	srv := &dns.Server{PacketConn: pc, Handler: mux, NotifyStartedFunc: func() { close(started) }}
	go srv.ActivateAndServe()
	<-started
	t.Cleanup(func() { srv.Shutdown() })

	return pc.LocalAddr().String()
}

func srvRecord(t *testing.T, s string) dns.RR {
	rr, err := dns.NewRR(s)
	require.NoError(t, err)
	return rr
}

func TestResolveManagerURL(t *testing.T) {
	name := "_contractmgr._tcp.example.com."
	addr := startDNS(t, map[string][]dns.RR{
		name: {
			srvRecord(t, name+" 60 IN SRV 20 0 9000 backup.example.com."),
			srvRecord(t, name+" 60 IN SRV 10 5 8080 light.example.com."),
			srvRecord(t, name+" 60 IN SRV 10 50 8081 heavy.example.com."),
		},
	})

	url, err := ResolveManagerURL("_contractmgr._tcp.example.com", addr)
	require.NoError(t, err)
	assert.Equal(t, "http://heavy.example.com:8081", url)

	endpoints, err := ResolveManagers(name, addr)
	require.NoError(t, err)
	require.Len(t, endpoints, 3)
	assert.Equal(t, "light.example.com", endpoints[1].Target)
	assert.Equal(t, "backup.example.com", endpoints[2].Target)
}

func TestResolveManagerURLNoRecords(t *testing.T) {
	name := "_keepmgr._tcp.example.com."
	addr := startDNS(t, map[string][]dns.RR{
		name: {srvRecord(t, name+" 60 IN SRV 0 0 0 .")},
	})

	_, err := ResolveManagerURL(name, addr)
	assert.True(t, errors.Is(err, ErrNoManager), "got %v", err)
}

func TestResolveManagerURLNXDomain(t *testing.T) {
	addr := startDNS(t, map[string][]dns.RR{})

	_, err := ResolveManagerURL("_missing._tcp.example.com", addr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NXDOMAIN")
}

func TestEndpointURLIPv6(t *testing.T) {
	e := Endpoint{Target: "::1", Port: 80}
	assert.Equal(t, "http://[::1]:80", e.URL())
}
