package discovery

import (
	"errors"
	"fmt"
	"net"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/miekg/dns"
)

// DefaultDNSServer is the local stub resolver.
const DefaultDNSServer = "127.0.0.53:53"

// ErrNoManager is returned when the SRV lookup yields no usable record.
var ErrNoManager = errors.New("no manager found in SRV records")

// Endpoint is a single manager advertised through an SRV record.
type Endpoint struct {
	Target   string
	Port     uint16
	Priority uint16
	Weight   uint16
}

// URL returns the http base URL of the endpoint.
func (e Endpoint) URL() string {
	return "http://" + net.JoinHostPort(e.Target, strconv.Itoa(int(e.Port)))
}

// ResolveManagers queries dnsServer for the SRV records of name and returns
// the endpoints ordered by ascending priority and, within a priority, by
// descending weight.
func ResolveManagers(name, dnsServer string) ([]Endpoint, error) {
	if dnsServer == "" {
		dnsServer = DefaultDNSServer
	}

	m1 := new(dns.Msg)
	m1.SetQuestion(dns.Fqdn(name), dns.TypeSRV)
	m1.RecursionDesired = true

	c := &dns.Client{Timeout: 5 * time.Second}
	in, _, err := c.Exchange(m1, dnsServer)
	if err != nil {
		return nil, fmt.Errorf("SRV lookup of %s: %w", name, err)
	}
	if in.Rcode != dns.RcodeSuccess {
		return nil, fmt.Errorf("SRV lookup of %s: %s", name, dns.RcodeToString[in.Rcode])
	}

	endpoints := make([]Endpoint, 0, len(in.Answer))
	for _, answer := range in.Answer {
		srv, ok := answer.(*dns.SRV)
		if !ok || srv.Target == "." {
			continue
		}
		endpoints = append(endpoints, Endpoint{
			Target:   strings.TrimSuffix(srv.Target, "."),
			Port:     srv.Port,
			Priority: srv.Priority,
			Weight:   srv.Weight,
		})
	}

	sort.SliceStable(endpoints, func(i, j int) bool {
		if endpoints[i].Priority != endpoints[j].Priority {
			return endpoints[i].Priority < endpoints[j].Priority
		}
		return endpoints[i].Weight > endpoints[j].Weight
	})

	return endpoints, nil
}

// ResolveManagerURL returns the base URL of the preferred manager advertised under name.
func ResolveManagerURL(name, dnsServer string) (string, error) {
	endpoints, err := ResolveManagers(name, dnsServer)
	if err != nil {
		return "", err
	}
	if len(endpoints) == 0 {
		return "", fmt.Errorf("%s: %w", name, ErrNoManager)
	}
	return endpoints[0].URL(), nil
}
