// Command dnsdig sends a single DNS query over UDP, retrying over TCP when
// the response is truncated, and prints the answer section.
package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"sort"
	"time"

	"github.com/anvere/dnswire/dnsmsg"
	"github.com/anvere/dnswire/internal/logging"
)

func main() {
	var (
		server   = flag.String("server", "8.8.8.8:53", "DNS server HOST:PORT")
		name     = flag.String("name", "example.com", "Query name")
		qtype    = flag.Uint("qtype", uint(dnsmsg.TypeA), "Query type (numeric, A=1)")
		timeout  = flag.Duration("timeout", 2*time.Second, "Timeout")
		recvSize = flag.Int("recv-size", 2048, "UDP receive buffer size")
		logLevel = flag.String("log-level", "warn", "Log level (debug, info, warn, error)")
		quiet    = flag.Bool("quiet", false, "Suppress output (exit status indicates success)")
	)
	flag.Parse()

	logger := logging.Configure(logging.Config{Level: *logLevel})

	resp, truncated, err := queryUDP(*server, *name, dnsmsg.RRType(*qtype), *timeout, *recvSize)
	if err != nil {
		if !*quiet {
			fmt.Fprintf(os.Stderr, "dnsdig: %v\n", err)
		}
		os.Exit(1)
	}
	if truncated {
		logger.Debug("udp response truncated, retrying over tcp")
		resp, err = queryTCP(*server, *name, dnsmsg.RRType(*qtype), *timeout)
		if err != nil {
			if !*quiet {
				fmt.Fprintf(os.Stderr, "dnsdig: tcp retry: %v\n", err)
			}
			os.Exit(1)
		}
	}
	if *quiet {
		return
	}

	fmt.Printf("id=%d rcode=%s answers=%d authorities=%d additionals=%d\n",
		resp.ID, resp.ReturnCode, len(resp.Answers), len(resp.Authorities), len(resp.Additional))

	rows := make([]string, 0, len(resp.Answers))
	for _, rr := range resp.Answers {
		rows = append(rows, formatRR(rr))
	}
	sort.Strings(rows)
	for _, s := range rows {
		fmt.Println(s)
	}
}

func buildQuery(name string, qtype dnsmsg.RRType) dnsmsg.Message {
	return dnsmsg.Message{
		ID:               uint16(time.Now().UnixNano()) | 1,
		Type:             dnsmsg.Query,
		RecursionDesired: true,
		Questions: []dnsmsg.Question{
			{Name: name, Type: qtype, Class: dnsmsg.ClassIN},
		},
	}
}

func queryUDP(server, name string, qtype dnsmsg.RRType, timeout time.Duration, recvSize int) (dnsmsg.Message, bool, error) {
	addr, err := net.ResolveUDPAddr("udp", server)
	if err != nil {
		return dnsmsg.Message{}, false, err
	}
	c, err := net.DialUDP("udp", nil, addr)
	if err != nil {
		return dnsmsg.Message{}, false, err
	}
	defer c.Close()

	req, err := dnsmsg.EncodeUDP(buildQuery(name, qtype))
	if err != nil {
		return dnsmsg.Message{}, false, err
	}
	_ = c.SetDeadline(time.Now().Add(timeout))
	if _, err := c.Write(req); err != nil {
		return dnsmsg.Message{}, false, err
	}
	buf := make([]byte, recvSize)
	n, err := c.Read(buf)
	if err != nil {
		return dnsmsg.Message{}, false, err
	}
	resp, err := dnsmsg.DecodeUDP(buf[:n])
	if err != nil {
		return dnsmsg.Message{}, false, err
	}
	return resp, resp.Truncation, nil
}

func queryTCP(server, name string, qtype dnsmsg.RRType, timeout time.Duration) (dnsmsg.Message, error) {
	c, err := net.DialTimeout("tcp", server, timeout)
	if err != nil {
		return dnsmsg.Message{}, err
	}
	defer c.Close()

	req, err := dnsmsg.EncodeTCP(buildQuery(name, qtype))
	if err != nil {
		return dnsmsg.Message{}, err
	}
	_ = c.SetDeadline(time.Now().Add(timeout))
	if _, err := c.Write(req); err != nil {
		return dnsmsg.Message{}, err
	}

	var lenPrefix [2]byte
	if _, err := readFull(c, lenPrefix[:]); err != nil {
		return dnsmsg.Message{}, err
	}
	length := int(lenPrefix[0])<<8 | int(lenPrefix[1])
	body := make([]byte, 2+length)
	copy(body, lenPrefix[:])
	if _, err := readFull(c, body[2:]); err != nil {
		return dnsmsg.Message{}, err
	}
	return dnsmsg.DecodeTCP(body)
}

func readFull(c net.Conn, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := c.Read(buf[total:])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func formatRR(rr dnsmsg.ResourceRecord) string {
	h := rr.Header()
	name := h.Name
	if name == "" {
		name = "."
	}
	switch r := rr.(type) {
	case *dnsmsg.HostRecord:
		if r.IsV6 {
			return fmt.Sprintf("%s %d IN AAAA %s", name, h.TTL, r.IPv6.String())
		}
		return fmt.Sprintf("%s %d IN A %s", name, h.TTL, r.IPv4.String())
	case *dnsmsg.AliasRecord:
		return fmt.Sprintf("%s %d IN CNAME %s", name, h.TTL, r.Target)
	case *dnsmsg.PointerRecord:
		return fmt.Sprintf("%s %d IN PTR %s", name, h.TTL, r.Target)
	case *dnsmsg.ServiceRecord:
		return fmt.Sprintf("%s %d IN SRV %d %d %d %s", name, h.TTL, r.Priority, r.Weight, r.Port, r.Target)
	case *dnsmsg.TextRecord:
		return fmt.Sprintf("%s %d IN TXT %v", name, h.TTL, r.Strings)
	case *dnsmsg.StartOfAuthorityRecord:
		return fmt.Sprintf("%s %d IN SOA %s %s %d", name, h.TTL, r.MName, r.RName, r.Serial)
	}
	return fmt.Sprintf("%s %d IN %s (opaque)", name, h.TTL, h.Type)
}
