// Package elbrecord parses lines from AWS Elastic Load Balancer (classic)
// access log files into structured records.
//
// The rest of the pipeline treats this parser as an opaque collaborator:
// it only needs a timestamp, a client IPv4 address, and a request URL out
// of every successfully parsed line.
package elbrecord

import (
	"fmt"
	"net"
	"strings"
	"time"
)

// Record is the subset of an ELB access log line the aggregation
// pipeline cares about.
type Record struct {
	Timestamp     time.Time
	ClientAddress net.IP
	RequestURL    string
}

// ParseError reports that a raw log line did not match the expected
// ELB access log grammar. The raw text is preserved so the caller can
// write it to a diagnostic sink.
type ParseError struct {
	Line   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse record: %s: %q", e.Reason, e.Line)
}

// minFieldCount is the fewest whitespace-separated fields a line may
// split into: the eleven fields preceding the quoted request plus at
// least one from the request itself. A classic ELB access log line is:
//
//	timestamp elb client:port backend:port request_processing_time
//	backend_processing_time response_processing_time elb_status_code
//	backend_status_code received_bytes sent_bytes "request" "user_agent"
//	ssl_cipher ssl_protocol
const minFieldCount = 12

// ParseRecord parses one line of an ELB access log. It returns a
// *ParseError (never a bare error) on any malformed line so callers can
// recover the original text for logging.
func ParseRecord(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) < minFieldCount {
		return Record{}, &ParseError{Line: line, Reason: "too few fields"}
	}

	ts, err := time.Parse(time.RFC3339Nano, fields[0])
	if err != nil {
		return Record{}, &ParseError{Line: line, Reason: "bad timestamp"}
	}

	host, _, err := net.SplitHostPort(fields[2])
	if err != nil {
		return Record{}, &ParseError{Line: line, Reason: "bad client address"}
	}
	ip := net.ParseIP(host)
	if ip == nil || ip.To4() == nil {
		return Record{}, &ParseError{Line: line, Reason: "client address is not IPv4"}
	}

	requestStart := strings.Index(line, "\"")
	if requestStart < 0 {
		return Record{}, &ParseError{Line: line, Reason: "missing quoted request"}
	}
	requestEnd := strings.Index(line[requestStart+1:], "\"")
	if requestEnd < 0 {
		return Record{}, &ParseError{Line: line, Reason: "unterminated quoted request"}
	}
	request := line[requestStart+1 : requestStart+1+requestEnd]

	requestParts := strings.Fields(request)
	if len(requestParts) < 2 {
		return Record{}, &ParseError{Line: line, Reason: "malformed request line"}
	}

	return Record{
		Timestamp:     ts,
		ClientAddress: ip.To4(),
		RequestURL:    requestParts[1],
	}, nil
}
