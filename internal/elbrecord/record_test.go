package elbrecord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goodRecord = `2015-08-15T23:43:05.302180Z elb 172.16.1.6:54814 172.16.1.5:9000 0.000039 0.145507 0.00003 200 200 0 7582 "GET http://h/?system=sys1 HTTP/1.1" "-" - - `

func TestParseRecord_GoodRecord(t *testing.T) {
	rec, err := ParseRecord(goodRecord)
	require.NoError(t, err)
	assert.Equal(t, "172.16.1.6", rec.ClientAddress.String())
	assert.Equal(t, "http://h/?system=sys1", rec.RequestURL)
	assert.Equal(t, 2015, rec.Timestamp.Year())
}

func TestParseRecord_BadRecord(t *testing.T) {
	_, err := ParseRecord("")
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "", parseErr.Line)
}

func TestParseRecord_BadTimestamp(t *testing.T) {
	line := `not-a-timestamp elb 172.16.1.6:54814 172.16.1.5:9000 0.000039 0.145507 0.00003 200 200 0 7582 "GET http://h/ HTTP/1.1" "-" - -`
	_, err := ParseRecord(line)
	require.Error(t, err)
}

func TestParseRecord_NonIPv4Client(t *testing.T) {
	line := `2015-08-15T23:43:05.302180Z elb [::1]:54814 172.16.1.5:9000 0.000039 0.145507 0.00003 200 200 0 7582 "GET http://h/ HTTP/1.1" "-" - -`
	_, err := ParseRecord(line)
	require.Error(t, err)
}
