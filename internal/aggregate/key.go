package aggregate

import (
	"fmt"
	"regexp"

	"github.com/ereichert/counter/internal/elbrecord"
)

// UndefinedSystem is the sentinel system name used when a request URL
// carries no system= query parameter.
const UndefinedSystem = "UNDEFINED_SYSTEM"

// Day is a UTC calendar date with no time component.
type Day struct {
	Year  int
	Month int
	Day   int
}

func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// IP is the dotted-quad IPv4 address of a client, held as four octets
// so that Key remains a comparable, hashable struct.
type IP [4]byte

func (ip IP) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", ip[0], ip[1], ip[2], ip[3])
}

// Key is the immutable triple every record is reduced to: the UTC day
// it occurred on, the client's IPv4 address, and the system name
// extracted from its request URL.
type Key struct {
	Day        Day
	ClientIP   IP
	SystemName string
}

var systemParamRegexp = regexp.MustCompile(`(?i)system=([^&]*)`)

// DeriveKey computes the aggregation key for a parsed record. The
// system name is the first capture of `system=([^&]*)` (case
// insensitive) in the request URL; an empty capture ("system=&...")
// yields the empty string, distinct from UndefinedSystem, which is
// used only when the parameter is absent entirely.
func DeriveKey(rec elbrecord.Record) Key {
	utc := rec.Timestamp.UTC()
	day := Day{Year: utc.Year(), Month: int(utc.Month()), Day: utc.Day()}

	ip4 := rec.ClientAddress.To4()
	var clientIP IP
	copy(clientIP[:], ip4)

	systemName := UndefinedSystem
	if m := systemParamRegexp.FindStringSubmatch(rec.RequestURL); m != nil {
		systemName = m[1]
	}

	return Key{Day: day, ClientIP: clientIP, SystemName: systemName}
}
