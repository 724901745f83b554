// Package validators holds request-level checks that go beyond struct
// binding tags.
package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid reports whether the domain part of email resolves at
// all: an MX record first, then any A/AAAA record as a fallback for domains
// that receive mail on the bare host. It is a liveness probe for the domain,
// not proof the mailbox exists.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
