package lnd

import (
	"fmt"
	"regexp"
)

const APIVersion = "v1"

// hostname with a 2-4 letter tld or a dotted quad, optionally followed by a port
var hostPattern = regexp.MustCompile(
	`(?i)^(([a-z0-9\-.]*)\.(([a-z]{2,4})|([0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}))|localhost)(:[0-9]{2,5})?$`,
)

// ValidHost reports whether host has the host[:port] shape accepted by SetHost.
func ValidHost(host string) bool {
	return hostPattern.MatchString(host)
}

func endpointFor(host string) string {
	return fmt.Sprintf("https://%s/%s/", host, APIVersion)
}
