package database

import (
	"net/url"
	"strings"
)

// EncodeDSNCredentials percent-encodes the userinfo section of a
// URL-style DSN so passwords containing '@' or '/' survive parsing.
// Keyword/value DSNs (host=... user=...) pass through untouched.
func EncodeDSNCredentials(dsn string) string {
	schemeIdx := strings.Index(dsn, "://")
	if schemeIdx < 0 {
		return dsn
	}

	rest := dsn[schemeIdx+3:]
	// The host starts after the LAST '@'; everything before it is
	// credentials, which may themselves contain '@'.
	atIdx := strings.LastIndex(rest, "@")
	if atIdx < 0 {
		return dsn
	}

	userinfo := rest[:atIdx]
	host := rest[atIdx+1:]

	var user, pass string
	if colonIdx := strings.Index(userinfo, ":"); colonIdx >= 0 {
		user = userinfo[:colonIdx]
		pass = userinfo[colonIdx+1:]
		userinfo = url.QueryEscape(user) + ":" + url.QueryEscape(pass)
	} else {
		userinfo = url.QueryEscape(userinfo)
	}

	return dsn[:schemeIdx+3] + userinfo + "@" + host
}
