package signature

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha256"
	"encoding/base64"
	"net/url"
	"strings"
)

// rfc3986Fixups covers the characters that form encoders leave alone or
// encode differently from RFC 3986.
var rfc3986Fixups = strings.NewReplacer(
	"'", "%27",
	"*", "%2A",
	"(", "%28",
	")", "%29",
	" ", "%20",
)

// HMACSHA256 signs the input string with the given secret key and returns
// the standard base64 encoding of the raw digest.
func HMACSHA256(data, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(data))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// PercentEncode encodes s per RFC 3986: unreserved characters
// (A-Z a-z 0-9 - _ . ~) pass through, everything else becomes %XX.
// Colons in date values therefore always appear as %3A.
func PercentEncode(s string) string {
	return rfc3986Fixups.Replace(strings.ReplaceAll(url.QueryEscape(s), "+", "%20"))
}

// ApplyRFC3986 rewrites the characters listed in rfc3986Fixups inside an
// already assembled string.
func ApplyRFC3986(s string) string {
	return rfc3986Fixups.Replace(s)
}

// EncodeSignature percent-encodes a base64 signature for transmission
// ('/' -> %2F, '=' -> %3D, '+' -> %2B).
func EncodeSignature(sig string) string {
	return PercentEncode(sig)
}

// ContentMD5 returns the base64 encoded MD5 digest of body.
func ContentMD5(body []byte) string {
	sum := md5.Sum(body)
	return base64.StdEncoding.EncodeToString(sum[:])
}
