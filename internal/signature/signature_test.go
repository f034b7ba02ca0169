package signature

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHMACSHA256(t *testing.T) {
	sts := "POST\nmws.example.com\n/Orders/2013-09-01\n" +
		"AWSAccessKeyId=AK1&Action=GetServiceStatus&SellerId=SELLER1&SignatureMethod=HmacSHA256" +
		"&SignatureVersion=2&Timestamp=2020-01-01T00%3A00%3A00Z&Version=2013-09-01"

	assert.Equal(t, "UVCWHskoVxiOC68nsBlynhk6oT1s7wdKkiIYmvEpOmM=", HMACSHA256(sts, "secret"))
}

func TestPercentEncode(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"a b", "a%20b"},
		{"2020-01-01T00:00:00Z", "2020-01-01T00%3A00%3A00Z"},
		{"it's (x)*", "it%27s%20%28x%29%2A"},
		{"unreserved-_.~", "unreserved-_.~"},
		{"a+b/c=d", "a%2Bb%2Fc%3Dd"},
		{"ümlaut", "%C3%BCmlaut"},
		{"", ""},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got := PercentEncode(tc.in)
			assert.Equal(t, tc.want, got)

			decoded, err := url.PathUnescape(got)
			assert.NoError(t, err)
			assert.Equal(t, tc.in, decoded)
		})
	}
}

func TestApplyRFC3986(t *testing.T) {
	assert.Equal(t, "%27%2A%28%29%20", ApplyRFC3986("'*() "))
	assert.Equal(t, "A=b%3Ac", ApplyRFC3986("A=b%3Ac"))
}

func TestEncodeSignature(t *testing.T) {
	assert.Equal(t, "6GnCxzodK%2F5%2FU9fVb3DJ2BGEI1W6FjX1WHPvsKN4F5w%3D", EncodeSignature("6GnCxzodK/5/U9fVb3DJ2BGEI1W6FjX1WHPvsKN4F5w="))
	assert.Equal(t, "GWo82%2BPSHz%3D", EncodeSignature("GWo82+PSHz="))
}

func TestContentMD5(t *testing.T) {
	// md5("") = d41d8cd98f00b204e9800998ecf8427e
	assert.Equal(t, "1B2M2Y8AsgTpgAmY7PhCfg==", ContentMD5(nil))
	assert.Equal(t, "XUFAKrxLKna5cZ2REBfFkg==", ContentMD5([]byte("hello")))
}
