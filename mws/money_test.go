package mws

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IvanTurko/mws-sdk-go/xmltree"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name    string
		xml     string
		wantNil bool
		wantErr bool
		want    string
	}{
		{name: "amount and currency", xml: `<Price><CurrencyCode>EUR</CurrencyCode><Amount>10.50</Amount></Price>`, want: "10.5 EUR"},
		{name: "amount only", xml: `<Price><Amount>3</Amount></Price>`, want: "3"},
		{name: "not a number", xml: `<Price><CurrencyCode>EUR</CurrencyCode><Amount>n/a</Amount></Price>`, wantErr: true},
		{name: "missing amount", xml: `<Price><CurrencyCode>EUR</CurrencyCode></Price>`, wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := xmltree.Parse([]byte(tt.xml))
			require.NoError(t, err)
			m, err := ParseMoney(n)
			if tt.wantErr {
				assert.ErrorContains(t, err, "Amount")
				assert.Nil(t, m)
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, m)
				return
			}
			require.NotNil(t, m)
			assert.Equal(t, tt.want, m.String())
		})
	}

	m, err := ParseMoney(nil)
	assert.NoError(t, err)
	assert.Nil(t, m)
}
