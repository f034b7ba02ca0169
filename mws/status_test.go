package mws

import (
	"testing"
	"time"

	"github.com/IvanTurko/mws-sdk-go/sdkerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseServiceStatus(t *testing.T) {
	res, err := decodeResponse(response(200, statusBody, nil), false, "test")
	require.NoError(t, err)

	st, err := ParseServiceStatus(res)
	require.NoError(t, err)
	assert.Equal(t, "GREEN", st.Status)
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 5, 123000000, time.UTC), st.Timestamp)
	assert.Empty(t, st.Messages)
}

func TestParseServiceStatus_Messages(t *testing.T) {
	body := `<GetServiceStatusResponse><GetServiceStatusResult>
<Status>YELLOW</Status><MessageId>173964729I</MessageId>
<Messages><Message><Locale>en_US</Locale><Text>We are experiencing high latency</Text></Message></Messages>
</GetServiceStatusResult></GetServiceStatusResponse>`
	res, err := decodeResponse(response(200, body, nil), false, "test")
	require.NoError(t, err)

	st, err := ParseServiceStatus(res)
	require.NoError(t, err)
	assert.Equal(t, "YELLOW", st.Status)
	assert.Equal(t, "173964729I", st.MessageID)
	assert.Equal(t, []string{"We are experiencing high latency"}, st.Messages)
	assert.True(t, st.Timestamp.IsZero())
}

func TestParseServiceStatus_Errors(t *testing.T) {
	_, err := ParseServiceStatus(&Result{Raw: []byte("x")})
	assert.ErrorIs(t, err, sdkerr.ErrDecodeError)

	res, err := decodeResponse(response(200, "<Other/>", nil), false, "test")
	require.NoError(t, err)
	_, err = ParseServiceStatus(res)
	assert.ErrorIs(t, err, sdkerr.ErrDecodeError)
}
