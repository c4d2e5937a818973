package admin

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumeniq/adminsdk/pkg/transport"
)

func TestNormalizeSuccess(t *testing.T) {
	data, err := normalize(&transport.Response{
		Status: 200,
		Body:   []byte(`{"status":200,"data":{"_id":"u1","active":true,"logins":3}}`),
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"_id": "u1", "active": true, "logins": float64(3)}, data)
}

func TestNormalizeScalarData(t *testing.T) {
	// data is an arbitrary JSON-shaped value, not necessarily an object
	data, err := normalize(&transport.Response{Status: 200, Body: []byte(`{"data":true}`)}, nil)
	require.NoError(t, err)
	assert.Equal(t, true, data)
}

func TestNormalizeMissingData(t *testing.T) {
	data, err := normalize(&transport.Response{Status: 200, Body: []byte(`{"status":200}`)}, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{}, data)
}

func TestNormalizeNonOKStatus(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"bad request", 400, `{"status":400,"message":"bad input"}`, "bad input"},
		{"unauthorized", 401, `{"status":401,"message":"session expired"}`, "session expired"},
		{"no message field", 500, `{"status":500}`, "No error message reported!"},
		{"empty body", 502, ``, "No error message reported!"},
		{"created is not success", 201, `{"status":201,"message":"created"}`, "created"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			data, err := normalize(&transport.Response{Status: test.status, Body: []byte(test.body)}, nil)
			require.Error(t, err)
			assert.Nil(t, data)
			assert.ErrorIs(t, err, ErrRemote)
			assert.Equal(t, test.message, err.Error())
		})
	}
}

func TestNormalizeTransportError(t *testing.T) {
	_, err := normalize(nil, &transport.HTTPError{StatusCode: 400, Message: "request failed: dial tcp: timeout"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemote)
	assert.Equal(t, "request failed: dial tcp: timeout", err.Error())
}

func TestNormalizePlainError(t *testing.T) {
	// errors that are not response shaped are still collapsed uniformly
	_, err := normalize(nil, errors.New("unexpected failure"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemote)
	assert.Equal(t, "unexpected failure", err.Error())
}
