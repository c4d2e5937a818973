package transport

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestRecorderScriptAndRecord(t *testing.T) {
	r := NewRecorder()
	r.Script(&Response{Status: 200, Body: []byte(`{"status":200,"data":{"exists":true}}`)}, nil)

	resp, err := r.Post(context.Background(), "/admin/users/email/exist", map[string]string{"email": "ana@x.com"}, SessionMeta("tok"))
	require.NoError(t, err)
	assert.True(t, gjson.GetBytes(resp.Body, "data.exists").Bool())

	calls := r.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "POST", calls[0].Method)
	assert.Equal(t, "/admin/users/email/exist", calls[0].Path)
	assert.Equal(t, "ana@x.com", gjson.GetBytes(calls[0].Body, "email").String())
	assert.Equal(t, "tok", calls[0].Meta.Headers["Authorization"])
}

func TestRecorderExhaustedScript(t *testing.T) {
	r := NewRecorder()
	resp, err := r.Get(context.Background(), "/admin/users/u1", SessionMeta("tok"))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.Status)
	assert.Equal(t, `{}`, string(resp.Body))
}

func TestRecorderScriptedError(t *testing.T) {
	r := NewRecorder()
	r.Script(nil, &HTTPError{StatusCode: 400, Message: "boom"})

	resp, err := r.Get(context.Background(), "/admin/users/u1", SessionMeta("tok"))
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, "boom", err.Error())
	assert.Len(t, r.Calls(), 1)
}
