package admin

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/tidwall/gjson"

	"github.com/lumeniq/adminsdk/pkg/transport"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// noErrorMessage is the placeholder used when an error response carries no
// message field.
const noErrorMessage = "No error message reported!"

// normalize converts a raw transport result into the caller-facing value.
// This is the only place status codes are interpreted: exactly status 200 is
// success, everything else, including transport failures, collapses into a
// uniform ErrRemote carrying a message and a 400 status. On success the
// body's data field is returned, defaulting to an empty object when absent.
func normalize(resp *transport.Response, err error) (any, error) {
	if err != nil {
		var httpErr *transport.HTTPError
		if errors.As(err, &httpErr) {
			return nil, ErrRemote.Msg(messageOrDefault(httpErr.Message))
		}
		return nil, ErrRemote.Msg(messageOrDefault(err.Error()))
	}

	if resp.Status == http.StatusOK {
		data := gjson.GetBytes(resp.Body, "data")
		if !data.Exists() {
			return map[string]any{}, nil
		}
		var out any
		if err := json.Unmarshal([]byte(data.Raw), &out); err != nil {
			return nil, ErrRemote.Msg("malformed response body: " + err.Error())
		}
		return out, nil
	}

	return nil, ErrRemote.Msg(messageOrDefault(gjson.GetBytes(resp.Body, "message").String()))
}

func messageOrDefault(msg string) string {
	if msg == "" {
		return noErrorMessage
	}
	return msg
}
