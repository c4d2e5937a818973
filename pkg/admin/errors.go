package admin

import (
	"net/http"

	"github.com/lumeniq/adminsdk/pkg/apperrors"
)

// Base admin request error
var (
	ErrAdminRequest apperrors.Error = apperrors.New("admin request error").SetStatusCode(http.StatusBadRequest)
)

// Pipeline errors. Every operation rejects with exactly one of the two
// variants: ErrValidation before dispatch, ErrRemote after. Callers match
// with errors.Is and read the status via apperrors.Error.StatusCode.
var (
	ErrValidation apperrors.Error = ErrAdminRequest.New("invalid parameters").SetStatusCode(http.StatusBadRequest)
	ErrRemote     apperrors.Error = ErrAdminRequest.New("remote request failed").SetStatusCode(http.StatusBadRequest)
)

// Construction errors
var (
	ErrNoConfig     apperrors.Error = ErrAdminRequest.New("configuration is required").SetStatusCode(http.StatusBadRequest)
	ErrNoDispatcher apperrors.Error = ErrAdminRequest.New("transport dispatcher is required").SetStatusCode(http.StatusBadRequest)
	ErrNoParent     apperrors.Error = ErrAdminRequest.New("parent client is required").SetStatusCode(http.StatusBadRequest)
)
