package admin

import (
	"context"
	"fmt"

	"github.com/lumeniq/adminsdk/pkg/transport"
)

// Users is the user administration facet. Each operation is the same
// four-step pipeline: validate, build session metadata, dispatch once, and
// normalize. Operations differ only in verb, path, body, and declared
// parameter shape; none of them inspects raw transport results directly.
type Users struct {
	dispatcher transport.Dispatcher // borrowed from the parent client
}

// NewUsers creates the user facet from a parent client.
// A nil parent is a construction error.
func NewUsers(parent *Client) (*Users, error) {
	if parent == nil {
		return nil, ErrNoParent
	}
	return &Users{dispatcher: parent.Dispatcher()}, nil
}

type findByIDParams struct {
	UserID  string `validate:"required"`
	Session string `validate:"required"`
}

// FindByID retrieves the user record for the given id. Returns the remote
// representation of the user on success.
func (u *Users) FindByID(ctx context.Context, userID, session string) (any, error) {
	if err := validateParams(findByIDParams{UserID: userID, Session: session}); err != nil {
		return nil, err
	}
	resp, err := u.dispatcher.Get(ctx, fmt.Sprintf("/admin/users/%s", userID), transport.SessionMeta(session))
	return normalize(resp, err)
}

// UpdatePasswordParams are the caller-supplied parameters for
// FindByIDAndUpdatePassword. All fields are required.
type UpdatePasswordParams struct {
	UserID      string `json:"userId"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type updatePasswordParams struct {
	UserID      string `validate:"required"`
	OldPassword string `validate:"required"`
	NewPassword string `validate:"required"`
	Session     string `validate:"required"`
}

type updatePasswordBody struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// FindByIDAndUpdatePassword updates the user's password. The user id
// travels in the path only; the request body carries the two passwords.
func (u *Users) FindByIDAndUpdatePassword(ctx context.Context, params UpdatePasswordParams, session string) (any, error) {
	if err := validateParams(updatePasswordParams{
		UserID:      params.UserID,
		OldPassword: params.OldPassword,
		NewPassword: params.NewPassword,
		Session:     session,
	}); err != nil {
		return nil, err
	}
	body := updatePasswordBody{
		OldPassword: params.OldPassword,
		NewPassword: params.NewPassword,
	}
	resp, err := u.dispatcher.Put(ctx, fmt.Sprintf("/admin/users/%s/password", params.UserID), body, transport.SessionMeta(session))
	return normalize(resp, err)
}

type emailExistParams struct {
	Email   string `validate:"required,email"`
	Session string `validate:"required"`
}

type emailExistBody struct {
	Email string `json:"email"`
}

// EmailExist reports whether the given email is already registered. The
// returned data is the remote indication of existence.
func (u *Users) EmailExist(ctx context.Context, email, session string) (any, error) {
	if err := validateParams(emailExistParams{Email: email, Session: session}); err != nil {
		return nil, err
	}
	resp, err := u.dispatcher.Post(ctx, "/admin/users/email/exist", emailExistBody{Email: email}, transport.SessionMeta(session))
	return normalize(resp, err)
}
