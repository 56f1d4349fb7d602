package resource

import (
	"github.com/galeria/admin-api/internal/client/apiclient"
)

// UserFields is the writable part of a User. On update a blank Password
// leaves the stored password unchanged.
type UserFields struct {
	Name                 string
	Email                string
	Role                 string
	Password             string
	PasswordConfirmation string
}

// Users manages accounts. Accounts are created through /auths/register.
type Users struct {
	*Resource[User, UserFields]
}

func NewUsers(client *apiclient.Client) *Users {
	return &Users{New[User](client, Endpoint[UserFields]{
		Path:       "/users",
		Single:     "user",
		Plural:     "users",
		CreatePath: "/auths/register",
		CreateBody: func(f UserFields) (any, apiclient.ContentKind, error) {
			return userPayload(f), apiclient.ContentJSON, nil
		},
		UpdateBody: func(f UserFields) (any, error) {
			return userPayload(f), nil
		},
	})}
}

// userPayload pairs password with password_confirmation and drops both when
// the password is blank.
func userPayload(f UserFields) map[string]string {
	body := map[string]string{}
	if f.Name != "" {
		body["name"] = f.Name
	}
	if f.Email != "" {
		body["email"] = f.Email
	}
	if f.Role != "" {
		body["role"] = f.Role
	}
	if f.Password != "" {
		confirmation := f.PasswordConfirmation
		if confirmation == "" {
			confirmation = f.Password
		}
		body["password"] = f.Password
		body["password_confirmation"] = confirmation
	}
	return body
}
