package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid        = errors.New("invalid parameters")
	ErrEmailExists         = errors.New("user with this email already exists")
	ErrTitleExists         = errors.New("this title is already in use")
	ErrUserNotFound        = errors.New("user not found")
	ErrPostNotFound        = errors.New("post not found")
	ErrRoleNotFound        = errors.New("role not found")
	ErrInvalidCredentials  = errors.New("incorrect email or password")
	ErrIncorrectPassword   = errors.New("current password is incorrect")
	ErrPasswordUnchanged   = errors.New("new password cannot be the same as the current one")
	ErrInactiveUser        = errors.New("inactive user")
	ErrNotSuperuser        = errors.New("the user doesn't have enough privileges")
	ErrNotPermitted        = errors.New("not enough permissions")
	ErrForbiddenSelfDelete = errors.New("super users are not allowed to delete themselves")
	ErrInvalidImage        = errors.New("uploaded file is not a valid image")
	ErrInvalidToken        = errors.New("could not validate credentials")
	UnExpectedError        = errors.New("unexpected error, please try again later")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:        BadRequest,
	ErrEmailExists:         BadRequest,
	ErrTitleExists:         BadRequest,
	ErrUserNotFound:        NotFound,
	ErrPostNotFound:        NotFound,
	ErrRoleNotFound:        NotFound,
	ErrInvalidCredentials:  BadRequest,
	ErrIncorrectPassword:   Forbidden,
	ErrPasswordUnchanged:   BadRequest,
	ErrInactiveUser:        BadRequest,
	ErrNotSuperuser:        Forbidden,
	ErrNotPermitted:        Forbidden,
	ErrForbiddenSelfDelete: Forbidden,
	ErrInvalidImage:        BadRequest,
	ErrInvalidToken:        Unauthorized,
	UnExpectedError:        InternalServerError,
}
