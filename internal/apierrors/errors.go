// Package apierrors defines errors that carry the HTTP status and the
// client-facing message they should be reported with.
package apierrors

import (
	"errors"
	"net/http"
)

// Body is the JSON payload of every error response.
type Body struct {
	ErrorMsg string `json:"errorMsg"`
}

// APIError is a domain error exposed to API clients.
type APIError struct {
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Body returns the payload reported to the client.
func (e *APIError) Body() Body {
	return Body{ErrorMsg: e.Message}
}

// As extracts an *APIError from the error chain.
func As(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func newError(status int, message string) *APIError {
	return &APIError{Status: status, Message: message}
}

// NewErrInvalidToken is returned when the bearer token is missing or fails verification.
func NewErrInvalidToken(err error) *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: "Invalid JWT Token", Err: err}
}

// NewErrUserAlreadyExists is returned when registering with a taken email or username.
func NewErrUserAlreadyExists() *APIError {
	return newError(http.StatusUnauthorized, "User Already Exists")
}

// NewErrInvalidUserDetails is returned when registration or login input is incomplete.
func NewErrInvalidUserDetails() *APIError {
	return newError(http.StatusUnauthorized, "Please Enter Valid User Details")
}

// NewErrIncorrectPassword is returned when the password does not match.
func NewErrIncorrectPassword() *APIError {
	return newError(http.StatusUnauthorized, "Incorrect Password")
}

// NewErrUserDoesNotExist is returned when login finds no single account for the username.
func NewErrUserDoesNotExist() *APIError {
	return newError(http.StatusUnauthorized, "User Doesn't Exists")
}

// NewErrInvalidUser is returned when the authenticated account no longer resolves.
func NewErrInvalidUser() *APIError {
	return newError(http.StatusNotFound, "Invalid User")
}

// NewErrInvalidTodoDetails is returned when a task body is malformed or incomplete.
func NewErrInvalidTodoDetails() *APIError {
	return newError(http.StatusBadRequest, "Please Enter Valid Todo Details")
}

// NewErrInvalidTodoID is returned when the task path parameter is not an integer.
func NewErrInvalidTodoID() *APIError {
	return newError(http.StatusBadRequest, "Invalid Todo Id")
}

// NewErrTodoAlreadyExists is returned when the owner already has a task with the same id.
func NewErrTodoAlreadyExists() *APIError {
	return newError(http.StatusConflict, "Todo Already Exists")
}

// NewErrNothingToUpdate is returned when a task update supplies no fields.
func NewErrNothingToUpdate() *APIError {
	return newError(http.StatusBadRequest, "Nothing to Update")
}

// NewErrPermissionDenied covers both a missing task and a task owned by someone else.
func NewErrPermissionDenied() *APIError {
	return newError(http.StatusNotFound, "Permission Denied")
}

// NewErrNoFieldsToUpdate is returned when an account update supplies no fields.
func NewErrNoFieldsToUpdate() *APIError {
	return newError(http.StatusBadRequest, "No fields provided to update")
}

// NewErrUserNotFound is returned when the account to update does not exist.
func NewErrUserNotFound() *APIError {
	return newError(http.StatusNotFound, "User not found")
}

// NewErrUserDetailsTaken is returned when an account update collides with another account.
func NewErrUserDetailsTaken() *APIError {
	return newError(http.StatusConflict, "User Already Exists")
}

// NewErrInvalidBody is returned when a request body cannot be decoded.
func NewErrInvalidBody(err error) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: "Invalid Request Body", Err: err}
}
