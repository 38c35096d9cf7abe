package domain

import (
	"errors"
	"fmt"
)

var (
	ErrKeyNotFound            = errors.New("key not found")
	ErrPersistence            = errors.New("persisted session is unreadable")
	ErrSessionRequired        = errors.New("sign in required")
	ErrCorrespondenceNotFound = errors.New("correspondence not found")
	ErrAttachmentUnavailable  = errors.New("attachment unavailable")
)

const (
	MessageInvalidLogin      = "invalid login"
	MessageCannotReachServer = "cannot reach server"
	MessageConnectivity      = "cannot connect to the server, please check your internet connection"
	MessageRestricted        = "restricted: sign in from the profile tab to view this section"
)

// AuthError is a login the server rejected.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// ConnectivityError means no usable response reached the gateway.
type ConnectivityError struct {
	Message string
	Err     error
}

func (e *ConnectivityError) Error() string {
	if e.Err == nil {
		return e.Message
	}

	return e.Message + ": " + e.Err.Error()
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}

// ServerError is a non-success HTTP outcome.
type ServerError struct {
	StatusCode int
	Message    string
}

func NewServerError(statusCode int, message string) *ServerError {
	if message == "" {
		message = fmt.Sprintf("failed to fetch data from the server (status: %d)", statusCode)
	}

	return &ServerError{StatusCode: statusCode, Message: message}
}

func (e *ServerError) Error() string {
	return e.Message
}

// UserMessage is the text shown to the user for err.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.Message
	}
	var connErr *ConnectivityError
	if errors.As(err, &connErr) {
		return connErr.Message
	}
	var serverErr *ServerError
	if errors.As(err, &serverErr) {
		return serverErr.Message
	}
	if errors.Is(err, ErrSessionRequired) {
		return MessageRestricted
	}

	return err.Error()
}
