package app_error

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Kind string

const (
	KindNotLinked          Kind = "NOT_LINKED"
	KindSelfEvaluation     Kind = "SELF_EVALUATION"
	KindNotGroupMember     Kind = "NOT_GROUP_MEMBER"
	KindInvalidTarget      Kind = "INVALID_TARGET"
	KindInvalidScore       Kind = "INVALID_SCORE"
	KindStorageFailure     Kind = "STORAGE_FAILURE"
	KindNotFound           Kind = "NOT_FOUND"
	KindConflict           Kind = "CONFLICT"
	KindForbidden          Kind = "FORBIDDEN"
	KindInvalidInput       Kind = "INVALID_INPUT"
	KindUnauthenticated    Kind = "UNAUTHENTICATED"
	KindInvalidCredentials Kind = "INVALID_CREDENTIALS"
)

// Sentinels for errors.Is, matching is done on the kind only.
var (
	ErrNotLinked          = &Error{Kind: KindNotLinked, Message: "User is not linked to a staff member. Please link your account to a staff profile first."}
	ErrSelfEvaluation     = &Error{Kind: KindSelfEvaluation, Message: "Cannot evaluate yourself"}
	ErrNotGroupMember     = &Error{Kind: KindNotGroupMember, Message: "You are not a member of this group"}
	ErrInvalidTarget      = &Error{Kind: KindInvalidTarget, Message: "Target staff is not a member of this group"}
	ErrInvalidScore       = &Error{Kind: KindInvalidScore, Message: "All evaluation points must be numbers between 0 and 10"}
	ErrStorageFailure     = &Error{Kind: KindStorageFailure, Message: "Storage failure, please retry"}
	ErrForbidden          = &Error{Kind: KindForbidden, Message: "You do not have the role required for this resource"}
	ErrUnauthenticated    = &Error{Kind: KindUnauthenticated, Message: "Missing or invalid access token"}
	ErrInvalidCredentials = &Error{Kind: KindInvalidCredentials, Message: "Invalid credentials"}
)

type Error struct {
	Kind        Kind
	Message     string
	QuestionIds []int
	Err         error
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, err error, message string) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindNotLinked, KindSelfEvaluation, KindNotGroupMember, KindForbidden:
		return http.StatusForbidden
	case KindInvalidTarget, KindInvalidScore, KindInvalidInput:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnauthenticated, KindInvalidCredentials:
		return http.StatusUnauthorized
	case KindStorageFailure:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// KindOf returns the kind of the first *Error in the chain, or "" if there is none.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

func WithHTTPStatus(c *gin.Context, err error, status int) {
	c.JSON(status, gin.H{"error": err.Error()})
}

// Respond writes err to the client, using the status of an *Error when there is one.
func Respond(c *gin.Context, err error) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		WithHTTPStatus(c, err, http.StatusInternalServerError)
		return
	}
	body := gin.H{"error": appErr.Message, "kind": appErr.Kind}
	if len(appErr.QuestionIds) > 0 {
		body["question_ids"] = appErr.QuestionIds
	}
	c.JSON(appErr.HTTPStatus(), body)
}
