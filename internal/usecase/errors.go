package usecase

import (
	"errors"
	"fmt"
)

// HTTPError はusecaseからhandlerへ返すエラー。
// validation=400 / not found=404 / conflict=409 / access denied=403。
// これ以外の予期しないエラーはhandler側で500に落として中身は隠す。
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}
