package get_unavailable_times

import "errors"

var (
	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("get_unavailable_times: invalid date format")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_unavailable_times: internal error")
)
