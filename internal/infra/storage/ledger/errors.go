package ledger

import "errors"

var (
	// ErrAlreadyBooked возвращается при попытке повторно забронировать слот
	ErrAlreadyBooked = errors.New("ledger.repository: slot already booked")
)
