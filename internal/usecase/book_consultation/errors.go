package book_consultation

import "errors"

var (
	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("book_consultation: invalid booking date")

	// ErrInvalidTime возвращается при некорректном формате времени
	ErrInvalidTime = errors.New("book_consultation: invalid booking time")

	// ErrTimeNotInSchedule возвращается, когда время вне базового расписания
	ErrTimeNotInSchedule = errors.New("book_consultation: time is not in the base schedule")

	// ErrSlotNotAvailable возвращается, когда слот недоступен: закрыт правилом
	// даты или уже забронирован. Ожидаемый исход, а не сбой
	ErrSlotNotAvailable = errors.New("book_consultation: slot is not available")

	// ErrInvalidInput возвращается при некорректных данных заявки
	ErrInvalidInput = errors.New("book_consultation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_consultation: internal error")
)
