package seed

import "errors"

var (
	// ErrReadFile возвращается, когда файл с правилами не удалось прочитать
	ErrReadFile = errors.New("seed: failed to read rules file")

	// ErrMalformed возвращается при некорректном содержимом файла правил
	ErrMalformed = errors.New("seed: malformed rules file")
)
