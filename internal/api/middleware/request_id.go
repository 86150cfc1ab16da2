package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

// HeaderRequestID заголовок с идентификатором запроса
const HeaderRequestID = "X-Request-ID"

// RequestID проставляет идентификатор запроса: входящий заголовок
// сохраняется, отсутствующий генерируется. Идентификатор дублируется
// в ответ для сквозной трассировки обращений с сайта
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
			r.Header.Set(HeaderRequestID, requestID)
		}

		w.Header().Set(HeaderRequestID, requestID)
		next.ServeHTTP(w, r)
	})
}
