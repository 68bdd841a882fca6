package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

// ErrMissingParam возвращается, когда обязательный параметр не передан
var ErrMissingParam = errors.New("missing required parameter")

// PathUUID читает UUID из параметра пути
func PathUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw, ok := mux.Vars(r)[name]
	if !ok || raw == "" {
		return uuid.Nil, ErrMissingParam
	}
	return uuid.Parse(raw)
}

// QueryUUID читает необязательный UUID из query. Пустое значение - nil
func QueryUUID(r *http.Request, name string) (*uuid.UUID, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// ParseDate разбирает дату в формате YYYY-MM-DD
func ParseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, ErrMissingParam
	}
	return time.Parse(domain.DateFormat, raw)
}

// QueryInt читает необязательное целое из query. Пустое значение - 0
func QueryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

// QueryBool читает необязательный флаг из query
func QueryBool(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}

// QueryTime читает время HH:MM из query
func QueryTime(r *http.Request, name string) (types.TimeOfDay, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, ErrMissingParam
	}
	return types.ParseTimeOfDay(raw)
}
