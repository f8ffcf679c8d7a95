// Package httpx - общие для REST-обработчиков и middleware вещи:
// извлечение актора из заголовков, запись JSON и маппинг ошибок на статусы.
package httpx

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"marketplace/internal/entities"
	"marketplace/internal/pkg/errs"
	"marketplace/pkg/logger"
)

// Заголовки выставляет внешний шлюз после аутентификации.
const (
	HeaderActorID   = "X-Actor-ID"
	HeaderActorRole = "X-Actor-Role"
)

var (
	ErrMissingActor = fmt.Errorf("%w: missing %s or %s header", errs.ErrValidation, HeaderActorID, HeaderActorRole)
	ErrInvalidRole  = fmt.Errorf("%w: invalid actor role", errs.ErrValidation)
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func ActorFromRequest(r *http.Request) (entities.Actor, error) {
	id := r.Header.Get(HeaderActorID)
	role := entities.ActorRole(r.Header.Get(HeaderActorRole))
	if id == "" || role == "" {
		return entities.Actor{}, ErrMissingActor
	}
	if !role.IsValid() {
		return entities.Actor{}, ErrInvalidRole
	}
	return entities.Actor{ID: id, Role: role}, nil
}

// StatusCode переводит вид ошибки в HTTP-статус.
func StatusCode(err error) int {
	switch errs.Kind(err) {
	case errs.ErrValidation:
		return http.StatusBadRequest
	case errs.ErrForbidden:
		return http.StatusForbidden
	case errs.ErrNotFound:
		return http.StatusNotFound
	case errs.ErrConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ErrorMessage - текст для клиента. Внутренние ошибки не раскрываются.
func ErrorMessage(err error) string {
	if StatusCode(err) == http.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}

var errBadJSON = fmt.Errorf("%w: invalid request body", errs.ErrValidation)

func DecodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", errBadJSON, err)
	}
	return nil
}

func WriteJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(body)
}

func WriteError(w http.ResponseWriter, err error) error {
	return WriteJSON(w, StatusCode(err), ErrorResponse{Error: ErrorMessage(err)})
}

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

// Respond пишет JSON-ответ, ошибку кодирования только логирует: заголовок уже отправлен.
func Respond(w http.ResponseWriter, log errorLogger, status int, body any) {
	if err := WriteJSON(w, status, body); err != nil {
		log.Error("encode JSON response", logger.NewField("error", err))
	}
}

// RespondError отвечает статусом по виду ошибки. Ошибки без вида логируются с op,
// клиенту уходит только общий текст.
func RespondError(w http.ResponseWriter, log errorLogger, op string, err error) {
	if StatusCode(err) == http.StatusInternalServerError {
		log.Error(op, logger.NewField("error", err))
	}
	Respond(w, log, StatusCode(err), ErrorResponse{Error: ErrorMessage(err)})
}

// RouteTemplate возвращает шаблон mux-роута (для меток метрик), иначе путь запроса.
func RouteTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if template, err := route.GetPathTemplate(); err == nil {
			return template
		}
	}
	return r.URL.Path
}
