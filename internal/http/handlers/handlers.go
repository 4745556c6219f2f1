package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pribylovaa/go-social-network/internal/service"
)

// Handlers агрегирует зависимости REST-хендлеров.
type Handlers struct {
	Service *service.Service
	// AuthCookie — имя cookie сессии; очищается при выходе.
	AuthCookie string
}

func New(svc *service.Service, authCookie string) *Handlers {
	return &Handlers{Service: svc, AuthCookie: authCookie}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// pathID разбирает UUID из параметра пути.
func pathID(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

func cursorParam(r *http.Request) string {
	return r.URL.Query().Get("cursor")
}
