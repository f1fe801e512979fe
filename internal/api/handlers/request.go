package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// MsgSessionNotFound общий ответ для отсутствующей или истекшей сессии
const MsgSessionNotFound = "Booking session not found or expired. Please start again."

// SessionID извлекает {sessionId} из пути. Если ID не UUID, отвечает 404 и возвращает false.
func SessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := mux.Vars(r)["sessionId"]
	if _, err := uuid.Parse(id); err != nil {
		RespondNotFound(w, MsgSessionNotFound)
		return "", false
	}
	return id, true
}
