package httputil

import (
	"encoding/json"
	"log"
	"net/http"
)

// Status messages shared by handlers. Clients compare these strings verbatim.
const (
	MsgSuccess              = "Success"
	MsgFailed               = "Failed"
	MsgNoRowsAffected       = "Falha"
	MsgError                = "Error"
	MsgInvalidRequest       = "Requisição inválida"
	MsgInvalidCredentials   = "Credenciais inválidas"
	MsgMissingToken         = "Token não fornecido"
	MsgInvalidToken         = "Token inválido"
	MsgAccountNotFound      = "Usuário não encontrado"
	MsgInvalidOrExpiredCode = "Token inválido ou expirado"
)

// RespondJSON sends a JSON response with the given status code.
// Logs encoding errors to avoid silent failures.
func RespondJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("ERROR: failed to encode JSON response: %v", err)
	}
}

// RespondMessage sends a bare JSON string such as "Success".
func RespondMessage(w http.ResponseWriter, message string, statusCode int) {
	RespondJSON(w, message, statusCode)
}

// DecodeJSON decodes the request body into dst.
func DecodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
