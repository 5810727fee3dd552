package utils

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the error envelope the client expects
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ResponseJSON writes any payload as JSON with the given status code
func ResponseJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusOK, data)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusCreated, data)
}

// ------------- Error responses -------------

// ResponseError writes a {"detail": ...} body with the given status code
func ResponseError(w http.ResponseWriter, code int, detail string) {
	ResponseJSON(w, code, ErrorResponse{Detail: detail})
}

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, detail string) {
	ResponseError(w, http.StatusBadRequest, detail)
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, detail string) {
	ResponseError(w, http.StatusUnauthorized, detail)
}

// returns 403 Forbidden
func ResponseForbidden(w http.ResponseWriter, detail string) {
	ResponseError(w, http.StatusForbidden, detail)
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, detail string) {
	ResponseError(w, http.StatusNotFound, detail)
}

// returns 502 Bad Gateway
func ResponseBadGateway(w http.ResponseWriter, detail string) {
	ResponseError(w, http.StatusBadGateway, detail)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, detail string) {
	ResponseError(w, http.StatusInternalServerError, detail)
}
