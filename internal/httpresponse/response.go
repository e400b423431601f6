package httpresponse

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type DetailResponse struct {
	Detail string `json:"detail"`
}

const INTERNALERRORJSON = "{\"detail\": \"Internal server error\"}"

// WriteJSON writes body as-is, without an envelope, so documents reach the
// client in the shape they were stored.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	jsonByte, err := json.Marshal(body)
	if err != nil {
		WriteInternalErrorResponse(w)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(jsonByte)
}

func WriteDetail(w http.ResponseWriter, status int, detail string) {
	WriteJSON(w, status, DetailResponse{Detail: detail})
}

func WriteInternalErrorResponse(w http.ResponseWriter) {
	// implementation similar to http.Error, only difference is the Content-type
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = fmt.Fprintln(w, INTERNALERRORJSON)
}
