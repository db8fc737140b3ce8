package handler

import (
	"encoding/json"
	"net/http"
)

// CORSHeaders are sent on every response, success or failure, so a browser
// on any origin can read it.
var CORSHeaders = map[string]string{
	"Access-Control-Allow-Headers": "Content-Type,X-Amz-Date,Authorization,X-Api-Key,X-Amz-Security-Token",
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "GET, POST, OPTIONS, PUT, DELETE",
}

// Response is a transport-neutral result of one operation.
type Response struct {
	StatusCode int
	Body       any
}

// MessageBody is the {"message": ...} shape shared by acknowledgements
// and failures.
type MessageBody struct {
	Message string `json:"message"`
}

// CountBody is the get-visitor-count success payload.
type CountBody struct {
	VisitorCount int `json:"visitorCount"`
}

func message(status int, msg string) Response {
	return Response{StatusCode: status, Body: MessageBody{Message: msg}}
}

// failure embeds the underlying reason as "<prefix> due to <reason>".
func failure(prefix string, err error) Response {
	return message(http.StatusInternalServerError, prefix+" due to "+err.Error())
}

// Encode renders the body as compact JSON.
func (r Response) Encode() ([]byte, error) {
	return json.Marshal(r.Body)
}

func writeResponse(w http.ResponseWriter, resp Response) {
	body, err := resp.Encode()
	if err != nil {
		resp = message(http.StatusInternalServerError, err.Error())
		body, _ = resp.Encode()
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	_, _ = w.Write(body)
}
