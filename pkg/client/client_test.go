package client_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wadjakorntonsri/cloud-resume/pkg/client"
	"github.com/wadjakorntonsri/cloud-resume/pkg/core/domain"
)

func TestClient_AddVisitor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/add-visitor", r.URL.Path)
		_, _ = io.WriteString(w, `{"message":"Visitor added successfully"}`)
	}))
	defer srv.Close()

	require.NoError(t, client.New(srv.URL+"/", nil).AddVisitor(context.Background()))
}

func TestClient_GetVisitorCount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/get-visitor-count", r.URL.Path)
		_, _ = io.WriteString(w, `{"visitorCount":17}`)
	}))
	defer srv.Close()

	n, err := client.New(srv.URL, nil).GetVisitorCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 17, n)
}

func TestClient_GetVisitorCount_MissingField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{}`)
	}))
	defer srv.Close()

	_, err := client.New(srv.URL, nil).GetVisitorCount(context.Background())
	assert.Error(t, err)
}

func TestClient_SendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/send-message", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var sub domain.ContactSubmission
		require.NoError(t, json.NewDecoder(r.Body).Decode(&sub))
		assert.Equal(t, domain.ContactSubmission{Email: "a@b.com", Message: "hi"}, sub)
		_, _ = io.WriteString(w, `{"message":"Email sent successfully"}`)
	}))
	defer srv.Close()

	err := client.New(srv.URL, nil).SendMessage(context.Background(), domain.ContactSubmission{Email: "a@b.com", Message: "hi"})
	require.NoError(t, err)
}

func TestClient_SendMessage_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"message":"Failed to send email due to MessageRejected"}`)
	}))
	defer srv.Close()

	err := client.New(srv.URL, nil).SendMessage(context.Background(), domain.ContactSubmission{Email: "a@b.com", Message: "hi"})

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.EqualError(t, err, "Failed to send email: Failed to send email due to MessageRejected")
}

func TestClient_NonJSONErrorUsesStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	err := client.New(srv.URL, nil).AddVisitor(context.Background())
	assert.EqualError(t, err, "Failed to add visitor: Bad Gateway")
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := client.New(url, nil).GetVisitorCount(context.Background())
	assert.Error(t, err)
}
