package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wadjakorntonsri/cloud-resume/pkg/adapters/notifier"
	"github.com/wadjakorntonsri/cloud-resume/pkg/config"
	"github.com/wadjakorntonsri/cloud-resume/pkg/core/domain"
)

func TestNew_MemoryAndLog(t *testing.T) {
	cfg := &config.Config{DatabaseURL: "memory:", MailProvider: notifier.ProviderLog}

	a, err := New(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer a.Close()

	assert.NotNil(t, a.Pinger())
	assert.IsType(t, &notifier.LogNotifier{}, a.Notifier)

	rec := httptest.NewRecorder()
	a.Router(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/get-visitor-count", nil))
	assert.JSONEq(t, `{"visitorCount":0}`, rec.Body.String())
}

func TestNew_UnknownDriver(t *testing.T) {
	_, err := New(context.Background(), &config.Config{DatabaseURL: "redis://localhost"}, nil)
	assert.ErrorIs(t, err, domain.ErrUnknownDriver)
}

func TestNew_UnknownProviderClosesStore(t *testing.T) {
	cfg := &config.Config{DatabaseURL: "memory:", MailProvider: "fax"}

	_, err := New(context.Background(), cfg, nil)
	assert.ErrorIs(t, err, domain.ErrUnknownProvider)
}
