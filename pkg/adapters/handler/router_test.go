package handler_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/wadjakorntonsri/cloud-resume/pkg/adapters/handler"
	"github.com/wadjakorntonsri/cloud-resume/pkg/adapters/repository/memory"
	"github.com/wadjakorntonsri/cloud-resume/pkg/core/domain"
	"github.com/wadjakorntonsri/cloud-resume/pkg/core/services"
)

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Send(ctx context.Context, email domain.Email) error {
	return m.Called(ctx, email).Error(0)
}

type RouterSuite struct {
	suite.Suite
	store    *memory.Repository
	notifier *MockNotifier
	router   http.Handler
}

func (s *RouterSuite) SetupTest() {
	s.store = memory.NewRepository()
	s.notifier = new(MockNotifier)
	mailbox := domain.Mailbox{From: "contact@resume.dev", To: "owner@resume.dev"}

	ops := handler.NewOperations(
		services.NewVisitorService(s.store, nil),
		services.NewContactService(s.notifier, mailbox),
		nil,
	)
	s.router = handler.NewRouter(ops, s.store, nil)
}

func (s *RouterSuite) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.RemoteAddr = "203.0.113.50:54321"
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *RouterSuite) assertCORS(rec *httptest.ResponseRecorder) {
	for k, v := range handler.CORSHeaders {
		s.Equal(v, rec.Header().Get(k), k)
	}
}

func (s *RouterSuite) TestGetVisitorCount_EmptyStore() {
	rec := s.do(http.MethodGet, "/get-visitor-count", "")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"visitorCount":0}`, rec.Body.String())
	s.assertCORS(rec)
}

func (s *RouterSuite) TestAddVisitorThenCount() {
	rec := s.do(http.MethodPost, "/add-visitor", "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"message":"Visitor added successfully"}`, rec.Body.String())
	s.assertCORS(rec)

	records, err := s.store.Scan(context.Background())
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal("203.0.113.50", records[0].SourceAddress)

	rec = s.do(http.MethodGet, "/get-visitor-count", "")
	s.JSONEq(`{"visitorCount":1}`, rec.Body.String())
}

func (s *RouterSuite) TestAddVisitor_UsesForwardedAddress() {
	req := httptest.NewRequest(http.MethodPost, "/add-visitor", nil)
	req.Header.Set("X-Real-IP", "198.51.100.23")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	s.Require().Equal(http.StatusOK, rec.Code)

	records, err := s.store.Scan(context.Background())
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal("198.51.100.23", records[0].SourceAddress)
}

func (s *RouterSuite) TestAddVisitor_StoreFailure() {
	s.Require().NoError(s.store.Close())

	rec := s.do(http.MethodPost, "/add-visitor", "")

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.JSONEq(`{"message":"Failed to add visitor due to visitor store unavailable"}`, rec.Body.String())
	s.assertCORS(rec)
}

func (s *RouterSuite) TestSendMessage_Success() {
	s.notifier.On("Send", mock.Anything, mock.MatchedBy(func(e domain.Email) bool {
		return e.Body == "From: a@b.com\n\nMessage: hi" && e.Subject == domain.DefaultSubject
	})).Return(nil)

	rec := s.do(http.MethodPost, "/send-message", `{"email":"a@b.com","message":"hi"}`)

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"message":"Email sent successfully"}`, rec.Body.String())
	s.assertCORS(rec)
	s.notifier.AssertExpectations(s.T())
}

func (s *RouterSuite) TestSendMessage_LongMessageIsForwarded() {
	long := strings.Repeat("x", 70000)
	s.notifier.On("Send", mock.Anything, mock.MatchedBy(func(e domain.Email) bool {
		return strings.HasSuffix(e.Body, "Message: "+long)
	})).Return(nil)

	rec := s.do(http.MethodPost, "/send-message", `{"email":"a@b.com","message":"`+long+`"}`)

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"message":"Email sent successfully"}`, rec.Body.String())
	s.notifier.AssertExpectations(s.T())
}

func (s *RouterSuite) TestSendMessage_MalformedJSON() {
	rec := s.do(http.MethodPost, "/send-message", `not json`)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "Failed to send email due to")
	s.assertCORS(rec)
	s.notifier.AssertNotCalled(s.T(), "Send", mock.Anything, mock.Anything)
}

func (s *RouterSuite) TestSendMessage_ProviderFailure() {
	s.notifier.On("Send", mock.Anything, mock.Anything).Return(errors.New("Email address is not verified"))

	rec := s.do(http.MethodPost, "/send-message", `{"email":"a@b.com","message":"hi"}`)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.JSONEq(`{"message":"Failed to send email due to Email address is not verified"}`, rec.Body.String())
}

func (s *RouterSuite) TestPreflight() {
	for _, path := range []string{"/send-message", "/add-visitor", "/anything"} {
		rec := s.do(http.MethodOptions, path, "")
		s.Equal(http.StatusNoContent, rec.Code, path)
		s.Empty(rec.Body.String())
		s.assertCORS(rec)
	}
}

func (s *RouterSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/healthz", "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"message":"ok"}`, rec.Body.String())

	s.Require().NoError(s.store.Close())
	rec = s.do(http.MethodGet, "/healthz", "")
	s.Equal(http.StatusServiceUnavailable, rec.Code)
}

func (s *RouterSuite) TestUnknownPath() {
	rec := s.do(http.MethodGet, "/nope", "")

	s.Equal(http.StatusNotFound, rec.Code)
	s.assertCORS(rec)
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func TestSourceAddress(t *testing.T) {
	tests := []struct {
		remote string
		want   string
	}{
		{"203.0.113.1:443", "203.0.113.1"},
		{"[2001:db8::1]:443", "2001:db8::1"},
		{"203.0.113.1", "203.0.113.1"},
	}
	for _, tt := range tests {
		t.Run(tt.remote, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			assert.Equal(t, tt.want, handler.SourceAddress(req))
		})
	}
}

func TestRequestLogger_RecordsStatus(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	h := handler.RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/brew", nil))

	require.Contains(t, buf.String(), "status=418")
	assert.Contains(t, buf.String(), "path=/brew")
}
