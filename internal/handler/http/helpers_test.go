package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-safe-keeper/internal/config"
	"github.com/MKhiriev/go-safe-keeper/internal/logger"
	"github.com/MKhiriev/go-safe-keeper/internal/mock"
	"github.com/MKhiriev/go-safe-keeper/internal/service"
	"github.com/MKhiriev/go-safe-keeper/internal/store"
	"github.com/MKhiriev/go-safe-keeper/internal/utils"
	"github.com/MKhiriev/go-safe-keeper/models"
)

const (
	testSecret  = "secret"
	testSafeKey = "c2FmZS1rZXktZm9yLXRlc3Rz"
)

// testMocks bundles the gomock doubles behind a handler built by
// newMockedHandler.
type testMocks struct {
	registry *mock.MockSafeRegistry
	codec    *mock.MockFieldCodec
	tokens   *mock.MockTokenService
	appInfo  *mock.MockAppInfoService
}

func newTestHandler() *Handler {
	return &Handler{
		services: &service.Services{},
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger.Nop(),
	}
}

func newMockedHandler(t *testing.T, authEnabled bool) (*Handler, testMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := testMocks{
		registry: mock.NewMockSafeRegistry(ctrl),
		codec:    mock.NewMockFieldCodec(ctrl),
		tokens:   mock.NewMockTokenService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}

	h := newTestHandler()
	h.authEnabled = authEnabled
	h.services = &service.Services{
		SafeRegistry:   m.registry,
		FieldCodec:     m.codec,
		TokenService:   m.tokens,
		AppInfoService: m.appInfo,
	}
	return h, m
}

// newServiceHandler wires a handler to the real service layer over an
// in-memory store that already holds the safe "acc-1".
func newServiceHandler(t *testing.T) *Handler {
	t.Helper()

	repo := store.NewMemorySafeRepository()
	_, err := repo.InsertSafe(context.Background(), models.SafeRecord{ID: "acc-1", Key: testSafeKey})
	require.NoError(t, err)

	cfg := config.App{Secret: testSecret, Version: "v1.0.0"}
	services, err := service.NewServices(&store.Storages{SafeRepository: repo}, cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)

	h := newTestHandler()
	h.services = services
	return h
}

// bufferLogger returns a logger writing JSON lines into buf.
func bufferLogger(buf *bytes.Buffer) *logger.Logger {
	return &logger.Logger{Logger: zerolog.New(buf)}
}

func doJSON(t *testing.T, handler http.Handler, method, target string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}
