package cmd

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"shipments/internal/core/application/usecases/queries"
	"shipments/internal/core/ports"
	"shipments/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInMemoryRoot(t *testing.T, config Config) *CompositionRoot {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	root, err := NewCompositionRoot(context.Background(), config, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = root.Close() })
	return root
}

func Test_CompositionRootInMemory(t *testing.T) {
	root := newInMemoryRoot(t, Config{
		TrackingAPIURL:   "http://localhost:8000",
		TrackingAPIToken: "secret",
	})

	token, ok, err := root.Sessions().Get(context.Background(), ports.SessionKeyToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "secret", token)

	assert.Nil(t, root.CreateStatusSyncJob())
	assert.Equal(t, 0, root.CreateJobManager().Len())

	report, err := root.RunStatusSweep(context.Background())
	require.NoError(t, err)
	assert.Zero(t, report.Checked)
}

func Test_CompositionRootSchedulesSweep(t *testing.T) {
	root := newInMemoryRoot(t, Config{
		TrackingAPIURL: "http://localhost:8000",
		SyncSchedule:   "0 */15 * * * *",
	})

	assert.NotNil(t, root.CreateStatusSyncJob())
	assert.Equal(t, 1, root.CreateJobManager().Len())
}

func Test_CompositionRootRejectsUnknownPolicy(t *testing.T) {
	_, err := NewCompositionRoot(context.Background(), Config{
		TrackingAPIURL:   "http://localhost:8000",
		TransitionPolicy: "lenient",
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func Test_CompositionRootServesHealth(t *testing.T) {
	root := newInMemoryRoot(t, Config{TrackingAPIURL: "http://localhost:8000"})

	e, err := root.CreateHTTPServer()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func Test_ConnectStorageRegistersPoolBeforeFirstRoundTrip(t *testing.T) {
	c := &CompositionRoot{
		config: Config{
			DBHost:     "127.0.0.1",
			DBPort:     "1",
			DBUser:     "shipments",
			DBPassword: "secret",
			DBName:     "shipments",
			DBSslMode:  "disable",
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	err := c.connectStorage()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connect to database")
	assert.Len(t, c.closers, 1)
	assert.NoError(t, c.Close())
	assert.Empty(t, c.closers)
}

func Test_CompositionRootReadsSyncHistory(t *testing.T) {
	root := newInMemoryRoot(t, Config{TrackingAPIURL: "http://localhost:8000"})

	query, err := queries.NewGetSyncHistoryQuery("ord-1")
	require.NoError(t, err)
	handler := root.CreateGetSyncHistoryQueryHandler()
	records, err := handler.Handle(context.Background(), query)

	require.NoError(t, err)
	assert.Empty(t, records)
}
