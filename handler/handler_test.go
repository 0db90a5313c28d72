package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/finport/portfolio-etl/entity"
	"github.com/finport/portfolio-etl/infra/locker"
	analyticsUsecase "github.com/finport/portfolio-etl/usecase/analytics"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePipeline struct {
	report entity.RunReport
	err    error
	// set when Run observes the lock already released, which would mean the
	// handler unlocked too early
	ranWhileUnlocked bool
	lock             *locker.Locker
}

func (f *fakePipeline) Run(ctx context.Context) (entity.RunReport, error) {
	if f.lock != nil && !f.lock.IsProcessing("etl_run") {
		f.ranWhileUnlocked = true
	}
	return f.report, f.err
}

func (f *fakePipeline) Extract() entity.TableSet             { return entity.TableSet{} }
func (f *fakePipeline) Transform(set *entity.TableSet) error { return nil }
func (f *fakePipeline) Load(set entity.TableSet) error       { return nil }
func (f *fakePipeline) GenerateReport(set entity.TableSet, runID string) (entity.RunReport, error) {
	return f.report, f.err
}

type fakeAnalytics struct {
	names   []string
	results map[string]entity.QueryResult
}

func (f *fakeAnalytics) QueryNames() []string { return f.names }

func (f *fakeAnalytics) Run(name string) (entity.QueryResult, error) {
	result, ok := f.results[name]
	if !ok {
		return entity.QueryResult{}, analyticsUsecase.ErrUnknownQuery
	}
	return result, nil
}

func (f *fakeAnalytics) RunAll() ([]entity.QueryResult, error) {
	var all []entity.QueryResult
	for _, name := range f.names {
		all = append(all, f.results[name])
	}
	return all, nil
}

type fakeMonitor struct {
	report entity.HealthReport
	err    error
}

func (f *fakeMonitor) CheckHealth() (entity.HealthReport, error) { return f.report, f.err }
func (f *fakeMonitor) BackupDatabase() (string, error)           { return "", nil }

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestRunETLSuccess(t *testing.T) {
	lock := locker.New()
	pipeline := &fakePipeline{report: entity.RunReport{RunID: "run-1"}, lock: lock}
	h := NewPipelineHandler(pipeline, &fakeAnalytics{}, &fakeMonitor{}, lock, "")

	rec := httptest.NewRecorder()
	h.RunETL(rec, httptest.NewRequest(http.MethodPost, "/run_etl", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "success", resp.Status)
	assert.False(t, pipeline.ranWhileUnlocked)
	// Lock must be released after the run so a second trigger works.
	assert.False(t, lock.IsProcessing("etl_run"))
}

func TestRunETLConflictWhileRunning(t *testing.T) {
	lock := locker.New()
	require.True(t, lock.TryAcquire("etl_run"))
	h := NewPipelineHandler(&fakePipeline{}, &fakeAnalytics{}, &fakeMonitor{}, lock, "")

	rec := httptest.NewRecorder()
	h.RunETL(rec, httptest.NewRequest(http.MethodPost, "/run_etl", nil))

	assert.Equal(t, http.StatusConflict, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "error", resp.Status)
	assert.Contains(t, resp.Message, "already in progress")
}

func TestRunETLPipelineFailure(t *testing.T) {
	lock := locker.New()
	h := NewPipelineHandler(&fakePipeline{err: errors.New("load stage failed")},
		&fakeAnalytics{}, &fakeMonitor{}, lock, "")

	rec := httptest.NewRecorder()
	h.RunETL(rec, httptest.NewRequest(http.MethodPost, "/run_etl", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, lock.IsProcessing("etl_run"))
}

func TestListQueries(t *testing.T) {
	analytics := &fakeAnalytics{names: []string{"portfolio_summary", "loan_type_analysis"}}
	h := NewPipelineHandler(&fakePipeline{}, analytics, &fakeMonitor{}, locker.New(), "")

	rec := httptest.NewRecorder()
	h.ListQueries(rec, httptest.NewRequest(http.MethodGet, "/analytics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "success", resp.Status)
	names, ok := resp.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, names, 2)
}

func TestRunQueryNotFound(t *testing.T) {
	h := NewPipelineHandler(&fakePipeline{}, &fakeAnalytics{}, &fakeMonitor{}, locker.New(), "")

	req := httptest.NewRequest(http.MethodGet, "/analytics/no_such_query", nil)
	req = mux.SetURLVars(req, map[string]string{"name": "no_such_query"})
	rec := httptest.NewRecorder()
	h.RunQuery(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRunQuerySuccess(t *testing.T) {
	analytics := &fakeAnalytics{
		names: []string{"portfolio_summary"},
		results: map[string]entity.QueryResult{
			"portfolio_summary": {Name: "portfolio_summary", Columns: []string{"metric", "value"}},
		},
	}
	h := NewPipelineHandler(&fakePipeline{}, analytics, &fakeMonitor{}, locker.New(), "")

	req := httptest.NewRequest(http.MethodGet, "/analytics/portfolio_summary", nil)
	req = mux.SetURLVars(req, map[string]string{"name": "portfolio_summary"})
	rec := httptest.NewRecorder()
	h.RunQuery(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "success", resp.Status)
}

func TestHealthEndpoint(t *testing.T) {
	monitor := &fakeMonitor{report: entity.HealthReport{DatabasePath: "test.db"}}
	h := NewPipelineHandler(&fakePipeline{}, &fakeAnalytics{}, monitor, locker.New(), "")

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestGetReportMissingFile(t *testing.T) {
	h := NewPipelineHandler(&fakePipeline{}, &fakeAnalytics{}, &fakeMonitor{},
		locker.New(), filepath.Join(t.TempDir(), "absent.json"))

	rec := httptest.NewRecorder()
	h.GetReport(rec, httptest.NewRequest(http.MethodGet, "/report", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetReportReturnsLastRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "etl_report.json")
	payload := `{"run_id": "run-9", "timestamp": "2026-08-30T10:00:00Z", "summary": {}}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0644))

	h := NewPipelineHandler(&fakePipeline{}, &fakeAnalytics{}, &fakeMonitor{}, locker.New(), path)

	rec := httptest.NewRecorder()
	h.GetReport(rec, httptest.NewRequest(http.MethodGet, "/report", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "run-9", data["run_id"])
}
