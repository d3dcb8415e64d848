package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"docdash/internal/clipboard"
	"docdash/internal/model"
	"docdash/internal/repository/memory"
	"docdash/internal/service"
	serviceMocks "docdash/internal/service/mocks"
	"docdash/internal/upload"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type readiness bool

func (r readiness) Running() bool { return bool(r) }

func decodeError(t *testing.T, resp *http.Response) errorPayload {
	t.Helper()
	var body errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func TestHealthCheck(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		app := fiber.New()
		app.Get("/health", HealthCheck(readiness(true)))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("ticker stopped", func(t *testing.T) {
		app := fiber.New()
		app.Get("/health", HealthCheck(readiness(false)))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "SERVICE_UNAVAILABLE", decodeError(t, resp).Error.Code)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListDocuments(t *testing.T) {
	mockSvc := new(serviceMocks.MockDashboardService)
	app := fiber.New()
	app.Get("/documents", ListDocuments(mockSvc))

	t.Run("success", func(t *testing.T) {
		expectedRes := &service.DocumentListResult{
			Items: []model.DocumentRecord{{ID: "1", Name: "Smart Contract Audit Report"}},
			Total: 1,
		}
		mockSvc.On("List", mock.Anything, 10, 0).Return(expectedRes, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var res service.DocumentListResult
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, 1, res.Total)
		assert.Equal(t, "1", res.Items[0].ID)
	})

	t.Run("custom paging", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, 2, 1).Return(&service.DocumentListResult{}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents?limit=2&offset=1", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("invalid limit", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents?limit=abc", nil))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_LIMIT", decodeError(t, resp).Error.Code)
	})

	t.Run("negative offset", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents?offset=-1", nil))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_OFFSET", decodeError(t, resp).Error.Code)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, 10, 0).Return(nil, errors.New("boom")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents", nil))
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "INTERNAL_ERROR", decodeError(t, resp).Error.Code)
	})

	mockSvc.AssertExpectations(t)
}

func TestGetDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockDashboardService)
	app := fiber.New()
	app.Get("/documents/:id", GetDocument(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, "2").
			Return(&model.DocumentRecord{ID: "2", Name: "Tokenomics Whitepaper"}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents/2", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var doc model.DocumentRecord
		json.NewDecoder(resp.Body).Decode(&doc)
		assert.Equal(t, "Tokenomics Whitepaper", doc.Name)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, "99").Return(nil, service.ErrNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents/99", nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, "3").Return(nil, errors.New("boom")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents/3", nil))
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestDashboardHandlers(t *testing.T) {
	mockSvc := new(serviceMocks.MockDashboardService)
	wallet := model.NewWallet("0x742d35Cc4Bf4a1CafC7Ae4E7F3B4c8d9e0F1a2B3")
	app := fiber.New()
	app.Get("/dashboard", GetDashboard(mockSvc, wallet))
	app.Get("/dashboard/stats", GetStats(mockSvc))
	app.Get("/dashboard/status", GetStatus(mockSvc))
	app.Post("/dashboard/clipboard", CopyToClipboard(mockSvc))
	app.Post("/dashboard/wallet/copy", CopyWallet(mockSvc, wallet))

	t.Run("dashboard", func(t *testing.T) {
		mockSvc.On("Dashboard", mock.Anything).Return(&model.Dashboard{
			Stats:      model.DashboardStats{TotalDocuments: 3, VerifiedDocuments: 2, StorageUsed: "7.30 MB", Summaries: 3},
			Processing: true,
		}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/dashboard", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var d model.Dashboard
		json.NewDecoder(resp.Body).Decode(&d)
		assert.Equal(t, 3, d.Stats.TotalDocuments)
		assert.Equal(t, "7.30 MB", d.Stats.StorageUsed)
		assert.True(t, d.Processing)
		assert.Equal(t, "0x742d...a2B3", d.Wallet.Short)
	})

	t.Run("dashboard error", func(t *testing.T) {
		mockSvc.On("Dashboard", mock.Anything).Return(nil, errors.New("boom")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/dashboard", nil))
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})

	t.Run("stats", func(t *testing.T) {
		mockSvc.On("Stats", mock.Anything).Return(&model.DashboardStats{TotalDocuments: 4}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var s model.DashboardStats
		json.NewDecoder(resp.Body).Decode(&s)
		assert.Equal(t, 4, s.TotalDocuments)
	})

	t.Run("status", func(t *testing.T) {
		mockSvc.On("Processing").Return(false).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/dashboard/status", nil))
		var body map[string]bool
		json.NewDecoder(resp.Body).Decode(&body)
		assert.False(t, body["processing"])
	})

	t.Run("clipboard", func(t *testing.T) {
		mockSvc.On("Copy", "0xabc").Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/dashboard/clipboard", `{"text":"0xabc"}`))
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("clipboard bad body", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/dashboard/clipboard", `{`))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "BAD_REQUEST", decodeError(t, resp).Error.Code)
	})

	t.Run("copy wallet", func(t *testing.T) {
		mockSvc.On("Copy", wallet.Address).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/dashboard/wallet/copy", nil))
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	mockSvc.AssertExpectations(t)
}

func newUploadApp(svc service.UploadService) *fiber.App {
	app := fiber.New()
	app.Post("/uploads", OpenUpload(svc))
	app.Get("/uploads/:id", GetUpload(svc))
	app.Delete("/uploads/:id", CloseUpload(svc))
	app.Put("/uploads/:id/file", SelectUploadFile(svc))
	app.Put("/uploads/:id/summary", SetUploadSummary(svc))
	app.Post("/uploads/:id/start", StartUpload(svc))
	app.Post("/uploads/:id/cancel", CancelUpload(svc))
	return app
}

func TestOpenUpload(t *testing.T) {
	mockSvc := new(serviceMocks.MockUploadService)
	app := newUploadApp(mockSvc)
	id := uuid.NewString()

	t.Run("created", func(t *testing.T) {
		mockSvc.On("Open", mock.Anything).
			Return(&service.UploadSession{ID: id, Snapshot: upload.Snapshot{State: upload.StateIdle}}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/uploads", nil))
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "/uploads/"+id, resp.Header.Get(fiber.HeaderLocation))

		var body map[string]any
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, id, body["id"])
		assert.Equal(t, "idle", body["state"])
	})

	t.Run("service closed", func(t *testing.T) {
		mockSvc.On("Open", mock.Anything).Return(nil, service.ErrServiceClosed).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/uploads", nil))
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})
}

func TestGetUpload(t *testing.T) {
	mockSvc := new(serviceMocks.MockUploadService)
	app := newUploadApp(mockSvc)

	t.Run("invalid id", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/uploads/not-a-uuid", nil))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.NewString()
		mockSvc.On("Get", mock.Anything, id).Return(nil, service.ErrSessionNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/uploads/"+id, nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
	})
}

func TestSelectUploadFile(t *testing.T) {
	mockSvc := new(serviceMocks.MockUploadService)
	app := newUploadApp(mockSvc)
	id := uuid.NewString()
	target := "/uploads/" + id + "/file"

	t.Run("multipart", func(t *testing.T) {
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		part, _ := writer.CreateFormFile("file", "audit.pdf")
		part.Write([]byte("0123456789"))
		writer.Close()

		want := upload.FileRef{Name: "audit.pdf", Size: 10}
		mockSvc.On("SelectFile", mock.Anything, id, want).
			Return(&service.UploadSession{ID: id, Snapshot: upload.Snapshot{State: upload.StateFileSelected, File: &want}}, nil).Once()

		req := httptest.NewRequest(http.MethodPut, target, body)
		req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())
		resp, _ := app.Test(req)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("multipart without file", func(t *testing.T) {
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		writer.WriteField("other", "x")
		writer.Close()

		req := httptest.NewRequest(http.MethodPut, target, body)
		req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())
		resp, _ := app.Test(req)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "FILE_REQUIRED", decodeError(t, resp).Error.Code)
	})

	t.Run("json", func(t *testing.T) {
		want := upload.FileRef{Name: "notes.txt", Size: 2048}
		mockSvc.On("SelectFile", mock.Anything, id, want).
			Return(&service.UploadSession{ID: id}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, target, `{"name":"notes.txt","size":2048}`))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("json without name", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPut, target, `{"size":1}`))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "FILE_REQUIRED", decodeError(t, resp).Error.Code)
	})

	t.Run("negative size", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPut, target, `{"name":"a","size":-1}`))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("busy", func(t *testing.T) {
		mockSvc.On("SelectFile", mock.Anything, id, upload.FileRef{Name: "b"}).
			Return(nil, service.ErrUploadBusy).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, target, `{"name":"b"}`))
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "UPLOAD_BUSY", decodeError(t, resp).Error.Code)
	})

	mockSvc.AssertExpectations(t)
}

func TestSetUploadSummary(t *testing.T) {
	mockSvc := new(serviceMocks.MockUploadService)
	app := newUploadApp(mockSvc)
	id := uuid.NewString()

	mockSvc.On("SetSummary", mock.Anything, id, "quarterly report").
		Return(&service.UploadSession{ID: id, Snapshot: upload.Snapshot{Summary: "quarterly report"}}, nil).Once()

	resp, _ := app.Test(jsonRequest(http.MethodPut, "/uploads/"+id+"/summary", `{"summary":"quarterly report"}`))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = app.Test(jsonRequest(http.MethodPut, "/uploads/"+id+"/summary", `not json`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	mockSvc.AssertExpectations(t)
}

func TestStartUpload(t *testing.T) {
	mockSvc := new(serviceMocks.MockUploadService)
	app := newUploadApp(mockSvc)
	id := uuid.NewString()

	t.Run("accepted", func(t *testing.T) {
		mockSvc.On("Start", mock.Anything, id).
			Return(&service.UploadSession{ID: id, Snapshot: upload.Snapshot{State: upload.StateUploading}}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/uploads/"+id+"/start", nil))
		assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	})

	t.Run("no file selected", func(t *testing.T) {
		mockSvc.On("Start", mock.Anything, id).Return(nil, service.ErrUploadNotReady).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/uploads/"+id+"/start", nil))
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "UPLOAD_NOT_READY", decodeError(t, resp).Error.Code)
	})
}

func TestStartUpload_SessionIDOutlivesRequest(t *testing.T) {
	mockSvc := new(serviceMocks.MockUploadService)
	app := newUploadApp(mockSvc)
	first, second := uuid.NewString(), uuid.NewString()

	var held string
	mockSvc.On("Start", mock.Anything, first).
		Run(func(args mock.Arguments) { held = args.String(1) }).
		Return(&service.UploadSession{ID: first}, nil).Once()
	mockSvc.On("Get", mock.Anything, second).Return(nil, service.ErrSessionNotFound).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/uploads/"+first+"/start", nil))
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/uploads/"+second, nil))
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	assert.Equal(t, first, held)
	mockSvc.AssertExpectations(t)
}

func TestCancelAndCloseUpload(t *testing.T) {
	mockSvc := new(serviceMocks.MockUploadService)
	app := newUploadApp(mockSvc)
	id := uuid.NewString()

	mockSvc.On("Cancel", mock.Anything, id).
		Return(&service.UploadSession{ID: id, Snapshot: upload.Snapshot{State: upload.StateFileSelected}}, nil).Once()
	resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/uploads/"+id+"/cancel", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	mockSvc.On("Close", mock.Anything, id).Return(nil).Once()
	resp, _ = app.Test(httptest.NewRequest(http.MethodDelete, "/uploads/"+id, nil))
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	mockSvc.On("Close", mock.Anything, id).Return(service.ErrSessionNotFound).Once()
	resp, _ = app.Test(httptest.NewRequest(http.MethodDelete, "/uploads/"+id, nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	mockSvc.AssertExpectations(t)
}

func TestErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Get("/bad", func(c *fiber.Ctx) error { return fiber.ErrBadRequest })
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("boom") })
	app.Get("/not-ready", func(c *fiber.Ctx) error {
		return fmt.Errorf("start: %w", service.ErrUploadNotReady)
	})
	app.Get("/closed", func(c *fiber.Ctx) error { return service.ErrServiceClosed })

	tests := []struct {
		target string
		status int
		code   string
	}{
		{"/bad", http.StatusBadRequest, "BAD_REQUEST"},
		{"/boom", http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"/missing", http.StatusNotFound, "NOT_FOUND"},
		{"/not-ready", http.StatusConflict, "UPLOAD_NOT_READY"},
		{"/closed", http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE"},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			resp, _ := app.Test(httptest.NewRequest(http.MethodGet, tt.target, nil))
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.code, decodeError(t, resp).Error.Code)
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{service.ErrIDRequired, http.StatusBadRequest, "INVALID_ID"},
		{service.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{service.ErrSessionNotFound, http.StatusNotFound, "NOT_FOUND"},
		{service.ErrUploadNotReady, http.StatusConflict, "UPLOAD_NOT_READY"},
		{service.ErrUploadBusy, http.StatusConflict, "UPLOAD_BUSY"},
		{service.ErrServiceClosed, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE"},
		{fmt.Errorf("get: %w", service.ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{context.Canceled, http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			got := classify(tt.err)
			assert.Equal(t, tt.status, got.status)
			assert.Equal(t, tt.code, got.code)
		})
	}
}

// TestRoutes_UploadFlow drives the real services through the router.
func TestRoutes_UploadFlow(t *testing.T) {
	repo, err := memory.NewDocumentMemory(memory.SampleDocuments()...)
	require.NoError(t, err)
	clock := clockwork.NewFakeClock()
	uploads := service.NewUploadService(repo, service.WithSimulatorOptions(upload.WithClock(clock)))
	defer uploads.Shutdown()
	clip := clipboard.NewMemory()

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	RegisterRoutes(app, Deps{
		Dashboard: service.NewDashboardService(repo, nil, clip, nil),
		Uploads:   uploads,
		Ready:     readiness(true),
		Wallet:    model.NewWallet("0x742d35Cc4Bf4a1CafC7Ae4E7F3B4c8d9e0F1a2B3"),
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/uploads", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "no-store", resp.Header.Get(fiber.HeaderCacheControl))
	var sess service.UploadSession
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sess))

	resp, _ = app.Test(httptest.NewRequest(http.MethodPost, "/uploads/"+sess.ID+"/start", nil))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = app.Test(jsonRequest(http.MethodPut, "/uploads/"+sess.ID+"/file", `{"name":"report.pdf","size":1048576}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = app.Test(httptest.NewRequest(http.MethodPost, "/uploads/"+sess.ID+"/start", nil))
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	clock.Advance(upload.DefaultDelay)
	require.Eventually(t, func() bool { return repo.Len() == 4 }, time.Second, time.Millisecond)

	resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var d model.Dashboard
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&d))
	assert.Equal(t, 4, d.Stats.TotalDocuments)
	assert.Equal(t, "report.pdf", d.Documents[3].Name)
	assert.Equal(t, "1.00 MB", d.Documents[3].Size)
	assert.Equal(t, "0x742d...a2B3", d.Wallet.Short)

	resp, _ = app.Test(httptest.NewRequest(http.MethodPost, "/dashboard/wallet/copy", nil))
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "0x742d35Cc4Bf4a1CafC7Ae4E7F3B4c8d9e0F1a2B3", clip.Last())

	resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/documents/"+d.Documents[3].ID, nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
