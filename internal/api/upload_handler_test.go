package api_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"quiz-widget/backend/internal/api"
	app_errors "quiz-widget/backend/internal/errors"
	"quiz-widget/backend/internal/interfaces/mocks"
	"quiz-widget/backend/internal/service"
	"quiz-widget/backend/internal/upload"
)

func setupUploadHandler(t *testing.T, maxRequest int64) (*api.UploadHandler, *mocks.MockUploadService) {
	mockUploadSvc := mocks.NewMockUploadService(t)
	return api.NewUploadHandler(mockUploadSvc, maxRequest), mockUploadSvc
}

// multipartBody encodes files (name -> content) under the given field.
func multipartBody(t *testing.T, field string, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, content := range files {
		part, err := mw.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = io.WriteString(part, content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

// TestUploadHandler_HandleUpload tests POST /v1/widgets/{widgetID}/uploads.
//
// GOAL: Verify every part of the `files` field reaches the service with its
// name, size and content, and malformed requests are rejected up front.
func TestUploadHandler_HandleUpload(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// ARRANGE
		handler, mockSvc := setupUploadHandler(t, 0)
		body, contentType := multipartBody(t, "files", map[string]string{"notes.txt": "study notes"})

		var received string
		mockSvc.On("Upload", mock.Anything, "w1", mock.MatchedBy(func(files []service.FileInput) bool {
			return len(files) == 1 && files[0].Name == "notes.txt" && files[0].Size == int64(len("study notes"))
		})).Run(func(args mock.Arguments) {
			files := args.Get(2).([]service.FileInput)
			data, _ := io.ReadAll(files[0].Reader)
			received = string(data)
		}).Return(&service.UploadResult{
			Accepted: []upload.File{{ID: "f1", Name: "notes.txt", MIME: "text/plain", State: upload.StatePending}},
			Rejected: []service.Rejection{},
		}, nil).Once()

		// ACT
		req := httptest.NewRequest(http.MethodPost, "/v1/widgets/w1/uploads", body)
		req.Header.Set("Content-Type", contentType)
		req = addChiURLParams(req, map[string]string{"widgetID": "w1"})
		rr := httptest.NewRecorder()
		handler.HandleUpload(rr, req)

		// ASSERT
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "study notes", received)
		assert.Contains(t, rr.Body.String(), `"id":"f1"`)
	})

	t.Run("Failure - Not multipart", func(t *testing.T) {
		handler, _ := setupUploadHandler(t, 0)

		req := httptest.NewRequest(http.MethodPost, "/v1/widgets/w1/uploads", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		req = addChiURLParams(req, map[string]string{"widgetID": "w1"})
		rr := httptest.NewRecorder()
		handler.HandleUpload(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - Wrong field", func(t *testing.T) {
		handler, _ := setupUploadHandler(t, 0)
		body, contentType := multipartBody(t, "attachment", map[string]string{"notes.txt": "x"})

		req := httptest.NewRequest(http.MethodPost, "/v1/widgets/w1/uploads", body)
		req.Header.Set("Content-Type", contentType)
		req = addChiURLParams(req, map[string]string{"widgetID": "w1"})
		rr := httptest.NewRecorder()
		handler.HandleUpload(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "files")
	})

	t.Run("Failure - Request too large", func(t *testing.T) {
		handler, _ := setupUploadHandler(t, 64)
		body, contentType := multipartBody(t, "files", map[string]string{"notes.txt": strings.Repeat("a", 1024)})

		req := httptest.NewRequest(http.MethodPost, "/v1/widgets/w1/uploads", body)
		req.Header.Set("Content-Type", contentType)
		req = addChiURLParams(req, map[string]string{"widgetID": "w1"})
		rr := httptest.NewRecorder()
		handler.HandleUpload(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - Unknown widget", func(t *testing.T) {
		handler, mockSvc := setupUploadHandler(t, 0)
		body, contentType := multipartBody(t, "files", map[string]string{"notes.txt": "x"})
		mockSvc.On("Upload", mock.Anything, "missing", mock.Anything).Return(nil, app_errors.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodPost, "/v1/widgets/missing/uploads", body)
		req.Header.Set("Content-Type", contentType)
		req = addChiURLParams(req, map[string]string{"widgetID": "missing"})
		rr := httptest.NewRecorder()
		handler.HandleUpload(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestUploadHandler_HandleListUploads(t *testing.T) {
	handler, mockSvc := setupUploadHandler(t, 0)
	mockSvc.On("List", mock.Anything, "w1").Return([]upload.File{
		{ID: "f1", Name: "notes.txt", State: upload.StateUploading, Progress: 40},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/v1/widgets/w1/uploads", nil)
	req = addChiURLParams(req, map[string]string{"widgetID": "w1"})
	rr := httptest.NewRecorder()
	handler.HandleListUploads(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"progress":40`)
	assert.Contains(t, rr.Body.String(), `"state":"uploading"`)
}

func TestUploadHandler_HandleRemoveUpload(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockSvc := setupUploadHandler(t, 0)
		mockSvc.On("Remove", mock.Anything, "w1", "f1").Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/v1/widgets/w1/uploads/f1", nil)
		req = addChiURLParams(req, map[string]string{"widgetID": "w1", "fileID": "f1"})
		rr := httptest.NewRecorder()
		handler.HandleRemoveUpload(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Unknown file", func(t *testing.T) {
		handler, mockSvc := setupUploadHandler(t, 0)
		mockSvc.On("Remove", mock.Anything, "w1", "nope").Return(upload.ErrFileNotFound).Once()

		req := httptest.NewRequest(http.MethodDelete, "/v1/widgets/w1/uploads/nope", nil)
		req = addChiURLParams(req, map[string]string{"widgetID": "w1", "fileID": "nope"})
		rr := httptest.NewRecorder()
		handler.HandleRemoveUpload(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
