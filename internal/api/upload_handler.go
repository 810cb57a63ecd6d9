package api

import (
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"

	app_errors "quiz-widget/backend/internal/errors"
	"quiz-widget/backend/internal/interfaces"
	"quiz-widget/backend/internal/service"
)

// multipartMemory is how much of a multipart body is held in memory before
// spilling to temp files.
const multipartMemory = 8 << 20

// UploadHandler attaches files to a widget.
type UploadHandler struct {
	uploads    interfaces.UploadService
	maxRequest int64
}

// NewUploadHandler returns a handler that rejects request bodies larger than
// maxRequest bytes. Zero disables the limit.
func NewUploadHandler(uploadSvc interfaces.UploadService, maxRequest int64) *UploadHandler {
	return &UploadHandler{uploads: uploadSvc, maxRequest: maxRequest}
}

// HandleUpload godoc
// @Summary      Upload files
// @Description  Attaches PDF, Word, Excel or text files. Unsupported files are listed as rejected.
// @Tags         Uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        widgetID  path      string  true  "Widget ID"
// @Param        files     formData  file    true  "Files to attach"
// @Success      200       {object}  service.UploadResult
// @Failure      400       {object}  ErrorResponse
// @Failure      404       {object}  ErrorResponse
// @Router       /v1/widgets/{widgetID}/uploads [post]
func (h *UploadHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if h.maxRequest > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxRequest)
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid multipart form: %s", app_errors.ErrValidation, err.Error()))
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		respondWithError(w, fmt.Errorf("%w: no files in field 'files'", app_errors.ErrValidation))
		return
	}

	files := make([]service.FileInput, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			respondWithError(w, fmt.Errorf("could not open uploaded file %q: %w", fh.Filename, err))
			return
		}
		defer closeFile(f)
		files = append(files, service.FileInput{Name: fh.Filename, Size: fh.Size, Reader: f})
	}

	result, err := h.uploads.Upload(r.Context(), chi.URLParam(r, "widgetID"), files)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// HandleListUploads godoc
// @Summary      List uploads
// @Description  Lists the widget's files with their upload state and progress.
// @Tags         Uploads
// @Produce      json
// @Param        widgetID  path      string  true  "Widget ID"
// @Success      200       {array}   upload.File
// @Failure      404       {object}  ErrorResponse
// @Router       /v1/widgets/{widgetID}/uploads [get]
func (h *UploadHandler) HandleListUploads(w http.ResponseWriter, r *http.Request) {
	files, err := h.uploads.List(r.Context(), chi.URLParam(r, "widgetID"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, files)
}

// HandleRemoveUpload godoc
// @Summary      Remove an upload
// @Description  Removes a file, cancelling it if it is still uploading.
// @Tags         Uploads
// @Produce      json
// @Param        widgetID  path      string  true  "Widget ID"
// @Param        fileID    path      string  true  "File ID"
// @Success      200       {object}  StatusResponse
// @Failure      404       {object}  ErrorResponse
// @Router       /v1/widgets/{widgetID}/uploads/{fileID} [delete]
func (h *UploadHandler) HandleRemoveUpload(w http.ResponseWriter, r *http.Request) {
	err := h.uploads.Remove(r.Context(), chi.URLParam(r, "widgetID"), chi.URLParam(r, "fileID"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

func closeFile(f multipart.File) { _ = f.Close() }
