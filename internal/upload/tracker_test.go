package upload_test

import (
	"bytes"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app_errors "quiz-widget/backend/internal/errors"
	"quiz-widget/backend/internal/upload"
)

var (
	pdfContent = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\n")
	txtContent = []byte("Lecture notes\nChapter one covers the basics.\n")
	pngContent = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")
)

func TestDetect(t *testing.T) {
	t.Run("PDF", func(t *testing.T) {
		mime, err := upload.Detect(bytes.NewReader(pdfContent))
		require.NoError(t, err)
		assert.Equal(t, "application/pdf", mime)
	})

	t.Run("Plain text", func(t *testing.T) {
		mime, err := upload.Detect(bytes.NewReader(txtContent))
		require.NoError(t, err)
		assert.Equal(t, "text/plain", mime)
	})

	t.Run("Image is rejected", func(t *testing.T) {
		_, err := upload.Detect(bytes.NewReader(pngContent))
		assert.ErrorIs(t, err, upload.ErrUnsupportedType)
		assert.ErrorIs(t, err, app_errors.ErrValidation)
		assert.ErrorContains(t, err, "image/png")
	})
}

func TestTracker_Add(t *testing.T) {
	t.Run("Supported file runs to completion", func(t *testing.T) {
		var changes atomic.Int32
		tr := upload.NewTracker(upload.Options{
			Step:     time.Millisecond,
			OnChange: func() { changes.Add(1) },
		})
		defer tr.Close()

		f, err := tr.Add("notes.pdf", int64(len(pdfContent)), bytes.NewReader(pdfContent))
		require.NoError(t, err)
		assert.NotEmpty(t, f.ID)
		assert.Equal(t, "notes.pdf", f.Name)
		assert.Equal(t, "application/pdf", f.MIME)
		assert.Equal(t, upload.StatePending, f.State)
		assert.Equal(t, 0, f.Progress)

		assert.Eventually(t, func() bool {
			got, err := tr.Get(f.ID)
			return err == nil && got.State == upload.StateCompleted
		}, 2*time.Second, 5*time.Millisecond)

		got, err := tr.Get(f.ID)
		require.NoError(t, err)
		assert.Equal(t, 100, got.Progress)
		assert.Greater(t, changes.Load(), int32(1))
	})

	t.Run("Unsupported file is not tracked", func(t *testing.T) {
		tr := upload.NewTracker(upload.Options{})
		defer tr.Close()

		_, err := tr.Add("photo.png", int64(len(pngContent)), bytes.NewReader(pngContent))
		assert.ErrorIs(t, err, upload.ErrUnsupportedType)
		assert.ErrorContains(t, err, "photo.png")
		assert.Empty(t, tr.List())
	})

	t.Run("Oversized file is rejected", func(t *testing.T) {
		tr := upload.NewTracker(upload.Options{MaxBytes: 10})
		defer tr.Close()

		_, err := tr.Add("notes.txt", int64(len(txtContent)), bytes.NewReader(txtContent))
		assert.ErrorIs(t, err, upload.ErrTooLarge)
		assert.Empty(t, tr.List())
	})
}

func TestTracker_Remove(t *testing.T) {
	tr := upload.NewTracker(upload.Options{Step: time.Hour})
	defer tr.Close()

	first, err := tr.Add("a.txt", 5, strings.NewReader("alpha text"))
	require.NoError(t, err)
	second, err := tr.Add("b.pdf", int64(len(pdfContent)), bytes.NewReader(pdfContent))
	require.NoError(t, err)

	list := tr.List()
	require.Len(t, list, 2)

	require.NoError(t, tr.Remove(first.ID))
	list = tr.List()
	require.Len(t, list, 1)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, upload.StatePending, list[0].State)

	err = tr.Remove(first.ID)
	assert.ErrorIs(t, err, upload.ErrFileNotFound)
	assert.ErrorIs(t, err, app_errors.ErrNotFound)
}
