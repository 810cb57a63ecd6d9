// Package upload tracks documents dropped onto the widget. Transfers are
// simulated: accepted files step through a progress bar and are never sent
// anywhere.
package upload

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	app_errors "quiz-widget/backend/internal/errors"
)

var (
	ErrUnsupportedType = fmt.Errorf("%w: only PDF, Word, Excel and text files are supported", app_errors.ErrValidation)
	ErrTooLarge        = fmt.Errorf("%w: file is too large", app_errors.ErrValidation)
	ErrFileNotFound    = fmt.Errorf("%w: upload not found", app_errors.ErrNotFound)
)

// SupportedTypes are the document types the upload zone accepts.
var SupportedTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"text/plain",
	"application/vnd.ms-excel",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

type State string

const (
	StatePending   State = "pending"
	StateUploading State = "uploading"
	StateCompleted State = "completed"
)

// File is a tracked upload as shown in the file list.
type File struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Size      int64     `json:"size"`
	MIME      string    `json:"mime"`
	State     State     `json:"state"`
	Progress  int       `json:"progress"`
	CreatedAt time.Time `json:"created_at"`
}

type Options struct {
	// MaxBytes caps the size of a single file. Zero means no limit.
	MaxBytes int64
	// Step is the pause between progress ticks.
	Step     time.Duration
	Logger   *slog.Logger
	OnChange func()
}

type entry struct {
	file   File
	cancel context.CancelFunc
}

type Tracker struct {
	opts   Options
	logger *slog.Logger
	wg     sync.WaitGroup

	mu    sync.Mutex
	files map[string]*entry
}

func NewTracker(opts Options) *Tracker {
	if opts.Step <= 0 {
		opts.Step = 200 * time.Millisecond
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracker{opts: opts, logger: logger, files: make(map[string]*entry)}
}

// Detect sniffs the content type of r and checks it against SupportedTypes.
func Detect(r io.Reader) (string, error) {
	mt, err := mimetype.DetectReader(r)
	if err != nil {
		return "", fmt.Errorf("could not read file: %w", err)
	}
	for _, supported := range SupportedTypes {
		if mt.Is(supported) {
			return supported, nil
		}
	}
	return "", fmt.Errorf("%w (got %s)", ErrUnsupportedType, mt.String())
}

// Add sniffs the file and, if it is a supported document, starts tracking it.
func (t *Tracker) Add(name string, size int64, r io.Reader) (File, error) {
	if t.opts.MaxBytes > 0 && size > t.opts.MaxBytes {
		return File{}, fmt.Errorf("%w: %s is %d bytes, limit is %d", ErrTooLarge, name, size, t.opts.MaxBytes)
	}
	mime, err := Detect(r)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", name, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	e := &entry{
		file: File{
			ID:        uuid.NewString(),
			Name:      name,
			Size:      size,
			MIME:      mime,
			State:     StatePending,
			CreatedAt: time.Now().UTC(),
		},
		cancel: cancel,
	}

	t.mu.Lock()
	t.files[e.file.ID] = e
	t.mu.Unlock()

	t.logger.Info("Tracking upload", "file_id", e.file.ID, "name", name, "mime", mime)
	t.changed()

	t.wg.Add(1)
	go t.simulate(ctx, e.file.ID)
	return e.file, nil
}

func (t *Tracker) simulate(ctx context.Context, id string) {
	defer t.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(t.opts.Step):
		}

		t.mu.Lock()
		e, ok := t.files[id]
		if !ok {
			t.mu.Unlock()
			return
		}
		e.file.Progress = min(100, e.file.Progress+10+rand.IntN(21))
		e.file.State = StateUploading
		if e.file.Progress == 100 {
			e.file.State = StateCompleted
		}
		done := e.file.State == StateCompleted
		t.mu.Unlock()

		t.changed()
		if done {
			t.logger.Debug("Upload completed", "file_id", id)
			return
		}
	}
}

// List returns tracked files oldest first.
func (t *Tracker) List() []File {
	t.mu.Lock()
	out := make([]File, 0, len(t.files))
	for _, e := range t.files {
		out = append(out, e.file)
	}
	t.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (t *Tracker) Get(id string) (File, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.files[id]
	if !ok {
		return File{}, ErrFileNotFound
	}
	return e.file, nil
}

// Remove stops tracking a file, cancelling its transfer if it is still running.
func (t *Tracker) Remove(id string) error {
	t.mu.Lock()
	e, ok := t.files[id]
	if ok {
		delete(t.files, id)
	}
	t.mu.Unlock()
	if !ok {
		return ErrFileNotFound
	}
	e.cancel()
	t.changed()
	return nil
}

// Close cancels every running transfer and waits for them to stop.
func (t *Tracker) Close() {
	t.mu.Lock()
	for _, e := range t.files {
		e.cancel()
	}
	t.mu.Unlock()
	t.wg.Wait()
}

func (t *Tracker) changed() {
	if t.opts.OnChange != nil {
		t.opts.OnChange()
	}
}
