package service

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"quiz-widget/backend/internal/upload"
)

// WidgetDirectory confirms widgets exist and carries events to their subscribers.
type WidgetDirectory interface {
	Exists(ctx context.Context, widgetID string) error
	Publish(widgetID string, ev WidgetEvent)
}

// FileInput is one file of an upload request.
type FileInput struct {
	Name   string
	Size   int64
	Reader io.Reader
}

// Rejection explains why a file was skipped.
type Rejection struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

type UploadResult struct {
	Accepted []upload.File `json:"accepted"`
	Rejected []Rejection   `json:"rejected"`
}

type UploadConfig struct {
	MaxBytes int64
	Step     time.Duration
}

// UploadService keeps one upload tracker per widget.
type UploadService struct {
	widgets WidgetDirectory
	cfg     UploadConfig
	logger  *slog.Logger

	mu       sync.Mutex
	trackers map[string]*upload.Tracker
}

func NewUploadService(widgets WidgetDirectory, cfg UploadConfig, logger *slog.Logger) *UploadService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UploadService{widgets: widgets, cfg: cfg, logger: logger, trackers: make(map[string]*upload.Tracker)}
}

// Upload tracks every supported file. Unsupported files are reported in the
// result rather than failing the request.
func (s *UploadService) Upload(ctx context.Context, widgetID string, files []FileInput) (*UploadResult, error) {
	if err := s.widgets.Exists(ctx, widgetID); err != nil {
		return nil, err
	}
	tracker := s.tracker(widgetID)

	result := &UploadResult{Accepted: []upload.File{}, Rejected: []Rejection{}}
	for _, f := range files {
		file, err := tracker.Add(f.Name, f.Size, f.Reader)
		if err != nil {
			s.logger.Info("Skipped upload", "widget_id", widgetID, "name", f.Name, "error", err)
			result.Rejected = append(result.Rejected, Rejection{Name: f.Name, Reason: err.Error()})
			continue
		}
		result.Accepted = append(result.Accepted, file)
	}
	return result, nil
}

func (s *UploadService) List(ctx context.Context, widgetID string) ([]upload.File, error) {
	if err := s.widgets.Exists(ctx, widgetID); err != nil {
		return nil, err
	}
	s.mu.Lock()
	tracker, ok := s.trackers[widgetID]
	s.mu.Unlock()
	if !ok {
		return []upload.File{}, nil
	}
	return tracker.List(), nil
}

func (s *UploadService) Remove(ctx context.Context, widgetID, fileID string) error {
	if err := s.widgets.Exists(ctx, widgetID); err != nil {
		return err
	}
	s.mu.Lock()
	tracker, ok := s.trackers[widgetID]
	s.mu.Unlock()
	if !ok {
		return upload.ErrFileNotFound
	}
	return tracker.Remove(fileID)
}

// Forget cancels and drops every upload of a widget.
func (s *UploadService) Forget(widgetID string) {
	s.mu.Lock()
	tracker, ok := s.trackers[widgetID]
	delete(s.trackers, widgetID)
	s.mu.Unlock()
	if ok {
		tracker.Close()
	}
}

// Close cancels all uploads.
func (s *UploadService) Close() {
	s.mu.Lock()
	trackers := s.trackers
	s.trackers = make(map[string]*upload.Tracker)
	s.mu.Unlock()
	for _, tracker := range trackers {
		tracker.Close()
	}
}

func (s *UploadService) tracker(widgetID string) *upload.Tracker {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tracker, ok := s.trackers[widgetID]; ok {
		return tracker
	}
	var tracker *upload.Tracker
	tracker = upload.NewTracker(upload.Options{
		MaxBytes: s.cfg.MaxBytes,
		Step:     s.cfg.Step,
		Logger:   s.logger.With("widget_id", widgetID),
		OnChange: func() {
			s.widgets.Publish(widgetID, WidgetEvent{Kind: EventUploads, Uploads: tracker.List()})
		},
	})
	s.trackers[widgetID] = tracker
	return tracker
}
