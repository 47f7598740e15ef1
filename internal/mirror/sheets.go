package mirror

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/sheets/v4"

	"github.com/betalabs/feedback-intake/internal/model"
)

// Sheets mirrors submissions into a Google spreadsheet located by name.
// The spreadsheet id is resolved lazily via the Drive API and cached.
type Sheets struct {
	sheetsService *sheets.Service
	driveService  *drive.Service
	logger        *slog.Logger

	spreadsheetName string
	timeout         time.Duration

	mu            sync.Mutex
	spreadsheetID string
}

// Ensure Sheets implements Mirror
var _ Mirror = (*Sheets)(nil)

// New builds a mirror from the given configuration. When no credential
// source resolves, or the API clients cannot be constructed, it returns a
// Disabled mirror rather than an error: mirroring is advisory and its
// absence must never prevent the service from starting.
func New(ctx context.Context, cfg Config, logger *slog.Logger) Mirror {
	creds, ok := resolveCredentials(cfg)
	if !ok {
		logger.Info("sheets mirror disabled: no credentials resolved")
		return NewDisabled()
	}

	sheetsService, err := sheets.NewService(ctx, creds)
	if err != nil {
		logger.Warn("sheets mirror disabled: sheets client failed",
			slog.String("error", err.Error()))
		return NewDisabled()
	}

	driveService, err := drive.NewService(ctx, creds)
	if err != nil {
		logger.Warn("sheets mirror disabled: drive client failed",
			slog.String("error", err.Error()))
		return NewDisabled()
	}

	name := cfg.SpreadsheetName
	if name == "" {
		name = DefaultSpreadsheetName
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultConfig().Timeout
	}

	return &Sheets{
		sheetsService:   sheetsService,
		driveService:    driveService,
		logger:          logger,
		spreadsheetName: name,
		timeout:         timeout,
	}
}

// Available reports that the mirror was constructed with usable credentials
func (s *Sheets) Available() bool {
	return true
}

// Append writes one row for the submission. Network I/O is bounded by the
// configured timeout. Never returns an error to the caller.
func (s *Sheets) Append(ctx context.Context, sub *model.Submission) bool {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	id, err := s.resolveSpreadsheetID(ctx)
	if err != nil {
		s.logger.Warn("sheets mirror append failed",
			slog.Int64("submission_id", int64(sub.ID)),
			slog.String("error", err.Error()))
		return false
	}

	row := sub.SheetRow()
	values := make([]any, len(row))
	for i, cell := range row {
		values[i] = cell
	}

	_, err = s.sheetsService.Spreadsheets.Values.
		Append(id, "A1", &sheets.ValueRange{Values: [][]any{values}}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		s.logger.Warn("sheets mirror append failed",
			slog.Int64("submission_id", int64(sub.ID)),
			slog.String("error", err.Error()))
		return false
	}

	return true
}

// resolveSpreadsheetID looks up the spreadsheet by name via the Drive API.
// The id is cached after the first successful resolution.
func (s *Sheets) resolveSpreadsheetID(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.spreadsheetID != "" {
		return s.spreadsheetID, nil
	}

	query := fmt.Sprintf(
		"name = '%s' and mimeType = 'application/vnd.google-apps.spreadsheet' and trashed = false",
		strings.ReplaceAll(s.spreadsheetName, "'", "\\'"),
	)

	list, err := s.driveService.Files.List().
		Q(query).
		Fields("files(id)").
		PageSize(1).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("looking up spreadsheet %q: %w", s.spreadsheetName, err)
	}
	if len(list.Files) == 0 {
		return "", fmt.Errorf("spreadsheet %q not found", s.spreadsheetName)
	}

	s.spreadsheetID = list.Files[0].Id
	return s.spreadsheetID, nil
}
