package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"skillmatch-backend/internal/domain"
	"skillmatch-backend/internal/skill"
	"skillmatch-backend/pkg/apperror"
	"skillmatch-backend/pkg/security"
	"skillmatch-backend/pkg/security/antivirus"
)

type resumeUsecase struct {
	store    domain.DocumentStore
	text     domain.TextExtractor
	skills   *skill.Extractor
	archive  domain.ResumeArchive // optional
	scanner  antivirus.Scanner    // optional
	audit    *security.SecurityLogger
	maxBytes int64
	log      *slog.Logger
	now      func() time.Time
}

type ResumeUsecaseDeps struct {
	Store    domain.DocumentStore
	Text     domain.TextExtractor
	Skills   *skill.Extractor
	Archive  domain.ResumeArchive
	Scanner  antivirus.Scanner
	Audit    *security.SecurityLogger
	MaxBytes int64
	Logger   *slog.Logger
	Clock    func() time.Time
}

func NewResumeUsecase(deps ResumeUsecaseDeps) domain.ResumeUsecase {
	u := &resumeUsecase{
		store:    deps.Store,
		text:     deps.Text,
		skills:   deps.Skills,
		archive:  deps.Archive,
		scanner:  deps.Scanner,
		audit:    deps.Audit,
		maxBytes: deps.MaxBytes,
		log:      deps.Logger,
		now:      deps.Clock,
	}
	if u.skills == nil {
		u.skills = skill.NewExtractor(nil)
	}
	if u.maxBytes <= 0 {
		u.maxBytes = security.MaxResumeBytes
	}
	if u.log == nil {
		u.log = slog.Default()
	}
	if u.now == nil {
		u.now = time.Now
	}
	return u
}

func (u *resumeUsecase) Upload(ctx context.Context, userID string, file domain.ResumeFile) ([]string, error) {
	if len(file.Data) == 0 {
		return nil, apperror.BadRequest("No file uploaded")
	}
	if int64(len(file.Data)) > u.maxBytes {
		return nil, apperror.TooLarge(nil)
	}
	if res := security.ValidateResume(file.Filename, file.Data, file.ContentType); !res.Valid {
		u.audit.LogFileEvent(ctx, security.EventFileRejected, userID, file.Filename, map[string]interface{}{
			"reason": res.Error,
			"mime":   res.DetectedMIME,
		})
		return nil, apperror.New(http.StatusBadRequest, "Only PDF files are allowed", errors.New(res.Error))
	}

	if u.scanner != nil {
		scan := u.scanner.Scan(ctx, file.Filename, file.Data)
		if scan.Error != nil {
			u.audit.LogFileEvent(ctx, security.EventScanUnavailable, userID, file.Filename, map[string]interface{}{
				"scanner": scan.ScannerName,
				"error":   scan.Error.Error(),
			})
			return nil, apperror.Unavailable("File could not be scanned. Please try again later.", scan.Error)
		}
		if scan.Infected {
			u.log.Warn("Malware detected in resume", "user_id", userID, "threat", scan.ThreatName, "scanner", scan.ScannerName)
			u.audit.LogFileEvent(ctx, security.EventMalwareDetected, userID, file.Filename, map[string]interface{}{
				"scanner": scan.ScannerName,
				"threat":  scan.ThreatName,
			})
			return nil, apperror.Unprocessable("File rejected by malware scan", nil)
		}
	}

	text, err := u.text.ExtractText(file.Data)
	if err != nil {
		return nil, apperror.Unprocessable("Could not read text from the PDF", err)
	}
	found := u.skills.Extract(text)

	uploadedAt := u.now().UnixMilli()
	patch := domain.Patch{
		Set: domain.Document{
			domain.FieldResumeText:      text,
			domain.FieldResumeUpdatedAt: uploadedAt,
		},
	}
	if len(found) > 0 {
		patch.Union = map[string][]string{domain.FieldSkills: found}
		patch.UnionKey = skill.Normalize
	}
	if err := u.store.Merge(ctx, domain.CollectionUsers, userID, patch); err != nil {
		return nil, fmt.Errorf("save resume: %w", err)
	}

	if u.archive != nil {
		key := fmt.Sprintf("resumes/%s/%d.pdf", userID, uploadedAt)
		if err := u.archive.Put(ctx, key, file.Data, file.ContentType); err != nil {
			u.log.Warn("Resume archive failed", "user_id", userID, "key", key, "error", err)
		}
	}

	u.log.Info("Resume processed", "user_id", userID, "skills", len(found), "text_chars", len(text))
	return found, nil
}
