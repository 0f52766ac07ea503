package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime"
	"strings"

	"jobtrack/internal/models"
	"jobtrack/internal/repositories"
	"jobtrack/pkg/apperror"
	"jobtrack/pkg/blobstore"
	"jobtrack/pkg/pdftext"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

const (
	resumePrefix  = "resumes/"
	ownerMetaKey  = "owner"
	sniffByteSize = 3072
)

// ResumeService manages the one resume PDF each user may store.
type ResumeService struct {
	users repositories.UserRepository
	store blobstore.Store
}

// NewResumeService creates a new ResumeService.
func NewResumeService(users repositories.UserRepository, store blobstore.Store) *ResumeService {
	return &ResumeService{users: users, store: store}
}

func ownerPrefix(owner string) string {
	return resumePrefix + owner + "/"
}

func resumeKey(owner, id string) string {
	return ownerPrefix(owner) + id + ".pdf"
}

// ResumeFilename is the download name offered for owner's resume.
func ResumeFilename(owner string) string {
	return owner + "_resume.pdf"
}

// Upload stores a new resume for owner and returns its id. A previous resume is
// removed after the user's reference has moved to the new one; failing to remove it
// is logged and does not fail the upload.
func (s *ResumeService) Upload(ctx context.Context, owner string, r io.Reader, size int64, contentType string) (string, error) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.EqualFold(mediaType, models.ResumeContentType) {
		return "", apperror.UnsupportedMedia("Only PDF files are allowed")
	}

	head := make([]byte, sniffByteSize)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", apperror.BadRequest("Could not read uploaded file")
	}
	head = head[:n]
	if n == 0 {
		return "", apperror.BadRequest("No file uploaded")
	}
	if !mimetype.Detect(head).Is(models.ResumeContentType) {
		return "", apperror.UnsupportedMedia("Only PDF files are allowed")
	}
	body := io.MultiReader(bytes.NewReader(head), r)

	user, err := s.users.GetByUsername(owner)
	if err != nil {
		return "", userLookupError(err)
	}

	id := uuid.New().String()
	key := resumeKey(owner, id)
	meta := map[string]string{ownerMetaKey: owner}
	if err := s.store.Put(ctx, key, body, size, models.ResumeContentType, meta); err != nil {
		return "", apperror.Storage(fmt.Errorf("failed to store resume: %w", err))
	}

	if err := s.users.SetResumeID(owner, id); err != nil {
		if delErr := s.store.Delete(context.WithoutCancel(ctx), key); delErr != nil {
			log.Printf("Orphaned resume blob %s after failed reference update: %v", key, delErr)
		}
		return "", apperror.Storage(fmt.Errorf("failed to attach resume to %s: %w", owner, err))
	}

	s.removeStale(context.WithoutCancel(ctx), owner, key, user.ResumeID)
	log.Printf("Stored resume %s for %s", id, owner)
	return id, nil
}

// removeStale deletes the blob previousID pointed at before this upload swapped the
// reference. Blobs stored by concurrent uploads are left alone; Fetch follows the
// reference and Delete clears the whole prefix. Failures leave orphans that are logged.
func (s *ResumeService) removeStale(ctx context.Context, owner, keep, previousID string) {
	if previousID == "" {
		return
	}
	stale := resumeKey(owner, previousID)
	if stale == keep {
		return
	}
	user, err := s.users.GetByUsername(owner)
	if err != nil {
		log.Printf("Could not re-read %s before resume cleanup, keeping %s: %v", owner, stale, err)
		return
	}
	if user.ResumeID == previousID {
		return
	}
	if err := s.store.Delete(ctx, stale); err != nil {
		log.Printf("Orphaned resume blob %s: %v", stale, err)
	}
}

// Fetch opens owner's resume. The caller must close Body.
// The blob is located by listing the owner's objects; the stored reference only
// breaks ties.
func (s *ResumeService) Fetch(ctx context.Context, owner string) (*models.ResumeFile, error) {
	user, err := s.users.GetByUsername(owner)
	if err != nil {
		return nil, userLookupError(err)
	}

	infos, err := s.store.List(ctx, ownerPrefix(owner))
	if err != nil {
		return nil, apperror.Storage(fmt.Errorf("failed to list resumes: %w", err))
	}
	if len(infos) == 0 {
		return nil, apperror.NotFound("Resume not found")
	}

	chosen := infos[0]
	preferred := ""
	if user.ResumeID != "" {
		preferred = resumeKey(owner, user.ResumeID)
	}
	for _, info := range infos {
		if info.Key == preferred {
			chosen = info
			break
		}
		if info.LastModified.After(chosen.LastModified) {
			chosen = info
		}
	}

	obj, err := s.store.Get(ctx, chosen.Key)
	if err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			return nil, apperror.NotFound("Resume not found")
		}
		return nil, apperror.Storage(fmt.Errorf("failed to open resume: %w", err))
	}
	if !strings.EqualFold(obj.Metadata[ownerMetaKey], owner) {
		obj.Body.Close()
		return nil, apperror.NotFound("Resume not found")
	}

	contentType := obj.ContentType
	if contentType == "" {
		contentType = models.ResumeContentType
	}
	return &models.ResumeFile{
		ID:          strings.TrimSuffix(strings.TrimPrefix(obj.Key, ownerPrefix(owner)), ".pdf"),
		Filename:    ResumeFilename(owner),
		ContentType: contentType,
		Size:        obj.Size,
		Body:        obj.Body,
	}, nil
}

// Delete removes owner's resume blobs and then clears the reference. If a blob cannot
// be deleted the reference is kept and a storage error is returned.
func (s *ResumeService) Delete(ctx context.Context, owner string) error {
	user, err := s.users.GetByUsername(owner)
	if err != nil {
		return userLookupError(err)
	}

	infos, err := s.store.List(ctx, ownerPrefix(owner))
	if err != nil {
		return apperror.Storage(fmt.Errorf("failed to list resumes: %w", err))
	}
	if user.ResumeID == "" && len(infos) == 0 {
		return apperror.NotFound("Resume not found")
	}

	keys := map[string]bool{}
	if user.ResumeID != "" {
		keys[resumeKey(owner, user.ResumeID)] = true
	}
	for _, info := range infos {
		keys[info.Key] = true
	}
	for key := range keys {
		if err := s.store.Delete(ctx, key); err != nil && !errors.Is(err, blobstore.ErrNotFound) {
			return apperror.Storage(fmt.Errorf("failed to delete resume %s: %w", key, err))
		}
	}

	if user.ResumeID != "" {
		if err := s.users.SetResumeID(owner, ""); err != nil {
			log.Printf("Resume blobs of %s deleted but reference %s not cleared: %v", owner, user.ResumeID, err)
			return apperror.Storage(fmt.Errorf("failed to clear resume reference: %w", err))
		}
	}
	log.Printf("Deleted resume of %s", owner)
	return nil
}

// ExtractText returns the plain text of owner's stored resume.
func (s *ResumeService) ExtractText(ctx context.Context, owner string) (string, error) {
	file, err := s.Fetch(ctx, owner)
	if err != nil {
		return "", err
	}
	defer file.Body.Close()

	text, err := pdftext.FromReader(ctx, file.Body)
	if err != nil {
		if errors.Is(err, pdftext.ErrNoText) {
			return "", apperror.BadRequest("Stored resume has no extractable text")
		}
		if ctx.Err() != nil {
			return "", apperror.Storage(err)
		}
		log.Printf("Failed to extract text from resume of %s: %v", owner, err)
		return "", apperror.BadRequest("Stored resume could not be read")
	}
	return text, nil
}

func userLookupError(err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return apperror.NotFound("User not found")
	}
	return apperror.Storage(err)
}
