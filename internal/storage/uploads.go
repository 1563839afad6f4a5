package storage

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	apperrors "task-manager.com/task-manager/internal/errors"
	model "task-manager.com/task-manager/internal/models"
)

// UploadStore persists incoming attachments under a generated unique
// name inside a single directory, enforcing an extension allowlist and
// a per-request max count.
type UploadStore struct {
	dir      string
	allowed  map[string]struct{}
	maxCount int
}

func NewUploadStore(dir string, allowedExtensions []string, maxCount int) (*UploadStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	allowed := make(map[string]struct{}, len(allowedExtensions))
	for _, ext := range allowedExtensions {
		allowed[strings.ToLower(strings.TrimPrefix(ext, "."))] = struct{}{}
	}

	return &UploadStore{
		dir:      dir,
		allowed:  allowed,
		maxCount: maxCount,
	}, nil
}

// SaveAll writes the accepted files and returns their metadata.
//
// The count limit is checked before any file is touched. Files with a
// disallowed extension are skipped rather than failing the batch; any
// write failure on an accepted file aborts the rest.
func (s *UploadStore) SaveAll(files []*multipart.FileHeader) ([]model.Attachment, error) {
	if len(files) > s.maxCount {
		return nil, apperrors.ErrTooManyAttachments
	}

	var metas []model.Attachment
	for _, fh := range files {
		if !s.allowedFile(fh.Filename) {
			log.Printf("skipping attachment with disallowed extension: %s", fh.Filename)
			continue
		}

		meta, err := s.save(fh)
		if err != nil {
			return nil, err
		}
		metas = append(metas, *meta)
	}

	return metas, nil
}

func (s *UploadStore) allowedFile(name string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	if ext == "" {
		return false
	}
	_, ok := s.allowed[ext]
	return ok
}

func (s *UploadStore) save(fh *multipart.FileHeader) (*model.Attachment, error) {
	original := sanitizeFilename(fh.Filename)
	stored := strings.ReplaceAll(uuid.NewString(), "-", "") + "_" + original
	path := filepath.Join(s.dir, stored)

	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return nil, err
	}
	if err := dst.Close(); err != nil {
		return nil, err
	}

	// Size is measured after the write completes.
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	return &model.Attachment{
		ID:           uuid.NewString(),
		OriginalName: original,
		StoredName:   stored,
		Path:         path,
		MimeType:     fh.Header.Get("Content-Type"),
		SizeBytes:    info.Size(),
	}, nil
}

// sanitizeFilename strips any path components and reduces the name to
// a safe character set so stored names cannot traverse out of the
// upload directory.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	cleaned := strings.Trim(b.String(), "._")
	if cleaned == "" {
		return "file"
	}
	return cleaned
}
