package services

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"

	"filmoteca_backend/internal/imageprocessor"
	"filmoteca_backend/internal/storage"
	"filmoteca_backend/pkg/apperrors"
)

// Image kinds, used as path prefixes under the storage root.
const (
	ImageKindMovie  = "peliculas"
	ImageKindPerson = "personas"
)

// ImageStore persists entity images. Files are keyed by the numeric
// entity id with a fixed .jpg extension, so a re-upload replaces the
// previous image.
type ImageStore struct {
	storage   storage.Storage
	processor *imageprocessor.Processor
}

func NewImageStore(st storage.Storage, processor *imageprocessor.Processor) *ImageStore {
	return &ImageStore{
		storage:   st,
		processor: processor,
	}
}

// SaveEntityImage writes the uploaded payload to <kind>/<id>.jpg and
// returns the stored filename.
func (s *ImageStore) SaveEntityImage(ctx context.Context, kind string, id uint, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	defer src.Close()

	data, err := s.processor.NormalizeJPEGReader(src)
	if err != nil {
		return "", apperrors.InternalError(err)
	}

	fileName := fmt.Sprintf("%d.jpg", id)
	path := fmt.Sprintf("%s/%s", kind, fileName)

	if err := s.storage.Save(ctx, path, bytes.NewReader(data), "image/jpeg"); err != nil {
		return "", apperrors.InternalError(err)
	}

	return fileName, nil
}

// URL returns the public URL for a stored image filename. The filename
// is not checked for existence; records that never got an upload still
// yield a URL, pointing at nothing.
func (s *ImageStore) URL(ctx context.Context, kind, fileName string) string {
	url, err := s.storage.GetURL(ctx, fmt.Sprintf("%s/%s", kind, fileName))
	if err != nil {
		return ""
	}
	return url
}
