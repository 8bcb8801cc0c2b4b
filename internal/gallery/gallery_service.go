package gallery

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"

	"github.com/DhavalSuthar-24/lelo/internal/storage"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

var ErrNotFound = errors.New("gallery image not found")

// Files is the part of the object store the gallery needs.
type Files interface {
	UploadFile(ctx context.Context, bucket string, fh *multipart.FileHeader) (storage.Object, error)
	Delete(ctx context.Context, bucket, key string) error
}

type Service struct {
	repo  ImageRepository
	files Files
	clock clockwork.Clock
}

func NewService(repo ImageRepository, files Files, clock clockwork.Clock) *Service {
	return &Service{repo: repo, files: files, clock: clock}
}

// List returns images newest first. A read failure is logged and yields an empty list.
func (s *Service) List(ctx context.Context, filter ImageFilter) []Image {
	images, err := s.repo.List(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("entity", "gallery").Msg("list failed")
		return []Image{}
	}
	if images == nil {
		return []Image{}
	}
	return images
}

func (s *Service) Get(ctx context.Context, id uint) (*Image, error) {
	img, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if img == nil {
		return nil, ErrNotFound
	}
	return img, nil
}

// Create records an image that is already stored somewhere.
func (s *Service) Create(ctx context.Context, req CreateImageRequest, uploadedBy uint) (*Image, error) {
	img := &Image{
		URL:        strings.TrimSpace(req.URL),
		Alt:        req.Alt,
		Category:   req.Category,
		UploadedAt: s.clock.Now().UTC(),
	}
	if uploadedBy != 0 {
		img.UploadedBy = &uploadedBy
	}
	if err := s.repo.Create(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}

// Upload stores the file in the gallery bucket and records it. If the record cannot be written
// the stored file is removed again.
func (s *Service) Upload(ctx context.Context, fh *multipart.FileHeader, req UploadImageRequest, uploadedBy uint) (*Image, error) {
	obj, err := s.files.UploadFile(ctx, storage.BucketGallery, fh)
	if err != nil {
		return nil, err
	}
	img, err := s.Create(ctx, CreateImageRequest{URL: obj.URL, Alt: req.Alt, Category: req.Category}, uploadedBy)
	if err != nil {
		if derr := s.files.Delete(ctx, obj.Bucket, obj.Key); derr != nil {
			log.Warn().Err(derr).Str("key", obj.Key).Msg("orphaned gallery upload")
		}
		return nil, err
	}
	return img, nil
}

func (s *Service) Update(ctx context.Context, id uint, req UpdateImageRequest) (*Image, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	if fields := req.updates(); len(fields) > 0 {
		if err := s.repo.Update(ctx, id, fields); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, id)
}

// Delete removes the record only. The stored file stays in the bucket.
func (s *Service) Delete(ctx context.Context, id uint) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
