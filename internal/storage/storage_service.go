package storage

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"sort"

	"github.com/DhavalSuthar-24/lelo/config"
	"github.com/rs/zerolog/log"
)

// sniffLen is how much of the head mimetype inspects.
const sniffLen = 3072

// Service applies the upload rules on top of a Store.
type Service struct {
	store    Store
	maxBytes int64
}

func NewService(store Store, maxBytes int64) *Service {
	if maxBytes <= 0 {
		maxBytes = 5 * 1024 * 1024
	}
	return &Service{store: store, maxBytes: maxBytes}
}

// NewStoreFromConfig picks the S3 or local store.
func NewStoreFromConfig(ctx context.Context, cfg *config.Config) (Store, error) {
	if cfg.Storage.Driver == "s3" {
		return NewS3Store(ctx, S3Options{
			Region:          cfg.Storage.Region,
			Endpoint:        cfg.Storage.Endpoint,
			AccessKeyID:     cfg.Storage.AccessKeyID,
			SecretAccessKey: cfg.Storage.SecretAccessKey,
			PublicURL:       cfg.Storage.PublicURL,
		})
	}
	return NewLocalStore(cfg.App.UploadDir, cfg.App.PublicBaseURL+"/uploads"), nil
}

// Upload validates and stores an image under a fresh key.
func (s *Service) Upload(ctx context.Context, bucket, filename, contentType string, body io.Reader, size int64) (Object, error) {
	if !ValidBucket(bucket) {
		return Object{}, ErrUnknownBucket
	}
	if size == 0 {
		return Object{}, ErrEmptyFile
	}
	if size > s.maxBytes {
		return Object{}, ErrTooLarge
	}

	br := bufio.NewReaderSize(body, sniffLen)
	head, _ := br.Peek(sniffLen)
	contentType, ext, err := sniffImage(head, contentType)
	if err != nil {
		log.Debug().Err(err).Str("bucket", bucket).Str("filename", filename).Msg("upload rejected")
		return Object{}, err
	}

	return s.store.Upload(ctx, bucket, NewObjectKey(ext), contentType, io.LimitReader(br, s.maxBytes), size)
}

// UploadFile uploads a multipart form file.
func (s *Service) UploadFile(ctx context.Context, bucket string, fh *multipart.FileHeader) (Object, error) {
	if fh.Size > s.maxBytes {
		return Object{}, ErrTooLarge
	}
	f, err := fh.Open()
	if err != nil {
		return Object{}, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()
	return s.Upload(ctx, bucket, fh.Filename, fh.Header.Get("Content-Type"), f, fh.Size)
}

// List returns the bucket contents, newest first.
func (s *Service) List(ctx context.Context, bucket string) ([]Object, error) {
	objs, err := s.store.List(ctx, bucket)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(objs, func(i, j int) bool {
		return objs[i].CreatedAt.After(objs[j].CreatedAt)
	})
	return objs, nil
}

// Delete removes a stored file. Records that reference its URL are left alone.
func (s *Service) Delete(ctx context.Context, bucket, key string) error {
	return s.store.Delete(ctx, bucket, key)
}

// MaxBytes is the upload limit.
func (s *Service) MaxBytes() int64 {
	return s.maxBytes
}
