package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/DhavalSuthar-24/lelo/pkg/utils"
)

// LocalStore keeps files under root/<bucket>/<key>. The router serves root at baseURL.
type LocalStore struct {
	root    string
	baseURL string
}

func NewLocalStore(root, baseURL string) *LocalStore {
	return &LocalStore{root: root, baseURL: strings.TrimRight(baseURL, "/")}
}

func (s *LocalStore) url(bucket, key string) string {
	return s.baseURL + "/" + bucket + "/" + key
}

func (s *LocalStore) Upload(ctx context.Context, bucket, key, contentType string, body io.Reader, size int64) (Object, error) {
	if err := checkTarget(bucket, key); err != nil {
		return Object{}, err
	}
	dir := filepath.Join(s.root, bucket)
	if err := utils.EnsureDir(dir); err != nil {
		return Object{}, err
	}

	dst := filepath.Join(dir, key)
	f, err := os.Create(dst)
	if err != nil {
		return Object{}, fmt.Errorf("create %s: %w", dst, err)
	}
	n, copyErr := io.Copy(f, body)
	closeErr := f.Close()
	if copyErr != nil || closeErr != nil {
		_ = os.Remove(dst)
		return Object{}, fmt.Errorf("write %s: %w", dst, errors.Join(copyErr, closeErr))
	}

	info, err := os.Stat(dst)
	if err != nil {
		return Object{}, err
	}
	return Object{
		Bucket:      bucket,
		Key:         key,
		URL:         s.url(bucket, key),
		Size:        n,
		HumanSize:   utils.FormatFileSize(n),
		ContentType: contentType,
		CreatedAt:   info.ModTime().UTC(),
	}, nil
}

func (s *LocalStore) List(ctx context.Context, bucket string) ([]Object, error) {
	if err := checkTarget(bucket, ""); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(filepath.Join(s.root, bucket))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []Object{}, nil
		}
		return nil, err
	}

	out := make([]Object, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, err
		}
		out = append(out, Object{
			Bucket:      bucket,
			Key:         e.Name(),
			URL:         s.url(bucket, e.Name()),
			Size:        info.Size(),
			HumanSize:   utils.FormatFileSize(info.Size()),
			ContentType: contentTypeFor(e.Name()),
			CreatedAt:   info.ModTime().UTC(),
		})
	}
	return out, nil
}

func (s *LocalStore) Delete(ctx context.Context, bucket, key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	if err := checkTarget(bucket, key); err != nil {
		return err
	}
	err := os.Remove(filepath.Join(s.root, bucket, key))
	if errors.Is(err, os.ErrNotExist) {
		return ErrObjectNotFound
	}
	return err
}
