// Package storage keeps uploaded files in per-category buckets and hands back public URLs.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// Object is one stored file as shown in the admin file browser.
type Object struct {
	Bucket      string    `json:"bucket"`
	Key         string    `json:"key"`
	URL         string    `json:"url"`
	Size        int64     `json:"size"`
	HumanSize   string    `json:"human_size"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
}

// Store is an object store. Implementations must return stable public URLs.
type Store interface {
	Upload(ctx context.Context, bucket, key, contentType string, body io.Reader, size int64) (Object, error)
	List(ctx context.Context, bucket string) ([]Object, error)
	Delete(ctx context.Context, bucket, key string) error
}

const (
	BucketGallery  = "gallery"
	BucketPlayers  = "players"
	BucketSponsors = "sponsors"
	BucketStaff    = "staff-images"
	BucketNews     = "news"
	BucketMatches  = "matches"
	BucketGeneral  = "general"
)

var buckets = []string{BucketGallery, BucketPlayers, BucketSponsors, BucketStaff, BucketNews, BucketMatches, BucketGeneral}

var (
	ErrUnknownBucket  = errors.New("unknown storage bucket")
	ErrInvalidKey     = errors.New("invalid object key")
	ErrObjectNotFound = errors.New("object not found")
	ErrNotImage       = errors.New("file must be an image")
	ErrTooLarge       = errors.New("file exceeds the maximum upload size")
	ErrEmptyFile      = errors.New("file is empty")
)

// Buckets lists the known buckets.
func Buckets() []string {
	out := make([]string, len(buckets))
	copy(out, buckets)
	return out
}

func ValidBucket(b string) bool {
	for _, known := range buckets {
		if b == known {
			return true
		}
	}
	return false
}

// ValidKey accepts flat file names only.
func ValidKey(key string) bool {
	if key == "" || key == "." || key == ".." {
		return false
	}
	return !strings.ContainsAny(key, `/\`) && !strings.Contains(key, "..")
}

// NewObjectKey returns a collision-free key ending in ext.
func NewObjectKey(ext string) string {
	return uuid.NewString() + ext
}

// imageTypes are the formats accepted for upload. SVG is left out because it can carry script.
var imageTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/gif":  true,
	"image/webp": true,
}

var typeAliases = map[string]string{
	"image/jpg":   "image/jpeg",
	"image/pjpeg": "image/jpeg",
}

// sniffImage detects the format from the leading bytes. The declared type may be empty or generic,
// otherwise it has to agree with the content. The extension always comes from the detected type.
func sniffImage(head []byte, declared string) (contentType, ext string, err error) {
	detected := mimetype.Detect(head)
	ct, _, _ := mime.ParseMediaType(detected.String())
	if !imageTypes[ct] {
		return "", "", fmt.Errorf("%w: content is %s", ErrNotImage, ct)
	}

	if declared != "" {
		d, _, perr := mime.ParseMediaType(declared)
		if perr != nil {
			return "", "", fmt.Errorf("%w: bad content type %q", ErrNotImage, declared)
		}
		if alias, ok := typeAliases[d]; ok {
			d = alias
		}
		if d != "application/octet-stream" && !detected.Is(d) {
			return "", "", fmt.Errorf("%w: declared %s but content is %s", ErrNotImage, d, ct)
		}
	}
	return ct, detected.Extension(), nil
}

func contentTypeFor(key string) string {
	if ct := mime.TypeByExtension(strings.ToLower(path.Ext(key))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func checkTarget(bucket, key string) error {
	if !ValidBucket(bucket) {
		return ErrUnknownBucket
	}
	if key != "" && !ValidKey(key) {
		return ErrInvalidKey
	}
	return nil
}
