package lelo

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/DhavalSuthar-24/lelo/internal/gallery"
	"github.com/DhavalSuthar-24/lelo/internal/models"
	"github.com/DhavalSuthar-24/lelo/internal/storage"
)

// UploadImage stores an image in bucket and returns the stored object with its public URL.
func (c *Client) UploadImage(ctx context.Context, bucket, filename string, r io.Reader) (storage.Object, error) {
	var obj storage.Object
	err := c.postMultipart(ctx, "/admin/uploads", filename, r, map[string]string{"bucket": bucket}, &obj)
	return obj, err
}

// UploadGalleryImage uploads into the gallery bucket and creates the gallery record.
func (c *Client) UploadGalleryImage(ctx context.Context, filename string, r io.Reader, alt string, category models.League) (gallery.Image, error) {
	fields := map[string]string{"alt": alt}
	if category != "" {
		fields["category"] = category.String()
	}
	var img gallery.Image
	err := c.postMultipart(ctx, "/gallery/upload", filename, r, fields, &img)
	return img, err
}

func (c *Client) ListFiles(ctx context.Context, bucket string) ([]storage.Object, error) {
	var objs []storage.Object
	err := c.Get(ctx, "/admin/files?bucket="+url.QueryEscape(bucket), &objs)
	return objs, err
}

// DeleteFile permanently removes a stored file. Records pointing at it are not touched.
func (c *Client) DeleteFile(ctx context.Context, bucket, key string) error {
	return c.BaseClient.Delete(ctx, "/admin/files/"+url.PathEscape(bucket)+"/"+url.PathEscape(key))
}

func (c *Client) postMultipart(ctx context.Context, endpoint, filename string, r io.Reader, fields map[string]string, out interface{}) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return fmt.Errorf("failed to write form field: %w", err)
		}
	}
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return fmt.Errorf("failed to copy file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("failed to close form: %w", err)
	}
	return c.MakeRequest(ctx, http.MethodPost, endpoint, &buf, mw.FormDataContentType(), out)
}
