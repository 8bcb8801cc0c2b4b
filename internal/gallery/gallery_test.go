package gallery

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/DhavalSuthar-24/lelo/internal/common"
	"github.com/DhavalSuthar-24/lelo/internal/dbtest"
	"github.com/DhavalSuthar-24/lelo/internal/models"
	"github.com/DhavalSuthar-24/lelo/internal/storage"
	"github.com/DhavalSuthar-24/lelo/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	epoch    = time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 64)...)
)

type env struct {
	svc    *Service
	files  *storage.Service
	clock  *clockwork.FakeClock
	router *gin.Engine
}

func setup(t *testing.T) env {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validator.Setup()

	db := dbtest.Open(t, &Image{})
	files := storage.NewService(storage.NewLocalStore(t.TempDir(), "http://localhost/uploads"), 1<<20)
	clock := clockwork.NewFakeClockAt(epoch)
	svc := NewService(NewImageRepository(db), files, clock)
	gc := NewGalleryController(svc, files.MaxBytes())

	r := gin.New()
	r.Use(func(c *gin.Context) {
		common.SetIdentity(c, common.Identity{UserID: 9, Role: common.RoleAdmin})
	})
	r.POST("/gallery/upload", gc.UploadImage)
	r.GET("/gallery", gc.GetImages)
	return env{svc: svc, files: files, clock: clock, router: r}
}

func uploadRequest(t *testing.T, filename string, data []byte, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/gallery/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestListNewestFirstWithCategory(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	_, err := e.svc.Create(ctx, CreateImageRequest{URL: "http://x/1.png", Category: models.LeagueTopDivision}, 0)
	require.NoError(t, err)
	e.clock.Advance(time.Minute)
	_, err = e.svc.Create(ctx, CreateImageRequest{URL: "http://x/2.png", Category: models.LeagueA}, 0)
	require.NoError(t, err)
	e.clock.Advance(time.Minute)
	_, err = e.svc.Create(ctx, CreateImageRequest{URL: "http://x/3.png", Category: models.LeagueTopDivision}, 0)
	require.NoError(t, err)

	all := e.svc.List(ctx, ImageFilter{})
	require.Len(t, all, 3)
	assert.Equal(t, "http://x/3.png", all[0].URL)
	assert.Equal(t, "http://x/1.png", all[2].URL)

	top := e.svc.List(ctx, ImageFilter{Category: models.LeagueTopDivision})
	require.Len(t, top, 2)
	assert.Nil(t, top[0].UploadedBy)
}

func TestUploadCreatesRecord(t *testing.T) {
	e := setup(t)

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, uploadRequest(t, "team.png", pngBytes, map[string]string{
		"alt": "Team photo", "category": string(models.LeagueTopDivision),
	}))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var body struct {
		Data Image `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotZero(t, body.Data.ID)
	assert.Equal(t, "Team photo", body.Data.Alt)
	assert.Contains(t, body.Data.URL, "http://localhost/uploads/gallery/")
	require.NotNil(t, body.Data.UploadedBy)
	assert.Equal(t, uint(9), *body.Data.UploadedBy)

	objs, err := e.files.List(context.Background(), storage.BucketGallery)
	require.NoError(t, err)
	assert.Len(t, objs, 1)
}

func TestUploadRejectsNonImage(t *testing.T) {
	e := setup(t)

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, uploadRequest(t, "notes.txt", []byte("plain text, not a picture"), nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, e.svc.List(context.Background(), ImageFilter{}))
}

func TestDeletingFileKeepsRecord(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, uploadRequest(t, "a.png", pngBytes, nil))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	objs, err := e.files.List(ctx, storage.BucketGallery)
	require.NoError(t, err)
	require.Len(t, objs, 1)
	require.NoError(t, e.files.Delete(ctx, storage.BucketGallery, objs[0].Key))

	rows := e.svc.List(ctx, ImageFilter{})
	require.Len(t, rows, 1)
	assert.Equal(t, objs[0].URL, rows[0].URL)
}

func TestDeletingRecordKeepsFile(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, uploadRequest(t, "b.png", pngBytes, nil))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	rows := e.svc.List(ctx, ImageFilter{})
	require.Len(t, rows, 1)
	require.NoError(t, e.svc.Delete(ctx, rows[0].ID))
	assert.ErrorIs(t, e.svc.Delete(ctx, rows[0].ID), ErrNotFound)

	objs, err := e.files.List(ctx, storage.BucketGallery)
	require.NoError(t, err)
	assert.Len(t, objs, 1)
}

func TestUpdateAltOnly(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	img, err := e.svc.Create(ctx, CreateImageRequest{URL: "http://x/1.png", Alt: "old", Category: models.LeagueB}, 0)
	require.NoError(t, err)

	alt := "new"
	updated, err := e.svc.Update(ctx, img.ID, UpdateImageRequest{Alt: &alt})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Alt)
	assert.Equal(t, models.LeagueB, updated.Category)
	assert.Equal(t, "http://x/1.png", updated.URL)
}

func TestCreateAppearsOnce(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	_, err := e.svc.Create(ctx, CreateImageRequest{URL: "http://x/1.png"}, 0)
	require.NoError(t, err)
	created, err := e.svc.Create(ctx, CreateImageRequest{URL: "http://x/2.png", Category: models.LeagueA}, 0)
	require.NoError(t, err)

	count := 0
	for _, img := range e.svc.List(ctx, ImageFilter{}) {
		if img.ID == created.ID {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestUploadRejectsDisguisedHTML(t *testing.T) {
	e := setup(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="evil.html"`)
	h.Set("Content-Type", "image/png")
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte("<html><script>alert(1)</script></html>"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/gallery/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	assert.Empty(t, e.svc.List(context.Background(), ImageFilter{}))
	objs, err := e.files.List(context.Background(), storage.BucketGallery)
	require.NoError(t, err)
	assert.Empty(t, objs)
}
