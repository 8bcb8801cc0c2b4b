package storage

import (
	"errors"
	"net/http"

	"github.com/DhavalSuthar-24/lelo/pkg/responses"
	"github.com/DhavalSuthar-24/lelo/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// StorageController backs the admin file browser and the generic image upload used by forms.
type StorageController struct {
	service *Service
}

func NewStorageController(service *Service) *StorageController {
	return &StorageController{service: service}
}

// Upload godoc
// @Summary Upload an image
// @Description Stores an image in the given bucket and returns its public URL.
// @Tags Storage
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Param bucket formData string true "Bucket" Enums(gallery, players, sponsors, staff-images, news, matches, general)
// @Success 201 {object} responses.SuccessResponse{data=Object}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 413 {object} responses.ErrorResponse
// @Router /admin/uploads [post]
// @Security BearerAuth
func (sc *StorageController) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		responses.BadRequest(c, "A file is required", nil)
		return
	}
	obj, err := sc.service.UploadFile(c.Request.Context(), c.PostForm("bucket"), fh)
	if err != nil {
		sc.fail(c, err, "Failed to upload file")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "File uploaded successfully", obj)
}

// ListFiles godoc
// @Summary List stored files
// @Tags Storage
// @Produce json
// @Param bucket query string true "Bucket"
// @Success 200 {object} responses.ListResponse{data=[]Object}
// @Failure 400 {object} responses.ErrorResponse
// @Router /admin/files [get]
// @Security BearerAuth
func (sc *StorageController) ListFiles(c *gin.Context) {
	objs, err := sc.service.List(c.Request.Context(), c.Query("bucket"))
	if err != nil {
		sc.fail(c, err, "Failed to list files")
		return
	}
	responses.SendList(c, "Files retrieved successfully", objs, len(objs))
}

// DeleteFile godoc
// @Summary Delete a stored file
// @Description Permanently deletes the file. Gallery records that reference it are kept.
// @Tags Storage
// @Param bucket path string true "Bucket"
// @Param key path string true "Object key"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /admin/files/{bucket}/{key} [delete]
// @Security BearerAuth
func (sc *StorageController) DeleteFile(c *gin.Context) {
	if err := sc.service.Delete(c.Request.Context(), c.Param("bucket"), c.Param("key")); err != nil {
		sc.fail(c, err, "Failed to delete file")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "File deleted successfully", nil)
}

func (sc *StorageController) fail(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, ErrObjectNotFound):
		responses.NotFound(c, "File")
	case errors.Is(err, ErrTooLarge):
		responses.SendError(c, http.StatusRequestEntityTooLarge,
			"File exceeds the maximum upload size of "+utils.FormatFileSize(sc.service.MaxBytes()), nil)
	case errors.Is(err, ErrUnknownBucket), errors.Is(err, ErrInvalidKey),
		errors.Is(err, ErrNotImage), errors.Is(err, ErrEmptyFile):
		responses.BadRequest(c, err.Error(), nil)
	default:
		log.Error().Err(err).Msg(msg)
		responses.InternalServerError(c, msg)
	}
}
