package gallery

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/DhavalSuthar-24/lelo/internal/common"
	"github.com/DhavalSuthar-24/lelo/internal/models"
	"github.com/DhavalSuthar-24/lelo/internal/storage"
	"github.com/DhavalSuthar-24/lelo/pkg/responses"
	"github.com/DhavalSuthar-24/lelo/pkg/utils"
	"github.com/DhavalSuthar-24/lelo/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type GalleryController struct {
	service  *Service
	maxBytes int64
}

func NewGalleryController(service *Service, maxBytes int64) *GalleryController {
	return &GalleryController{service: service, maxBytes: maxBytes}
}

// GetImages godoc
// @Summary List gallery images
// @Tags Gallery
// @Produce json
// @Param category query string false "League"
// @Param limit query int false "Maximum number of images"
// @Success 200 {object} responses.ListResponse{data=[]Image}
// @Failure 400 {object} responses.ErrorResponse
// @Router /gallery [get]
func (gc *GalleryController) GetImages(c *gin.Context) {
	var cat models.League
	if raw := c.Query("category"); raw != "" {
		l, err := models.ParseLeague(raw)
		if err != nil {
			responses.BadRequest(c, err.Error(), nil)
			return
		}
		cat = l
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	images := gc.service.List(c.Request.Context(), ImageFilter{Category: cat, Limit: limit})
	responses.SendList(c, "Gallery retrieved successfully", images, len(images))
}

// GetImageByID godoc
// @Summary Get a gallery image
// @Tags Gallery
// @Produce json
// @Param image_id path int true "Image ID"
// @Success 200 {object} responses.SuccessResponse{data=Image}
// @Failure 404 {object} responses.ErrorResponse
// @Router /gallery/{image_id} [get]
func (gc *GalleryController) GetImageByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	img, err := gc.service.Get(c.Request.Context(), id)
	if err != nil {
		gc.fail(c, err, "Failed to retrieve image")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Image retrieved successfully", img)
}

// CreateImage godoc
// @Summary Record an already stored image
// @Tags Gallery
// @Accept json
// @Produce json
// @Param image body CreateImageRequest true "Image"
// @Success 201 {object} responses.SuccessResponse{data=Image}
// @Failure 400 {object} responses.ErrorResponse
// @Router /gallery [post]
// @Security BearerAuth
func (gc *GalleryController) CreateImage(c *gin.Context) {
	var req CreateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Validation failed", validator.ParseError(err))
		return
	}
	img, err := gc.service.Create(c.Request.Context(), req, common.IdentityFromContext(c).UserID)
	if err != nil {
		gc.fail(c, err, "Failed to create image")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Image created successfully", img)
}

// UploadImage godoc
// @Summary Upload a gallery image
// @Description Stores the file in the gallery bucket, then records it.
// @Tags Gallery
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Param alt formData string false "Alt text"
// @Param category formData string false "League"
// @Success 201 {object} responses.SuccessResponse{data=Image}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 413 {object} responses.ErrorResponse
// @Router /gallery/upload [post]
// @Security BearerAuth
func (gc *GalleryController) UploadImage(c *gin.Context) {
	var req UploadImageRequest
	if err := c.ShouldBind(&req); err != nil {
		responses.BadRequest(c, "Validation failed", validator.ParseError(err))
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		responses.BadRequest(c, "A file is required", nil)
		return
	}
	img, err := gc.service.Upload(c.Request.Context(), fh, req, common.IdentityFromContext(c).UserID)
	if err != nil {
		gc.fail(c, err, "Failed to upload image")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Image uploaded successfully", img)
}

// UpdateImage godoc
// @Summary Update a gallery image
// @Tags Gallery
// @Accept json
// @Produce json
// @Param image_id path int true "Image ID"
// @Param image body UpdateImageRequest true "Fields to change"
// @Success 200 {object} responses.SuccessResponse{data=Image}
// @Failure 404 {object} responses.ErrorResponse
// @Router /gallery/{image_id} [put]
// @Security BearerAuth
func (gc *GalleryController) UpdateImage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Validation failed", validator.ParseError(err))
		return
	}
	img, err := gc.service.Update(c.Request.Context(), id, req)
	if err != nil {
		gc.fail(c, err, "Failed to update image")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Image updated successfully", img)
}

// DeleteImage godoc
// @Summary Delete a gallery record
// @Description Removes the record only. The uploaded file is not deleted.
// @Tags Gallery
// @Param image_id path int true "Image ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /gallery/{image_id} [delete]
// @Security BearerAuth
func (gc *GalleryController) DeleteImage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := gc.service.Delete(c.Request.Context(), id); err != nil {
		gc.fail(c, err, "Failed to delete image")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Image deleted successfully", nil)
}

func (gc *GalleryController) fail(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, ErrNotFound):
		responses.NotFound(c, "Image")
	case errors.Is(err, storage.ErrTooLarge):
		responses.SendError(c, http.StatusRequestEntityTooLarge,
			"File exceeds the maximum upload size of "+utils.FormatFileSize(gc.maxBytes), nil)
	case errors.Is(err, storage.ErrNotImage), errors.Is(err, storage.ErrEmptyFile):
		responses.BadRequest(c, err.Error(), nil)
	default:
		log.Error().Err(err).Msg(msg)
		responses.InternalServerError(c, msg)
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("image_id"), 10, 32)
	if err != nil || id == 0 {
		responses.BadRequest(c, "Invalid image ID format", nil)
		return 0, false
	}
	return uint(id), true
}
