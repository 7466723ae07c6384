package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"stayhub-backend/services"
	"stayhub-backend/utils"
)

// MaxImagesPerUpload caps one batched multipart call.
const MaxImagesPerUpload = 6

type UploadController struct {
	Uploads *services.UploadService
	Hotels  *services.HotelService
}

func NewUploadController(uploads *services.UploadService, hotels *services.HotelService) *UploadController {
	return &UploadController{Uploads: uploads, Hotels: hotels}
}

func uploadErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrBadImageType),
		errors.Is(err, services.ErrImageTooBig),
		errors.Is(err, services.ErrBadFilename):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (u *UploadController) saveOne(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()
	return u.Uploads.Save(src, fh.Filename, fh.Size)
}

// POST /api/upload/image, single file in field "image".
func (u *UploadController) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "image file is required")
		return
	}

	filename, err := u.saveOne(fh)
	if err != nil {
		utils.JSONError(c, uploadErrorStatus(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"filename": filename,
		"url":      u.Uploads.URLFor(filename),
	})
}

// POST /api/upload/images, batched files in field "images".
func (u *UploadController) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "multipart form is required")
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "at least one image is required")
		return
	}
	if len(files) > MaxImagesPerUpload {
		utils.JSONError(c, http.StatusBadRequest, "too many images in one upload")
		return
	}

	filenames := make([]string, 0, len(files))
	urls := make([]string, 0, len(files))
	for _, fh := range files {
		filename, err := u.saveOne(fh)
		if err != nil {
			// Roll back what this call already wrote.
			for _, stored := range filenames {
				_ = u.Uploads.Remove(stored)
			}
			utils.JSONError(c, uploadErrorStatus(err), err.Error())
			return
		}
		filenames = append(filenames, filename)
		urls = append(urls, u.Uploads.URLFor(filename))
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"filenames": filenames,
		"urls":      urls,
	})
}

// DELETE /api/upload/image/:filename
func (u *UploadController) DeleteImage(c *gin.Context) {
	if err := u.Uploads.Remove(c.Param("filename")); err != nil {
		utils.JSONError(c, uploadErrorStatus(err), err.Error())
		return
	}
	utils.JSONSuccessMessage(c, http.StatusOK, "image deleted", nil)
}

// GET /api/upload/hotel/:id/images
func (u *UploadController) HotelImages(c *gin.Context) {
	id, ok := hotelIDParam(c)
	if !ok {
		return
	}

	hotel, err := u.Hotels.GetByID(id)
	if err != nil {
		utils.JSONError(c, hotelErrorStatus(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"images": []string(hotel.Images)})
}
