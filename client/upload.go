package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
)

// Upload endpoints.
const (
	pathUploadImage  = "/upload/image"
	pathUploadImages = "/upload/images"
	pathHotelImages  = "/upload/hotel"
)

// ImageFile is one file to upload.
type ImageFile struct {
	Name string
	Body io.Reader
}

func multipartBody(field string, files []ImageFile) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range files {
		part, err := w.CreateFormFile(field, f.Name)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, f.Body); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

// UploadImage sends one file in the "image" field.
func (c *Client) UploadImage(ctx context.Context, file ImageFile) (UploadResult, error) {
	body, contentType, err := multipartBody("image", []ImageFile{file})
	if err != nil {
		return UploadResult{}, &TransportError{Message: err.Error()}
	}

	var out UploadResult
	err = c.invoke(ctx, call{
		method:      http.MethodPost,
		path:        pathUploadImage,
		rawBody:     body,
		contentType: contentType,
		out:         &out,
		validateOut: true,
	})
	if err != nil {
		return UploadResult{}, err
	}
	return out, nil
}

// UploadImages batches multiple files into one multipart call under the
// "images" field. There is no resumability; the whole batch stands or
// falls together.
func (c *Client) UploadImages(ctx context.Context, files []ImageFile) (UploadBatchResult, error) {
	body, contentType, err := multipartBody("images", files)
	if err != nil {
		return UploadBatchResult{}, &TransportError{Message: err.Error()}
	}

	var out UploadBatchResult
	err = c.invoke(ctx, call{
		method:      http.MethodPost,
		path:        pathUploadImages,
		rawBody:     body,
		contentType: contentType,
		out:         &out,
		validateOut: true,
	})
	if err != nil {
		return UploadBatchResult{}, err
	}
	return out, nil
}

// DeleteImage removes a stored image by filename. Only the success flag
// matters, so no response shape is declared.
func (c *Client) DeleteImage(ctx context.Context, filename string) error {
	return c.invoke(ctx, call{
		method:         http.MethodDelete,
		path:           pathUploadImage + "/" + url.PathEscape(filename),
		successMessage: "image deleted",
	})
}

// GetHotelImages lists the stored image paths of one hotel.
func (c *Client) GetHotelImages(ctx context.Context, hotelID uint) ([]string, error) {
	var out HotelImages
	err := c.invoke(ctx, call{
		method: http.MethodGet,
		path:   fmt.Sprintf("%s/%d/images", pathHotelImages, hotelID),
		out:    &out,
	})
	if err != nil {
		return nil, err
	}
	return out.Images, nil
}
