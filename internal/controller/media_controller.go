package controller

import (
	"net/http"

	"CivicConnectAPI/internal/constant"
	"CivicConnectAPI/internal/helper"
	"CivicConnectAPI/internal/middleware"
	"CivicConnectAPI/internal/model"
	"CivicConnectAPI/internal/service"
)

type MediaController struct {
	mediaService *service.MediaService
}

func NewMediaController(mediaService *service.MediaService) *MediaController {
	return &MediaController{
		mediaService: mediaService,
	}
}

// UploadPhotos accepts multipart form uploads under the "photos" field.
func (c *MediaController) UploadPhotos(w http.ResponseWriter, r *http.Request) {
	userContext, ok := r.Context().Value(middleware.UserContextKey).(*model.UserDTO)
	if !ok {
		helper.WriteError(w, helper.NewUnauthorizedError(""))
		return
	}

	if err := r.ParseMultipartForm(constant.MaxUploadMemory); err != nil {
		helper.WriteError(w, helper.NewBadRequestError("Invalid multipart form"))
		return
	}

	files := r.MultipartForm.File["photos"]

	resp, err := c.mediaService.UploadPhotos(r.Context(), userContext, files)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteCreated(w, resp)
}
