package service

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"CivicConnectAPI/internal/adapter"
	"CivicConnectAPI/internal/constant"
	"CivicConnectAPI/internal/helper"
	"CivicConnectAPI/internal/model"

	"github.com/stretchr/testify/assert"
)

func newTestMediaService() *MediaService {
	return NewMediaService(testConfig, adapter.NewStorageAdapter(testConfig, nil))
}

type testUpload struct {
	name    string
	content []byte
}

func makeFileHeaders(t *testing.T, uploads []testUpload) []*multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, upload := range uploads {
		part, err := writer.CreateFormFile("photos", upload.name)
		assert.NoError(t, err)
		_, err = part.Write(upload.content)
		assert.NoError(t, err)
	}
	assert.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	assert.NoError(t, req.ParseMultipartForm(constant.MaxUploadMemory))

	return req.MultipartForm.File["photos"]
}

func TestUploadPhotos_RejectsEmptyAndOversizedBatch(t *testing.T) {
	s := newTestMediaService()
	principal := &model.UserDTO{ID: mustUUID()}

	_, err := s.UploadPhotos(context.Background(), principal, nil)
	appErr, ok := err.(*helper.AppError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)

	uploads := make([]testUpload, 0, constant.MaxPhotoCount+1)
	for i := 0; i <= constant.MaxPhotoCount; i++ {
		uploads = append(uploads, testUpload{name: "a.png", content: []byte("x")})
	}

	_, err = s.UploadPhotos(context.Background(), principal, makeFileHeaders(t, uploads))
	appErr, ok = err.(*helper.AppError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
}

func TestUploadPhotos_RejectsOversizedFile(t *testing.T) {
	s := newTestMediaService()
	principal := &model.UserDTO{ID: mustUUID()}

	big := bytes.Repeat([]byte("a"), constant.MaxPhotoSize+1)
	_, err := s.UploadPhotos(context.Background(), principal, makeFileHeaders(t, []testUpload{
		{name: "huge.png", content: big},
	}))

	appErr, ok := err.(*helper.AppError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	assert.Contains(t, appErr.Message, "5MB")
}

func TestUploadPhotos_RejectsNonImageContent(t *testing.T) {
	s := newTestMediaService()
	principal := &model.UserDTO{ID: mustUUID()}

	_, err := s.UploadPhotos(context.Background(), principal, makeFileHeaders(t, []testUpload{
		{name: "notes.png", content: []byte("just some plain text pretending to be a png")},
	}))

	appErr, ok := err.(*helper.AppError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	assert.Contains(t, appErr.Message, "not a supported image")
}

// A bad file is skipped, not fatal mid-batch: every file is attempted
// and the first failure is what the caller sees when nothing succeeds.
func TestUploadPhotos_FirstFailureReportedWhenAllSkipped(t *testing.T) {
	s := newTestMediaService()
	principal := &model.UserDTO{ID: mustUUID()}

	big := bytes.Repeat([]byte("a"), constant.MaxPhotoSize+1)
	_, err := s.UploadPhotos(context.Background(), principal, makeFileHeaders(t, []testUpload{
		{name: "huge.png", content: big},
		{name: "notes.png", content: []byte(strings.Repeat("text ", 10))},
	}))

	appErr, ok := err.(*helper.AppError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	assert.Contains(t, appErr.Message, "huge.png")
}
