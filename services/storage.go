package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// UploadResult là kết quả upload một file lên object storage
type UploadResult struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// StorageService bọc client object storage phía sau interface upload/delete
type StorageService struct {
	cld *cloudinary.Cloudinary
}

func NewStorageService(cld *cloudinary.Cloudinary) *StorageService {
	return &StorageService{cld: cld}
}

// UploadFile upload một file vào folder, key gắn với entity để dọn được về sau
func (s *StorageService) UploadFile(ctx context.Context, file *multipart.FileHeader, folder string, entityID uint) (*UploadResult, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	publicID := fmt.Sprintf("%s/%d-%s", folder, entityID, uuid.NewString())
	resp, err := s.cld.Upload.Upload(ctx, src, uploader.UploadParams{
		PublicID: publicID,
	})
	if err != nil {
		return nil, err
	}

	return &UploadResult{
		URL: resp.SecureURL,
		Key: resp.PublicID,
	}, nil
}

// DeleteFile xóa một file theo key
func (s *StorageService) DeleteFile(ctx context.Context, key string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: key})
	return err
}

// DeleteMultipleFiles xóa nhiều file, gom lỗi đầu tiên gặp phải
func (s *StorageService) DeleteMultipleFiles(ctx context.Context, keys []string) error {
	var firstErr error
	for _, key := range keys {
		if err := s.DeleteFile(ctx, key); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
