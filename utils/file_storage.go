package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FileStorage accepts binary uploads (KYC documents, photos, brochures)
// and returns a stable reference that callers store verbatim on the
// owning record.
type FileStorage interface {
	UploadFile(file multipart.File, kind, fileName string) (string, error)
	UploadFileFromReader(src io.Reader, kind, fileName string) (string, error)
	DownloadFile(filePath string) (io.ReadCloser, error)
	DeleteFile(filePath string) error
	FileExists(filePath string) (bool, error)
}

// LocalFileStorage keeps uploads on disk under uploadPath/<kind>/, with
// a random prefix so repeated uploads of the same filename never
// collide.
type LocalFileStorage struct {
	uploadPath string
}

func NewLocalFileStorage(uploadPath string) *LocalFileStorage {
	return &LocalFileStorage{uploadPath: uploadPath}
}

func (s *LocalFileStorage) destination(kind, fileName string) (string, error) {
	dir := filepath.Join(s.uploadPath, kind)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}
	safeName := strings.ReplaceAll(filepath.Base(fileName), " ", "_")
	return filepath.Join(dir, uuid.New().String()[:8]+"_"+safeName), nil
}

// UploadFile stores a multipart upload and returns its reference path.
func (s *LocalFileStorage) UploadFile(file multipart.File, kind, fileName string) (string, error) {
	return s.UploadFileFromReader(file, kind, fileName)
}

// UploadFileFromReader stores content from any io.Reader.
func (s *LocalFileStorage) UploadFileFromReader(src io.Reader, kind, fileName string) (string, error) {
	filePath, err := s.destination(kind, fileName)
	if err != nil {
		return "", err
	}

	dst, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(filePath)
		return "", fmt.Errorf("failed to copy file content: %w", err)
	}

	return filePath, nil
}

// DownloadFile retrieves a stored file for reading
func (s *LocalFileStorage) DownloadFile(filePath string) (io.ReadCloser, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}

// DeleteFile removes a file from storage
func (s *LocalFileStorage) DeleteFile(filePath string) error {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil // nothing to delete
	}
	if err := os.Remove(filePath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// FileExists checks if a file exists in storage
func (s *LocalFileStorage) FileExists(filePath string) (bool, error) {
	_, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check file existence: %w", err)
	}
	return true, nil
}
