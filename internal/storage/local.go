package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"mime/multipart"
)

const uploadBasePath = "./uploads"

// InitLocalStorage creates the per-kind upload directories used by dev and
// test runs.
func InitLocalStorage() error {
	for _, kind := range []string{KindPhotos, KindVideos, KindAudio} {
		dir := filepath.Join(uploadBasePath, kind)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %v", dir, err)
		}
	}
	return nil
}

func uploadToLocal(kind string, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %v", err)
	}
	defer src.Close()

	key := objectKey(kind, file.Filename)
	fullPath := filepath.Join(uploadBasePath, key)

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %v", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to save file: %v", err)
	}

	return "/uploads/" + key, nil
}

func deleteFromLocal(url string) error {
	filePath := strings.TrimPrefix(url, "/")

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("invalid file path: %v", err)
	}

	baseAbs, err := filepath.Abs(uploadBasePath)
	if err != nil {
		return fmt.Errorf("invalid base path: %v", err)
	}
	if realPath, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = realPath
	}
	if !strings.HasPrefix(absPath, baseAbs) {
		return fmt.Errorf("file path outside uploads directory")
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", filePath)
	}

	return os.Remove(filePath)
}
