package storage

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// Media kinds double as bucket names: one bucket per kind.
const (
	KindPhotos = "photos"
	KindVideos = "videos"
	KindAudio  = "audio"
)

var (
	S3Session       *session.Session
	S3Region        string
	BucketPrefix    string
	CDNBaseURL      string
	UseLocalStorage bool = true // Toggle: true = local, false = S3
)

// InitS3 initializes the shared S3 session and switches uploads to S3 mode.
func InitS3(region, bucketPrefix, cdnBaseURL string) error {
	S3Region = region
	BucketPrefix = bucketPrefix
	CDNBaseURL = strings.TrimSuffix(cdnBaseURL, "/")

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return err
	}

	S3Session = sess
	UseLocalStorage = false
	return nil
}

// BucketFor returns the bucket backing one media kind.
func BucketFor(kind string) string {
	return BucketPrefix + kind
}

// objectKey builds the write path for a new upload. Filenames are
// time-derived; at this traffic scale collisions are not a concern.
func objectKey(kind, originalName string) string {
	ext := filepath.Ext(originalName)
	return fmt.Sprintf("%s/%d%s", kind, time.Now().UnixMilli(), ext)
}

// Upload stores the file under the bucket for kind and returns a publicly
// resolvable URL for the stored object.
func Upload(kind string, file *multipart.FileHeader) (string, error) {
	if UseLocalStorage {
		return uploadToLocal(kind, file)
	}
	return uploadToS3(kind, file)
}

func uploadToS3(kind string, file *multipart.FileHeader) (string, error) {
	if S3Session == nil {
		return "", fmt.Errorf("S3 not initialized")
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	key := objectKey(kind, file.Filename)
	bucket := BucketFor(kind)

	svc := s3.New(S3Session)

	_, err = svc.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        src,
		ContentType: aws.String(file.Header.Get("Content-Type")),
		ACL:         aws.String("public-read"),
	})

	if err != nil {
		return "", err
	}

	if CDNBaseURL != "" {
		return CDNBaseURL + "/" + key, nil
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, S3Region, key), nil
}

// Delete removes the stored object behind url. Best effort: listing rows are
// the source of truth, a stale object is harmless.
func Delete(kind, url string) error {
	if UseLocalStorage {
		return deleteFromLocal(url)
	}
	return deleteFromS3(kind, url)
}

func deleteFromS3(kind, url string) error {
	if S3Session == nil {
		return fmt.Errorf("S3 not initialized")
	}

	key := extractKey(url)
	if key == "" {
		return fmt.Errorf("cannot derive object key from %q", url)
	}

	svc := s3.New(S3Session)
	_, err := svc.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(BucketFor(kind)),
		Key:    aws.String(key),
	})

	return err
}

// extractKey recovers the object key from a public or CDN URL.
// https://photos.s3.eu-west-1.amazonaws.com/photos/1712.jpg -> photos/1712.jpg
func extractKey(url string) string {
	if CDNBaseURL != "" && strings.HasPrefix(url, CDNBaseURL+"/") {
		return strings.TrimPrefix(url, CDNBaseURL+"/")
	}

	rest := url
	if idx := strings.Index(rest, "://"); idx != -1 {
		rest = rest[idx+3:]
	}
	if idx := strings.Index(rest, "/"); idx != -1 {
		return rest[idx+1:]
	}
	return ""
}

func StorageMode() string {
	if UseLocalStorage {
		return "local"
	}
	return "s3"
}

func SetStorageMode(useLocal bool) {
	UseLocalStorage = useLocal
}

// ObjectExists reports whether a local-mode URL still resolves to a file.
// Used by tests to document that deleting metadata leaves the object behind.
func ObjectExists(url string) bool {
	if !UseLocalStorage {
		return false
	}
	_, err := os.Stat("." + url)
	return !os.IsNotExist(err)
}
