package backup

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// Uploader copies a local file to object storage
type Uploader interface {
	UploadFile(ctx context.Context, bucket, prefix, filePath string) error
}

type GStorage struct {
	storageClient *storage.Client
}

var _ Uploader = (*GStorage)(nil)

// NewGStorage creates a google storage client. Without a credentials file the
// default application credentials are used.
func NewGStorage(ctx context.Context, credentialsFilePath string) (*GStorage, error) {
	var client *storage.Client
	var err error

	if credentialsFilePath != "" {
		client, err = storage.NewClient(ctx, option.WithCredentialsFile(credentialsFilePath))
	} else {
		client, err = storage.NewClient(ctx)
	}

	if err != nil {
		return nil, fmt.Errorf("NewGStorage: %v", err)
	}

	return &GStorage{storageClient: client}, nil
}

// UploadFile uploads the file at filePath as '<prefix>/<file name>'
func (gs *GStorage) UploadFile(ctx context.Context, bucket, prefix, filePath string) error {
	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("os.Open: %v", err)
	}
	defer f.Close()

	objectName := ObjectName(prefix, filePath)
	wc := gs.storageClient.Bucket(bucket).Object(objectName).NewWriter(ctx)
	if _, err = io.Copy(wc, f); err != nil {
		wc.Close()
		return fmt.Errorf("io.Copy: %v", err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("Writer.Close: %v", err)
	}

	logg.Infof("Blob %v uploaded to %v", objectName, bucket)
	return nil
}

func (gs *GStorage) Close() error {
	return gs.storageClient.Close()
}

func ObjectName(prefix, filePath string) string {
	return path.Join(prefix, filepath.Base(filePath))
}
