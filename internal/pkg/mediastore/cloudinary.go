// Package mediastore uploads local files to Cloudinary and hands back
// durable public URLs.
package mediastore

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"
)

const folderPrefix = "zuper"

var ErrNotConfigured = errors.New("media store is not configured")

type Config struct {
	CloudName string `mapstructure:"cloud_name"`
	APIKey    string `mapstructure:"api_key"`
	APISecret string `mapstructure:"api_secret"`
}

func (c *Config) complete() bool {
	return c != nil && c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

type CloudinaryStore struct {
	client *cloudinary.Cloudinary
}

// New builds the store, or returns ErrNotConfigured when credentials are
// missing so callers can degrade uploads instead of crashing at startup.
func New(conf *Config) (*CloudinaryStore, error) {
	if !conf.complete() {
		return nil, ErrNotConfigured
	}

	client, err := cloudinary.NewFromParams(conf.CloudName, conf.APIKey, conf.APISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary.NewFromParams -> %w", err)
	}

	return &CloudinaryStore{
		client: client,
	}, nil
}

// Upload pushes the local file into zuper/<folder> and returns its public
// URL. The local file is removed afterwards whether or not the upload
// succeeded.
func (s *CloudinaryStore) Upload(ctx context.Context, localPath, folder string) (string, error) {
	if s == nil {
		return "", ErrNotConfigured
	}

	defer func() {
		if err := os.Remove(localPath); err != nil {
			zap.L().Warn("failed to remove temporary upload", zap.String("path", localPath), zap.Error(err))
		}
	}()

	resp, err := s.client.Upload.Upload(ctx, localPath, uploader.UploadParams{
		Folder:       fmt.Sprintf("%s/%s", folderPrefix, folder),
		ResourceType: "auto",
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload -> %w", err)
	}

	return resp.SecureURL, nil
}

func (s *CloudinaryStore) Delete(ctx context.Context, publicID string) error {
	if _, err := s.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("cloudinary destroy -> %w", err)
	}

	return nil
}
