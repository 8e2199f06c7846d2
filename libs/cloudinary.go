package libs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"product-catalog/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"
)

var ErrCloudinaryNotConfigured = errors.New("cloudinary credentials not configured")

// CloudinaryMirror copies remote product images into the catalog's own
// Cloudinary folder so listings do not depend on third-party hotlinking.
type CloudinaryMirror struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryMirror(cfg *config.Config) (*CloudinaryMirror, error) {
	var (
		cld *cloudinary.Cloudinary
		err error
	)
	switch {
	case cfg.CloudinaryCloudName != "" && cfg.CloudinaryAPIKey != "" && cfg.CloudinaryAPISecret != "":
		cld, err = cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	case cfg.CloudinaryURL != "":
		zap.S().Infof("[Cloudinary] Using CLOUDINARY_URL: %s", maskURL(cfg.CloudinaryURL))
		cld, err = cloudinary.NewFromURL(cfg.CloudinaryURL)
	default:
		return nil, ErrCloudinaryNotConfigured
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}

	return &CloudinaryMirror{cld: cld, folder: cfg.CloudinaryFolder}, nil
}

// Mirror uploads the image at sourceURL and returns the hosted secure URL.
func (m *CloudinaryMirror) Mirror(ctx context.Context, sourceURL string) (string, error) {
	resp, err := m.cld.Upload.Upload(ctx, sourceURL, uploader.UploadParams{
		PublicID:       fmt.Sprintf("product_%d", time.Now().UnixNano()),
		Folder:         m.folder,
		ResourceType:   "image",
		Transformation: "q_auto,f_auto",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to cloudinary: %w", err)
	}
	if resp == nil {
		return "", errors.New("cloudinary response is nil")
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload rejected: %s", resp.Error.Message)
	}

	if resp.SecureURL != "" {
		return resp.SecureURL, nil
	}
	if resp.URL != "" {
		return resp.URL, nil
	}
	return "", errors.New("both SecureURL and URL are empty")
}

func maskURL(url string) string {
	if len(url) < 20 {
		return "***"
	}
	return url[:10] + "..." + url[len(url)-10:]
}
