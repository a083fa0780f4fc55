package downloader

import (
	"context"

	"github.com/andrewyi/helpimages/src/entity"
)

type Downloader interface {
	Download(ctx context.Context, url string, fp string) entity.ImageInfo
}
