package controller

import (
	"context"

	"github.com/andrewyi/helpimages/src/entity"
)

type Controller interface {
	Process(context.Context, string) entity.ImageInfo
}

// 下载结果的持久化记录，dbstorage实现了此接口
type Recorder interface {
	Record(entity.ImageInfo) error
}
