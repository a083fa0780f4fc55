package controller

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/andrewyi/helpimages/src/downloader"
	"github.com/andrewyi/helpimages/src/entity"
	"github.com/andrewyi/helpimages/src/enum"
	"github.com/andrewyi/helpimages/src/filestorage"
	"github.com/andrewyi/helpimages/src/util"
)

// NOTE: 非并发安全，一次运行只应由一个协程顺序调用
type SimpleController struct {
	logger *log.Logger

	file     filestorage.FileStorage
	download downloader.Downloader
	recorder Recorder // 可以为nil

	downloaded int
	failed     int
	// 本次运行中已经分配过的文件名，保证生成的文件名不重复
	names      map[string]struct{}
}

func NewSimpleController(logger *log.Logger, file filestorage.FileStorage, d downloader.Downloader, recorder Recorder) Controller {
	return &SimpleController{
		logger:   logger,
		file:     file,
		download: d,
		recorder: recorder,
		names:    make(map[string]struct{}),
	}
}

func (c *SimpleController) Process(ctx context.Context, url string) entity.ImageInfo {
	fileName := util.FileNameFromURL(url)
	if fileName == "" {
		fileName = c.fallbackName()
	}
	c.names[fileName] = struct{}{}

	var info entity.ImageInfo
	if c.file.Exists(fileName) {
		// 已存在的文件不再下载，也不覆盖
		info = entity.ImageInfo{
			URL:      url,
			FileName: fileName,
			State:    enum.ImageStateSkipped,
		}
	} else {
		info = c.download.Download(ctx, url, c.file.Path(fileName))
		info.FileName = fileName
		if info.State == enum.ImageStateSuccess {
			c.downloaded++
		} else {
			c.failed++
		}
	}

	c.record(info)
	return info
}

// 编号从当前已处理(成功+失败)的数量开始，跳过本次运行中已经用过的文件名
func (c *SimpleController) fallbackName() string {
	n := c.downloaded + c.failed
	for {
		name := fmt.Sprintf(enum.FallbackNamePattern, n)
		if _, used := c.names[name]; !used {
			return name
		}
		n++
	}
}

func (c *SimpleController) record(info entity.ImageInfo) {
	if c.recorder == nil {
		return
	}
	if err := c.recorder.Record(info); err != nil {
		// 记录失败不影响下载结果
		c.logger.WithError(err).WithField("url", info.URL).Error("fail to record image")
	}
}
