package core

import (
	"context"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/andrewyi/helpimages/src/controller"
	"github.com/andrewyi/helpimages/src/entity"
	"github.com/andrewyi/helpimages/src/enum"
)

// 顺序处理所有url，一个url处理完成(或超时)后才处理下一个
// 按url排序处理，使生成的文件名在多次运行之间保持稳定
func DownloadImages(ctx context.Context, logger *log.Logger, urls map[string]struct{}, c controller.Controller) entity.Summary {
	var sorted = make([]string, 0, len(urls))
	for u := range urls {
		sorted = append(sorted, u)
	}
	sort.Strings(sorted)

	var summary = entity.Summary{Total: len(sorted)}
	for _, u := range sorted {
		logger.WithField("url", u).Debug("processing")
		info := c.Process(ctx, u)
		entry := logger.WithField("file", info.FileName)

		switch info.State {
		case enum.ImageStateSuccess:
			summary.Downloaded++
			entry.Info("downloaded")
		case enum.ImageStateSkipped:
			summary.Skipped++
			entry.Info("already exists")
		default:
			// 错误已经由downloader记录
			summary.Failed++
		}
	}
	return summary
}

func ReportSummary(logger *log.Logger, summary entity.Summary) {
	logger.WithFields(log.Fields{
		"downloaded": summary.Downloaded,
		"failed":     summary.Failed,
		"skipped":    summary.Skipped,
		"total":      summary.Total,
	}).Info("summary")
}
