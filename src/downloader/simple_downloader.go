// 简单的http GET下载，不重试
// 内容先写入.part临时文件，完整写入后再重命名为目标文件，
// 避免残缺文件在下次运行时被误认为已下载
package downloader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/andrewyi/helpimages/src/entity"
	"github.com/andrewyi/helpimages/src/enum"
	"github.com/andrewyi/helpimages/src/util"
)

type SimpleDownloader struct {
	logger    *log.Logger
	userAgent string

	client *http.Client
}

// timeout单位为秒
func NewSimpleDownloader(logger *log.Logger, timeout uint32, userAgent string) Downloader {
	return &SimpleDownloader{
		logger:    logger,
		userAgent: userAgent,
		client: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
	}
}

func (s *SimpleDownloader) Download(ctx context.Context, url string, fp string) entity.ImageInfo {
	info := entity.ImageInfo{
		URL:      url,
		FileName: filepath.Base(fp),
	}

	if err := s.fetch(ctx, url, fp); err != nil {
		s.logger.WithError(err).WithField("url", url).Error("fail to download image")
		info.State = enum.ImageStateFail
		info.Remark = err.Error()
		return info
	}

	info.State = enum.ImageStateSuccess
	return info
}

func (s *SimpleDownloader) fetch(ctx context.Context, url string, fp string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, util.RequestURL(url), nil)
	if err != nil {
		return err
	}
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	return writeFile(fp, resp.Body)
}

func writeFile(fp string, r io.Reader) error {
	tmp := fp + enum.PartialFileSuffix
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	_, err = io.Copy(f, r)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmp)
		return err
	}

	if err := os.Rename(tmp, fp); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
