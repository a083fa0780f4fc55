// 读取目录下所有的帮助文章json，提取其中的图片url并去重
// 单个文件读取或解析失败只记录日志，不影响其他文件
package collector

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/url"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/andrewyi/helpimages/src/analyzer"
	"github.com/andrewyi/helpimages/src/entity"
	"github.com/andrewyi/helpimages/src/util"
)

type SimpleCollector struct {
	logger *log.Logger
	base   *url.URL

	// 为nil时不分析Body中的图片
	analyzer analyzer.Analyzer
}

func NewSimpleCollector(logger *log.Logger, baseURL string, bodyImages bool) (Collector, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	if !base.IsAbs() || base.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}

	c := &SimpleCollector{
		logger: logger,
		base:   base,
	}
	if bodyImages {
		c.analyzer = analyzer.NewSimpleAnalyzer()
	}
	return c, nil
}

// 只扫描当前目录，不递归
func (c *SimpleCollector) Collect(dir string) (map[string]struct{}, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}

	var urls = make(map[string]struct{})
	for _, f := range files {
		record, err := readRecord(f)
		if err != nil {
			// 非致命错误，跳过此文件
			c.logger.WithError(err).WithField("file", f).Error("fail to read help record")
			continue
		}

		c.add(urls, record.UrlImage)
		for _, related := range record.RelatedContents {
			c.add(urls, related.UrlImage)
		}
		if c.analyzer != nil {
			for _, src := range c.analyzer.Analyze(record.Body) {
				c.add(urls, src)
			}
		}
	}

	return urls, nil
}

func (c *SimpleCollector) add(urls map[string]struct{}, u string) {
	if u == "" {
		return
	}
	urls[util.ResolveURL(c.base, u)] = struct{}{}
}

func readRecord(path string) (*entity.HelpRecord, error) {
	content, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var record entity.HelpRecord
	if err := json.Unmarshal(content, &record); err != nil {
		return nil, err
	}
	return &record, nil
}
