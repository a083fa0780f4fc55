// 从帮助文章的Body(html片段)中提取img标签src属性的值
// 注意此处不做url补全，由collector统一处理
package analyzer

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

type SimpleAnalyzer struct{}

func NewSimpleAnalyzer() Analyzer {
	return &SimpleAnalyzer{}
}

// 返回去重后的src，保持在文档中出现的顺序
func (a *SimpleAnalyzer) Analyze(body string) []string {
	if strings.TrimSpace(body) == "" {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil
	}

	var (
		seen = make(map[string]struct{})
		srcs []string
	)
	doc.Find("img[src]").Each(func(index int, element *goquery.Selection) {
		src := strings.TrimSpace(element.AttrOr("src", ""))
		if src == "" {
			return
		}
		if _, ok := seen[src]; ok {
			return
		}
		seen[src] = struct{}{}
		srcs = append(srcs, src)
	})
	return srcs
}
