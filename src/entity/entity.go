package entity

import (
	"encoding/json"
)

// 帮助文章json，只关心图片相关字段，其余字段忽略
// 字段名区分大小写，urlimage、URLIMAGE等均视为不存在
type HelpRecord struct {
	UrlImage        string
	Body            string
	RelatedContents []RelatedContent
}

type RelatedContent struct {
	UrlImage string
}

func (r *HelpRecord) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if err := decodeField(fields, "UrlImage", &r.UrlImage); err != nil {
		return err
	}
	if err := decodeField(fields, "RelatedContents", &r.RelatedContents); err != nil {
		return err
	}
	// Body只在提取正文图片时使用，类型不符时忽略，不影响其他字段
	_ = decodeField(fields, "Body", &r.Body)
	return nil
}

func (c *RelatedContent) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	return decodeField(fields, "UrlImage", &c.UrlImage)
}

// 字段不存在或为null时保持零值
func decodeField(fields map[string]json.RawMessage, key string, out interface{}) error {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	return json.Unmarshal(raw, out)
}

// 单个url的处理结果
type ImageInfo struct {
	URL      string
	FileName string
	State    uint32 // 1/success 2/fail 3/skipped
	Remark   string // error description, if any
}

// 一次运行的统计
type Summary struct {
	Downloaded int
	Failed     int
	Skipped    int
	Total      int
}
