// 数据库表，每个图片url一条记录，记录最近一次处理的结果
package schema

import (
	"time"
)

type Image struct {
	ID        uint64    `xorm:"bigint pk autoincr 'id'"`
	URL       string    `xorm:"varchar(2048) notnull unique(uk_url) 'url'"`
	FileName  string    `xorm:"varchar(512) notnull 'file_name'"`
	State     uint8     `xorm:"int 'state'"`
	Remark    string    `xorm:"text 'remark'"`
	FetchedAt time.Time `xorm:"datetime 'fetched_at'"`
	CreatedAt time.Time `xorm:"created notnull 'created_at'"`
	UpdatedAt time.Time `xorm:"updated notnull 'updated_at'"`
}

func (i *Image) TableName() string {
	return "images"
}
