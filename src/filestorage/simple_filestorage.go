// 所有图片平铺存放在同一目录下，文件名即url最后一段
package filestorage

import (
	"os"
	"path/filepath"
)

type SimpleFileStorage struct {
	location string
}

func NewSimpleFileStorage(location string) FileStorage {
	return &SimpleFileStorage{
		location: location,
	}
}

// 目录不存在时递归创建
func (s *SimpleFileStorage) Prepare() error {
	err := os.MkdirAll(s.location, os.ModePerm)
	if err != nil && !os.IsExist(err) {
		return err
	}
	return nil
}

func (s *SimpleFileStorage) Path(fileName string) string {
	return filepath.Join(s.location, fileName)
}

func (s *SimpleFileStorage) Exists(fileName string) bool {
	_, err := os.Stat(s.Path(fileName))
	return err == nil
}
