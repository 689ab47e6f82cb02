package uploads

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// 上传校验错误，处理器据此返回 400
var (
	ErrTooLarge = errors.New("File too large")
	ErrNotImage = errors.New("Only image files are allowed")
)

// Store 管理上传目录。数据库行是唯一权威，文件层的清理都是尽力而为：
// 行先落库，旧文件之后再删，删不掉只记日志。
type Store struct {
	dir     string
	maxSize int64
}

func NewStore(dir string, maxSize int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir, maxSize: maxSize}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Save 校验并落盘一个上传文件，返回生成的唯一文件名。
// 校验失败时不写任何东西。
func (s *Store) Save(field string, fh *multipart.FileHeader) (string, error) {
	if fh.Size > s.maxSize {
		return "", ErrTooLarge
	}
	if !strings.HasPrefix(fh.Header.Get("Content-Type"), "image/") {
		return "", ErrNotImage
	}

	name := fmt.Sprintf("%s-%s%s", field, uuid.New().String(), filepath.Ext(fh.Filename))

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return name, nil
}

// Remove 删除一个已保存的文件。文件不存在视为成功，
// 其他 IO 错误原样返回，由调用方记日志，绝不让请求失败。
func (s *Store) Remove(name string) error {
	if name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// Exists 文件是否在磁盘上 (测试用)
func (s *Store) Exists(name string) bool {
	_, err := os.Stat(filepath.Join(s.dir, name))
	return err == nil
}
