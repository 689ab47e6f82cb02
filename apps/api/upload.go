package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/cecepns/rn-aneka-jaya/pkg/response"
	"github.com/cecepns/rn-aneka-jaya/pkg/uploads"

	"github.com/gin-gonic/gin"
)

// storeUpload 取出并保存一个可选的上传文件。
// 返回 (新文件名, 是否继续)：没传文件返回 (nil, true)；
// 校验失败已经写好 400 响应，返回 (nil, false)；
// 磁盘写失败只记日志不拦截请求——行数据是唯一权威，文件层抖动不能挡住内容变更。
func (s *server) storeUpload(ctx *gin.Context, field string) (*string, bool) {
	fh, err := ctx.FormFile(field)
	if err != nil {
		return nil, true
	}

	name, err := s.uploads.Save(field, fh)
	if err != nil {
		if errors.Is(err, uploads.ErrTooLarge) || errors.Is(err, uploads.ErrNotImage) {
			response.Error(ctx, http.StatusBadRequest, err.Error())
			return nil, false
		}
		log.Printf("Failed to store uploaded %s: %v", field, err)
		return nil, true
	}
	return &name, true
}

// removeUpload 尽力而为地删除旧文件，失败只记日志
func (s *server) removeUpload(name string) {
	if err := s.uploads.Remove(name); err != nil {
		log.Printf("Failed to delete old image %s: %v", name, err)
	}
}
