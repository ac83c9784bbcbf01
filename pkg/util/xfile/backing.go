package xfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CreateBackingFile 在 dir 下按 pattern（os.CreateTemp 语义，"*" 替换为随机串）
// 创建文件并写入 content，返回以读写方式打开的文件。
//
// dir 为空时使用 [os.TempDir]，不存在时按 [DefaultDirPerm] 创建。
// 写入失败时文件会被关闭并删除；成功返回后文件的删除由调用方负责。
func CreateBackingFile(dir, pattern string, content []byte) (*os.File, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	cleanDir, err := ValidateDir(dir)
	if err != nil {
		return nil, err
	}
	if pattern == "" || strings.ContainsAny(pattern, `/\`) || containsNullByte(pattern) {
		return nil, fmt.Errorf("file pattern %q: %w", pattern, ErrInvalidPath)
	}

	// EnsureDir 接收文件路径，传入目录下的占位文件名以创建目录本身。
	if err := EnsureDir(filepath.Join(cleanDir, pattern)); err != nil {
		return nil, fmt.Errorf("xfile: create directory %s: %w", cleanDir, err)
	}

	f, err := os.CreateTemp(cleanDir, pattern)
	if err != nil {
		return nil, fmt.Errorf("xfile: create backing file: %w", err)
	}
	if _, err := f.Write(content); err != nil {
		closeErr := f.Close()
		removeErr := os.Remove(f.Name())
		return nil, fmt.Errorf("xfile: write backing file: %w", errors.Join(err, closeErr, removeErr))
	}
	return f, nil
}
