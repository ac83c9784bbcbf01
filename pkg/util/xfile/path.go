package xfile

import (
	"fmt"
	"path/filepath"
	"strings"
)

func containsNullByte(path string) bool {
	return strings.ContainsRune(path, 0)
}

// hasDotDotSegment 报告路径中是否存在恰好为 ".." 的路径段。
// 同时把 '/' 与 '\' 视为分隔符。
func hasDotDotSegment(path string) bool {
	i := 0
	for i < len(path) {
		if path[i] == '/' || path[i] == '\\' {
			i++
			continue
		}
		j := i
		for j < len(path) && path[j] != '/' && path[j] != '\\' {
			j++
		}
		if j-i == 2 && path[i] == '.' && path[i+1] == '.' {
			return true
		}
		i = j
	}
	return false
}

// ValidateDir 校验目录路径并返回规范化结果。
//
// 拒绝空路径、含空字节的路径与含 ".." 路径段的路径（在 Clean 之前检查，
// 避免 "/tmp/../etc" 被规范化后绕过）。
func ValidateDir(dir string) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("directory is required: %w", ErrEmptyPath)
	}
	if containsNullByte(dir) {
		return "", fmt.Errorf("directory contains null byte: %w", ErrNullByte)
	}
	if hasDotDotSegment(dir) {
		return "", fmt.Errorf("path traversal in directory %q: %w", dir, ErrPathTraversal)
	}
	return filepath.Clean(dir), nil
}

// SanitizePath 校验文件路径并返回规范化结果。
//
// 在 [ValidateDir] 的检查之外，拒绝以分隔符结尾、最后一段为 "." 或规范化后指向目录本身（"."、"/"）的路径。
func SanitizePath(filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("filename is required: %w", ErrEmptyPath)
	}
	if strings.HasSuffix(filename, "/") || strings.HasSuffix(filename, `\`) {
		return "", fmt.Errorf("filename %q ends with a separator: %w", filename, ErrInvalidPath)
	}
	// "a/./." 规范化后是 "a"，但写法上指向目录本身
	if filepath.Base(filename) == "." {
		return "", fmt.Errorf("filename %q names a directory: %w", filename, ErrInvalidPath)
	}
	cleaned, err := ValidateDir(filename)
	if err != nil {
		return "", err
	}
	if cleaned == "." || cleaned == string(filepath.Separator) {
		return "", fmt.Errorf("filename %q is not a file: %w", filename, ErrInvalidPath)
	}
	return cleaned, nil
}
