package xsys

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Region 是 /proc/<pid>/maps 中的一条映射。
type Region struct {
	Start uintptr // 含
	End   uintptr // 不含
	Perms string  // 如 "rw-p"
	Name  string  // 路径名或伪名称（如 "[stack]"），匿名映射为空
}

// Size 返回映射长度。
func (r Region) Size() uintptr {
	return r.End - r.Start
}

// Contains 报告 addr 是否落在映射内。
func (r Region) Contains(addr uintptr) bool {
	return addr >= r.Start && addr < r.End
}

// parseMapsLine 解析一行 maps 输出：
//
//	7ffd5a3c1000-7ffd5a3e2000 rw-p 00000000 00:00 0                          [stack]
func parseMapsLine(line string) (Region, error) {
	fields := strings.Fields(line)
	if len(fields) < 5 {
		return Region{}, fmt.Errorf("%w: %q", ErrMalformedMaps, line)
	}

	lo, hi, ok := strings.Cut(fields[0], "-")
	if !ok {
		return Region{}, fmt.Errorf("%w: %q", ErrMalformedMaps, line)
	}
	start, err := strconv.ParseUint(lo, 16, 64)
	if err != nil {
		return Region{}, fmt.Errorf("%w: %q: %w", ErrMalformedMaps, line, err)
	}
	end, err := strconv.ParseUint(hi, 16, 64)
	if err != nil {
		return Region{}, fmt.Errorf("%w: %q: %w", ErrMalformedMaps, line, err)
	}
	if end < start {
		return Region{}, fmt.Errorf("%w: %q: end before start", ErrMalformedMaps, line)
	}

	r := Region{
		Start: uintptr(start),
		End:   uintptr(end),
		Perms: fields[1],
	}
	// 路径名可能包含空格（如 "/tmp/a b (deleted)"），取第 6 列之后的全部内容。
	if len(fields) > 5 {
		r.Name = strings.Join(fields[5:], " ")
	}
	return r, nil
}

// FindRegion 在 maps 格式的输入中查找名称为 name 的第一条映射。
func FindRegion(r io.Reader, name string) (Region, error) {
	region, err := FindRegionFunc(r, func(reg Region) bool { return reg.Name == name })
	if errors.Is(err, ErrRegionNotFound) {
		return Region{}, fmt.Errorf("%w: %s", ErrRegionNotFound, name)
	}
	return region, err
}

// FindRegionFunc 返回第一条使 match 为 true 的映射。
func FindRegionFunc(r io.Reader, match func(Region) bool) (Region, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		region, err := parseMapsLine(line)
		if err != nil {
			return Region{}, err
		}
		if match(region) {
			return region, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return Region{}, fmt.Errorf("xsys: read maps: %w", err)
	}
	return Region{}, ErrRegionNotFound
}
