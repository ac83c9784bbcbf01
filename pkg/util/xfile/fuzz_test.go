package xfile

import (
	"errors"
	"testing"
)

func FuzzValidateDir(f *testing.F) {
	f.Add("/tmp")
	f.Add("/tmp/../etc")
	f.Add("..config")
	f.Add("")
	f.Add("a\x00b")

	f.Fuzz(func(t *testing.T, dir string) {
		got, err := ValidateDir(dir)
		if err != nil {
			if !errors.Is(err, ErrEmptyPath) && !errors.Is(err, ErrNullByte) && !errors.Is(err, ErrPathTraversal) {
				t.Errorf("ValidateDir(%q) unexpected error: %v", dir, err)
			}
			return
		}
		if hasDotDotSegment(got) {
			t.Errorf("ValidateDir(%q) = %q contains '..' segment", dir, got)
		}
		if containsNullByte(got) {
			t.Errorf("ValidateDir(%q) = %q contains null byte", dir, got)
		}
	})
}
