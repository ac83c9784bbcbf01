package xfile_test

import (
	"fmt"
	"os"

	"github.com/omeyang/xfault/pkg/util/xfile"
)

func ExampleCreateBackingFile() {
	f, err := xfile.CreateBackingFile(os.TempDir(), "bustest_*", []byte("x"))
	if err != nil {
		fmt.Println("创建后备文件失败:", err)
		return
	}
	defer os.Remove(f.Name())
	defer f.Close()

	info, _ := f.Stat()
	fmt.Println(info.Size())
	// Output: 1
}

func ExampleValidateDir() {
	_, err := xfile.ValidateDir("/var/tmp/../../etc")
	fmt.Println(err != nil)
	// Output: true
}
