package merge

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"
)

func gbkBytes(t *testing.T, s string) []byte {
	t.Helper()
	b, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)
	return b
}

func TestReadFileContent(t *testing.T) {
	gbk := gbkBytes(t, "迷宫生成器\n")

	fsys := fstest.MapFS{
		"utf8.txt":   {Data: []byte("héllo 世界\n")},
		"gbk.txt":    {Data: gbk},
		"binary.bin": {Data: []byte{0xff, 0xfe, 0x00, 0xff}},
		"trunc.txt":  {Data: []byte{'o', 'k', 0x81}},
		"empty.txt":  {Data: []byte{}},
		"euro.txt":   {Data: []byte{'a', 0x80, 'b'}},
	}

	tests := []struct {
		name string
		file string
		want string
	}{
		{"valid utf-8", "utf8.txt", "héllo 世界\n"},
		{"gbk fallback", "gbk.txt", "迷宫生成器\n"},
		{"neither encoding", "binary.bin", "[error: cannot read file binary.bin, it may not be a text file]"},
		{"truncated multibyte", "trunc.txt", "[error: cannot read file trunc.txt, it may not be a text file]"},
		{"empty file", "empty.txt", ""},
		{"single byte 0x80", "euro.txt", "[error: cannot read file euro.txt, it may not be a text file]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReadFileContent(fsys, tt.file))
		})
	}
}

func TestReadFileContent_ReadError(t *testing.T) {
	got := ReadFileContent(fstest.MapFS{}, "missing.txt")
	assert.Contains(t, got, "[error: failed to read file missing.txt - ")
	assert.Contains(t, got, "file does not exist")
}

func TestDecodeText_ReportsEncoding(t *testing.T) {
	_, enc, ok := decodeText([]byte("plain"))
	require.True(t, ok)
	assert.Equal(t, "utf-8", enc)

	_, enc, ok = decodeText(gbkBytes(t, "中文"))
	require.True(t, ok)
	assert.Equal(t, "gbk", enc)

	_, _, ok = decodeText([]byte{0xff})
	assert.False(t, ok)
}

func TestDecodeText_EuroByte(t *testing.T) {
	_, _, ok := decodeText([]byte{0x80})
	assert.False(t, ok)

	// 0x80 is a valid trail byte.
	_, enc, ok := decodeText([]byte{0x81, 0x80})
	require.True(t, ok)
	assert.Equal(t, "gbk", enc)
}
