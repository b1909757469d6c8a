// Package fileutil はファイル操作のユーティリティ関数を提供します
package fileutil

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shiroemons/go-cryptopals/internal/xorbreak/interfaces"
)

// maxLineSize は1行の最大バイト数です
const maxLineSize = 1 << 20

// FileExists はファイルが存在するか確認します
func FileExists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}

// ReadLines は r を行ごとに分割して返します。
// 行末の改行 (\n または \r\n) は取り除きます。
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanLines, err)
	}
	return lines, nil
}

// ReadFileLines は fs からファイルを読み込み、行ごとに分割して返します
func ReadFileLines(fs interfaces.FileSystem, filename string) ([]string, error) {
	data, err := fs.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ReadLines(bytes.NewReader(data))
}

// SaveToFile は出力先ディレクトリを作成してから content を保存します
func SaveToFile(fs interfaces.FileSystem, outputPath string, content string) error {
	dir := filepath.Dir(outputPath)
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: %w", ErrCreateDirectory, err)
	}

	if err := fs.WriteFile(outputPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteContent, err)
	}

	return nil
}
