// Package interfaces はxorbreakコマンドで使用するインターフェースを定義します
package interfaces

import (
	"io"

	"github.com/shiroemons/go-cryptopals/internal/xorbreak/models"
)

// FileSystem はファイルシステム操作のインターフェース
type FileSystem interface {
	FileExists(filename string) bool
	ReadFile(filename string) ([]byte, error)
	WriteFile(filename string, data []byte, perm uint32) error
	MkdirAll(path string, perm uint32) error
}

// LineParser は入力行をデコードするインターフェース
type LineParser interface {
	ParseLines(lines []string) ([]models.Line, error)
}

// Reporter は結果を書き出すインターフェース
type Reporter interface {
	Render(w io.Writer, result models.Result) error
}

// Logger はログ出力のインターフェース
type Logger interface {
	Printf(format string, a ...any)
	Warnf(format string, a ...any)
}
