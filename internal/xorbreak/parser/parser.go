// Package parser は入力行の解析を行います
package parser

import (
	"strings"

	"github.com/shiroemons/go-cryptopals/internal/xorbreak/errors"
	"github.com/shiroemons/go-cryptopals/internal/xorbreak/models"
	"github.com/shiroemons/go-cryptopals/pkg/bytearray"
)

// HexLineParser は1行に1つの16進文字列が書かれた入力を解析します
type HexLineParser struct{}

// NewHexLineParser は新しいHexLineParserを作成します
func NewHexLineParser() *HexLineParser {
	return &HexLineParser{}
}

// ParseLines は各行を hex デコードします。
// 空白だけの行は読み飛ばしますが、行番号は入力どおりに数えます。
// デコードに失敗した行があれば、その行番号を持つ LineError を返します。
func (p *HexLineParser) ParseLines(lines []string) ([]models.Line, error) {
	var result []models.Line
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		data, err := bytearray.FromHex(line)
		if err != nil {
			return nil, errors.NewLineError(i+1, err)
		}
		result = append(result, models.Line{Number: i + 1, Data: data})
	}

	if len(result) == 0 {
		return nil, ErrNoInputLines
	}
	return result, nil
}
