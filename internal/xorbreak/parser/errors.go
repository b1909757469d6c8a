package parser

import "errors"

var (
	// ErrNoInputLines は解析対象の行が1行もない場合のエラー
	ErrNoInputLines = errors.New("解析対象の行がありません")
)
