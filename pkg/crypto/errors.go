package crypto

import "errors"

// ErrNoLines は解析対象の行が1つもない場合のエラー
var ErrNoLines = errors.New("crypto: no lines to analyze")
