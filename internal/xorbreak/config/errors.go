package config

import "errors"

var (
	// ErrUnknownMode は未対応のモードが指定された場合のエラー
	ErrUnknownMode = errors.New("未対応のモードです")

	// ErrUnknownEncoding は未対応の文字コードが指定された場合のエラー
	ErrUnknownEncoding = errors.New("未対応の文字コードです")

	// ErrUnknownFormat は未対応の出力形式が指定された場合のエラー
	ErrUnknownFormat = errors.New("未対応の出力形式です")
)
