package report

import "errors"

var (
	// ErrBuildJSON はJSONの生成に失敗した場合のエラー
	ErrBuildJSON = errors.New("JSONの生成に失敗しました")
)
