package mocks

import "fmt"

// MockLogger は出力されたメッセージを記録するロガー
type MockLogger struct {
	Debugs   []string
	Warnings []string
}

// Printf はデバッグメッセージを記録します
func (l *MockLogger) Printf(format string, a ...any) {
	l.Debugs = append(l.Debugs, fmt.Sprintf(format, a...))
}

// Warnf は警告メッセージを記録します
func (l *MockLogger) Warnf(format string, a ...any) {
	l.Warnings = append(l.Warnings, fmt.Sprintf(format, a...))
}
