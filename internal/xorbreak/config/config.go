// Package config はxorbreakコマンドの設定管理を行います
package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/sirupsen/logrus"
)

const Version = "0.1.0"

// モード
const (
	ModeHex2Base64   = "hex2b64"
	ModeFixedXOR     = "fixed-xor"
	ModeSingleByte   = "single-byte"
	ModeDetect       = "detect"
	ModeRepeatingKey = "repeating-key"
)

// 文字コード
const (
	EncodingUTF8     = "utf-8"
	EncodingShiftJIS = "shift-jis"
)

// 出力形式
const (
	FormatText = "text"
	FormatJSON = "json"
)

var (
	modes     = []string{ModeHex2Base64, ModeFixedXOR, ModeSingleByte, ModeDetect, ModeRepeatingKey}
	encodings = []string{EncodingUTF8, EncodingShiftJIS}
	formats   = []string{FormatText, FormatJSON}
)

// Config はアプリケーションの設定を保持します
type Config struct {
	Mode        string
	Input       string
	With        string
	Key         string
	File        string
	Encoding    string
	Format      string
	OutputPath  string
	DebugMode   bool
	ShowVersion bool
}

// ParseFlags はコマンドライン引数を解析して設定を返します
func ParseFlags() *Config {
	cfg, err := Parse(os.Args[0], os.Args[1:], flag.ExitOnError)
	if err != nil {
		// ExitOnError ではここに来ない
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return cfg
}

// Parse は args を解析して設定を返します
func Parse(name string, args []string, handling flag.ErrorHandling) (*Config, error) {
	config := &Config{}
	fs := flag.NewFlagSet(name, handling)

	// カスタムUsage関数を設定（ダブルハイフン表示）
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage of %s:\n", name)
		fmt.Fprintln(out, "  --mode, -m string")
		fmt.Fprintln(out, "    \thex2b64 | fixed-xor | single-byte | detect | repeating-key")
		fmt.Fprintln(out, "  --input, -i string")
		fmt.Fprintln(out, "    \thex input (hex2b64, fixed-xor, single-byte) or plaintext (repeating-key)")
		fmt.Fprintln(out, "  --with, -w string")
		fmt.Fprintln(out, "    \tsecond hex operand for fixed-xor")
		fmt.Fprintln(out, "  --key, -k string")
		fmt.Fprintln(out, "    \tkey for repeating-key")
		fmt.Fprintln(out, "  --file, -f string")
		fmt.Fprintln(out, "    \tinput file (hex lines for detect, plaintext for repeating-key)")
		fmt.Fprintln(out, "  --encoding, -e string")
		fmt.Fprintln(out, "    \ttext encoding of recovered plaintext: utf-8 | shift-jis (default \"utf-8\")")
		fmt.Fprintln(out, "  --format string")
		fmt.Fprintln(out, "    \toutput format: text | json (default \"text\")")
		fmt.Fprintln(out, "  -o string")
		fmt.Fprintln(out, "    \twrite the result to this file as well")
		fmt.Fprintln(out, "  --debug")
		fmt.Fprintln(out, "    \tenable debug output")
		fmt.Fprintln(out, "  -d\tenable debug output (shorthand)")
		fmt.Fprintln(out, "  --version")
		fmt.Fprintln(out, "    \tshow version information")
		fmt.Fprintln(out, "  -v\tshow version information (shorthand)")
	}

	// モード
	fs.StringVar(&config.Mode, "mode", "", "hex2b64 | fixed-xor | single-byte | detect | repeating-key")
	fs.StringVar(&config.Mode, "m", "", "mode (shorthand)")

	// 入力
	fs.StringVar(&config.Input, "input", "", "hex input or plaintext")
	fs.StringVar(&config.Input, "i", "", "hex input or plaintext (shorthand)")
	fs.StringVar(&config.With, "with", "", "second hex operand for fixed-xor")
	fs.StringVar(&config.With, "w", "", "second hex operand for fixed-xor (shorthand)")
	fs.StringVar(&config.Key, "key", "", "key for repeating-key")
	fs.StringVar(&config.Key, "k", "", "key for repeating-key (shorthand)")
	fs.StringVar(&config.File, "file", "", "input file")
	fs.StringVar(&config.File, "f", "", "input file (shorthand)")

	// 出力
	fs.StringVar(&config.Encoding, "encoding", EncodingUTF8, "text encoding of recovered plaintext")
	fs.StringVar(&config.Encoding, "e", EncodingUTF8, "text encoding of recovered plaintext (shorthand)")
	fs.StringVar(&config.Format, "format", FormatText, "output format: text | json")
	fs.StringVar(&config.OutputPath, "o", "", "write the result to this file as well")

	// デバッグモード
	fs.BoolVar(&config.DebugMode, "debug", false, "enable debug output")
	fs.BoolVar(&config.DebugMode, "d", false, "enable debug output (shorthand)")

	// バージョン表示
	fs.BoolVar(&config.ShowVersion, "version", false, "show version information")
	fs.BoolVar(&config.ShowVersion, "v", false, "show version information (shorthand)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate は設定値の組み合わせを検証します
func (c *Config) Validate() error {
	if !slices.Contains(modes, c.Mode) {
		return fmt.Errorf("%w: %q", ErrUnknownMode, c.Mode)
	}
	if !slices.Contains(encodings, c.Encoding) {
		return fmt.Errorf("%w: %q", ErrUnknownEncoding, c.Encoding)
	}
	if !slices.Contains(formats, c.Format) {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format)
	}
	return nil
}

// HandleVersion はバージョン表示を処理します
func HandleVersion(showVersion bool) {
	if showVersion {
		fmt.Printf("xorbreak version %s\n", Version)
		os.Exit(0)
	}
}

// DebugLogger はデバッグ出力を管理します
type DebugLogger struct {
	enabled bool
	logger  *logrus.Logger
}

// NewDebugLogger は標準エラー出力に書く新しいDebugLoggerを作成します
func NewDebugLogger(enabled bool) *DebugLogger {
	return NewDebugLoggerWithOutput(os.Stderr, enabled)
}

// NewDebugLoggerWithOutput は w に書く新しいDebugLoggerを作成します
func NewDebugLoggerWithOutput(w io.Writer, enabled bool) *DebugLogger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if enabled {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}
	return &DebugLogger{enabled: enabled, logger: logger}
}

// Printf はデバッグモードが有効な場合のみメッセージを表示します
func (d *DebugLogger) Printf(format string, a ...any) {
	if d.enabled {
		d.logger.Debugf(format, a...)
	}
}

// Warnf は警告メッセージを表示します
func (d *DebugLogger) Warnf(format string, a ...any) {
	d.logger.Warnf(format, a...)
}
