package crypto

import (
	"bytes"
	"errors"
	"testing"

	"github.com/shiroemons/go-cryptopals/pkg/bytearray"
)

func TestSingleByteXOR(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		key      byte
		expected []byte
	}{
		{
			name:     "単一バイト",
			input:    []byte{0x00},
			key:      0xFF,
			expected: []byte{0xFF},
		},
		{
			name:     "複数バイト",
			input:    []byte{0x00, 0xFF, 0xAA, 0x55},
			key:      0xFF,
			expected: []byte{0xFF, 0x00, 0x55, 0xAA},
		},
		{
			name:     "キー0x00",
			input:    []byte{0x12, 0x34, 0x56},
			key:      0x00,
			expected: []byte{0x12, 0x34, 0x56},
		},
		{
			name:     "空データ",
			input:    []byte{},
			key:      0xFF,
			expected: []byte{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := bytearray.FromBytes(tt.input)
			got := SingleByteXOR(in, tt.key)
			if !bytes.Equal(got.Slice(), tt.expected) {
				t.Errorf("SingleByteXOR() = %x, want %x", got.Slice(), tt.expected)
			}
			if !bytes.Equal(in.Slice(), tt.input) {
				t.Errorf("入力が書き換えられた: %x", in.Slice())
			}
		})
	}
}

func TestRepeatingKeyXOR(t *testing.T) {
	plain := bytearray.FromString("Burning 'em, if you ain't quick and nimble\nI go crazy when I hear a cymbal")
	want := "0b3637272a2b2e63622c2e69692a23693a2a3c6324202d623d63343c2a26226324272765272a282b2f20430a652e2c652a3124333a653e2b2027630c692b20283165286326302e27282f"

	got, err := RepeatingKeyXOR(plain, []byte("ICE"))
	if err != nil {
		t.Fatalf("RepeatingKeyXOR() error: %v", err)
	}
	if got.Hex() != want {
		t.Errorf("RepeatingKeyXOR() = %s, want %s", got.Hex(), want)
	}
}

func TestRepeatingKeyXOR_RoundTrip(t *testing.T) {
	// RepeatingKeyXOR を2回適用すると元に戻ることを確認
	original := bytearray.FromBytes([]byte{0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC, 0xDE, 0xF0})
	keys := [][]byte{{0xAB}, []byte("ICE"), []byte("a key longer than the data")}

	for _, key := range keys {
		enc, err := RepeatingKeyXOR(original, key)
		if err != nil {
			t.Fatalf("key=%q: %v", key, err)
		}
		dec, err := RepeatingKeyXOR(enc, key)
		if err != nil {
			t.Fatalf("key=%q: %v", key, err)
		}
		if !dec.Equal(original) {
			t.Errorf("key=%q: 往復後 = %x, want %x", key, dec.Slice(), original.Slice())
		}
	}
}

func TestRepeatingKeyXOR_EmptyKey(t *testing.T) {
	_, err := RepeatingKeyXOR(bytearray.FromString("data"), nil)
	if !errors.Is(err, bytearray.ErrEmptyKey) {
		t.Errorf("RepeatingKeyXOR() error = %v, want ErrEmptyKey", err)
	}
}
