package common

import (
	"bytes"
	"testing"
)

func TestWipeByteArray(t *testing.T) {
	b := []byte("secret")
	WipeByteArray(b)
	if !bytes.Equal(b, make([]byte, 6)) {
		t.Fatalf("expected zeroed slice, got %v", b)
	}
}

func TestWipeByteArray_Empty(t *testing.T) {
	// must not panic
	WipeByteArray(nil)
	WipeByteArray([]byte{})
}
