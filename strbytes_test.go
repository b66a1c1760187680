// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package corert

import "testing"

func TestStringASCIIChoosesKind8(t *testing.T) {
	rt := InitRuntime()
	v := newString(rt, "hello")
	sv := asString(v)
	if sv.Reserved != StringKind8 {
		t.Fatalf("expected StringKind8 for ASCII text, got %v", sv.Reserved)
	}
	if !sv.Boolean {
		t.Fatal("expected ASCII flag set for ASCII-only text")
	}
	if StringGo(v) != "hello" {
		t.Fatalf("StringGo = %q, want %q", StringGo(v), "hello")
	}
}

func TestStringWideCodePointChoosesKind32(t *testing.T) {
	rt := InitRuntime()
	v := newString(rt, "a\U0001F600b") // contains an emoji past the BMP
	sv := asString(v)
	if sv.Reserved != StringKind32 {
		t.Fatalf("expected StringKind32 for a code point past the BMP, got %v", sv.Reserved)
	}
	if StringGo(v) != "a\U0001F600b" {
		t.Fatalf("round trip mismatch: got %q", StringGo(v))
	}
}

func TestStringBMPChoosesKind16(t *testing.T) {
	rt := InitRuntime()
	v := newString(rt, "café中") // é (U+00E9) plus a CJK character
	sv := asString(v)
	if sv.Reserved != StringKind16 {
		t.Fatalf("expected StringKind16, got %v", sv.Reserved)
	}
	if StringGo(v) != "café中" {
		t.Fatalf("round trip mismatch: got %q", StringGo(v))
	}
}

func TestStringLenCountsCodePointsNotBytes(t *testing.T) {
	rt := InitRuntime()
	v := newString(rt, "中文") // two CJK characters, 6 UTF-8 bytes
	if StringLen(v) != 2 {
		t.Fatalf("StringLen = %d, want 2", StringLen(v))
	}
}

func TestStringCachedHashStable(t *testing.T) {
	rt := InitRuntime()
	v := newString(rt, "repeatable")
	h1 := stringCachedHash(rt, v)
	h2 := stringCachedHash(rt, v)
	if h1 != h2 {
		t.Fatalf("cached hash changed between calls: %x != %x", h1, h2)
	}
}

func TestBytesRoundTrip(t *testing.T) {
	rt := InitRuntime()
	data := []byte{0x00, 0x01, 0xff, 0x7f}
	v := newBytes(rt, data)
	if BytesLen(v) != len(data) {
		t.Fatalf("BytesLen = %d, want %d", BytesLen(v), len(data))
	}
	got := BytesGo(v)
	for i := range data {
		if got[i] != data[i] {
			t.Fatalf("byte %d: got %x, want %x", i, got[i], data[i])
		}
	}
}

func TestEmptyBytes(t *testing.T) {
	rt := InitRuntime()
	v := newBytes(rt, nil)
	if BytesLen(v) != 0 {
		t.Fatalf("BytesLen of empty bytes = %d, want 0", BytesLen(v))
	}
}
