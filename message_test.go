package canmsg

import (
	"bytes"
	"errors"
	"testing"
)

var testID = ShortID(1)

func TestNew_DataEmpty(t *testing.T) {
	m, err := New(testID, []byte{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if m.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", m.Len())
	}
	if len(m.Data()) != 0 {
		t.Fatalf("Data() = %v, want empty", m.Data())
	}
}

func TestNew_DataFull(t *testing.T) {
	want := []byte{8, 7, 6, 5, 4, 3, 2, 1}
	m, err := New(testID, want)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if m.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", m.Len())
	}
	if !bytes.Equal(m.Data(), want) {
		t.Fatalf("Data() = %v, want %v", m.Data(), want)
	}
}

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		id   ID
		data []byte
		want error
	}{
		{"data too long", testID, []byte{8, 7, 6, 5, 4, 3, 2, 1, 0}, ErrDataLength},
		{"extended id too wide", ExtendedID(0x20000000), nil, ErrIDLength},
		{"short id too wide", ShortID(0x800), []byte{1}, ErrIDLength},
		{"both too long reports data", ExtendedID(0x20000000), make([]byte, 9), ErrDataLength},
	}
	for _, tc := range cases {
		_, err := New(tc.id, tc.data)
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: error = %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestNew_ConvenienceConstructors(t *testing.T) {
	s, err := WithShortID(0x123, []byte{1})
	if err != nil {
		t.Fatalf("WithShortID: %v", err)
	}
	if s.ID().IsExtended() || s.ID().Widen() != 0x123 {
		t.Fatalf("WithShortID id = %v", s.ID())
	}
	e, err := WithExtendedID(0x1ABCDEFF, []byte{1})
	if err != nil {
		t.Fatalf("WithExtendedID: %v", err)
	}
	if !e.ID().IsExtended() || e.ID().Widen() != 0x1ABCDEFF {
		t.Fatalf("WithExtendedID id = %v", e.ID())
	}
	if _, err := WithShortID(0x800, nil); !errors.Is(err, ErrIDLength) {
		t.Fatalf("WithShortID(0x800) error = %v", err)
	}
	if _, err := WithExtendedID(0x20000000, nil); !errors.Is(err, ErrIDLength) {
		t.Fatalf("WithExtendedID(0x20000000) error = %v", err)
	}
}

func TestNew_CopiesPayload(t *testing.T) {
	src := []byte{1, 2, 3}
	m := MustNew(testID, src)
	src[0] = 99
	if m.Data()[0] != 1 {
		t.Fatalf("message aliases caller buffer")
	}
	out := m.Data()
	out[1] = 99
	if m.Data()[1] != 2 {
		t.Fatalf("Data() must return a copy")
	}
}

func TestSetLen_GrowZeroes(t *testing.T) {
	m := MustNew(testID, []byte{1, 2, 3})
	if err := m.SetLen(5); err != nil {
		t.Fatalf("SetLen(5): %v", err)
	}
	if want := []byte{1, 2, 3, 0, 0}; !bytes.Equal(m.Data(), want) {
		t.Fatalf("Data() = %v, want %v", m.Data(), want)
	}
	if err := m.SetLen(8); err != nil {
		t.Fatalf("SetLen(8): %v", err)
	}
	if want := []byte{1, 2, 3, 0, 0, 0, 0, 0}; !bytes.Equal(m.Data(), want) {
		t.Fatalf("Data() = %v, want %v", m.Data(), want)
	}
}

func TestSetLen_TooLongLeavesMessageUnchanged(t *testing.T) {
	m := MustNew(testID, []byte{1, 2, 3})
	if err := m.SetLen(9); !errors.Is(err, ErrDataLength) {
		t.Fatalf("SetLen(9) error = %v", err)
	}
	if m.Len() != 3 || !bytes.Equal(m.Data(), []byte{1, 2, 3}) {
		t.Fatalf("message changed: %v", m)
	}
}

func TestSetLen_ShrinkKeepsStaleBytesHidden(t *testing.T) {
	m := MustNew(testID, []byte{1, 2, 3, 4})
	if err := m.SetLen(2); err != nil {
		t.Fatalf("SetLen(2): %v", err)
	}
	if !bytes.Equal(m.Data(), []byte{1, 2}) {
		t.Fatalf("Data() = %v", m.Data())
	}
	if m.data[2] != 3 || m.data[3] != 4 {
		t.Fatalf("shrink should not clear backing bytes, got %v", m.data)
	}
	if err := m.SetLen(4); err != nil {
		t.Fatalf("SetLen(4): %v", err)
	}
	if !bytes.Equal(m.Data(), []byte{1, 2, 0, 0}) {
		t.Fatalf("growth should zero exposed bytes, got %v", m.Data())
	}
}

func TestDataMut_WritesStayInWindow(t *testing.T) {
	m := MustNew(testID, []byte{1, 2, 3})
	d := m.DataMut()
	d[0] = 0xAA
	if m.Data()[0] != 0xAA {
		t.Fatalf("DataMut write not visible")
	}
	if cap(d) != 3 {
		t.Fatalf("cap(DataMut()) = %d, want 3", cap(d))
	}
	d = append(d, 0xFF)
	d[1] = 0xBB
	if m.Data()[1] != 2 {
		t.Fatalf("append must reallocate away from the message buffer")
	}
	for i := 3; i < MaxDataLen; i++ {
		if m.data[i] != 0 {
			t.Fatalf("tail byte %d = %#x, want 0", i, m.data[i])
		}
	}
}

func TestMessage_Equal(t *testing.T) {
	a := MustNew(ShortID(5), []byte{1, 2})
	b := MustNew(ExtendedID(5), []byte{1, 2})
	if !a.Equal(b) {
		t.Fatalf("cross-width ids with same payload should be equal")
	}
	c := MustNew(ShortID(5), []byte{1, 3})
	if a.Equal(c) {
		t.Fatalf("different payloads should differ")
	}
	d := a
	_ = d.SetLen(1)
	_ = d.SetLen(2)
	if a.Equal(d) {
		t.Fatalf("re-zeroed payload should differ")
	}
}

func TestMessage_EqualSeesHiddenBytes(t *testing.T) {
	shrunk := MustNew(testID, []byte{1, 2, 3})
	if err := shrunk.SetLen(1); err != nil {
		t.Fatalf("SetLen(1): %v", err)
	}
	fresh := MustNew(testID, []byte{1})
	if !bytes.Equal(shrunk.Data(), fresh.Data()) {
		t.Fatalf("visible payloads should match: %v vs %v", shrunk.Data(), fresh.Data())
	}
	if shrunk.Equal(fresh) || fresh.Equal(shrunk) {
		t.Fatalf("stale hidden bytes should make messages unequal")
	}
	if err := shrunk.SetLen(3); err != nil {
		t.Fatalf("SetLen(3): %v", err)
	}
	_ = shrunk.SetLen(1)
	if !shrunk.Equal(fresh) {
		t.Fatalf("re-zeroed buffer should equal a fresh message")
	}
}

func TestMessage_ZeroValue(t *testing.T) {
	var m Message
	if m.Len() != 0 || !m.ID().IsValid() || m.ID().IsExtended() {
		t.Fatalf("zero message: %+v", m)
	}
}

func TestMustNew_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r != ErrDataLength {
			t.Fatalf("recover() = %v, want ErrDataLength", r)
		}
	}()
	_ = MustNew(testID, make([]byte, 9))
}

func TestRangeError_Messages(t *testing.T) {
	if ErrDataLength.Error() == ErrIDLength.Error() {
		t.Fatalf("error kinds must be distinguishable")
	}
	if RangeError(0).Error() != "canmsg: range error" {
		t.Fatalf("unexpected fallback message %q", RangeError(0).Error())
	}
}
