package orc

import (
	"bytes"
	"reflect"
	"testing"
)

func TestBooleanWriter(t *testing.T) {
	testCases := []struct {
		input  []bool
		expect func([]byte)
	}{
		{
			input: []bool{true, false, false, false, false, false, false, false},
			expect: func(output []byte) {
				expected := []byte{0xff, 0x80}
				if !reflect.DeepEqual(expected, output) {
					t.Errorf("Test failed, expected %v to equal %v", output, expected)
				}
			},
		},
	}

	for _, tc := range testCases {
		var buf bytes.Buffer
		w := NewBooleanWriter(&buf)
		for i := range tc.input {
			err := w.WriteBool(tc.input[i])
			if err != nil {
				t.Fatal(err)
			}
		}
		err := w.Close()
		if err != nil {
			t.Fatal(err)
		}
		tc.expect(buf.Bytes())
	}

}

func TestBooleanWriterPacksEightPerByte(t *testing.T) {
	var buf bytes.Buffer
	w := NewBooleanWriter(&buf)
	input := []bool{true, true, false, true, false, false, true, false, true, true}
	for _, b := range input {
		if err := w.WriteBool(b); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	// control byte -2 (literal run of 2), then the two packed bytes: the
	// first 8 bools and the remaining 2 left-aligned with trailing zeros.
	expected := []byte{0xfe, 0b11010010, 0b11000000}
	if !reflect.DeepEqual(expected, buf.Bytes()) {
		t.Errorf("Test failed, got %08b expected %08b", buf.Bytes(), expected)
	}
}
