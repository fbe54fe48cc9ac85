package orc

import (
	"bytes"
	"reflect"
	"testing"
)

func TestRunLengthByteWriter(t *testing.T) {
	testCases := []struct {
		input  []byte
		expect func([]byte)
	}{
		{
			input: []byte{0x44, 0x45},
			expect: func(output []byte) {
				expected := []byte{0xfe, 0x44, 0x45}
				if !reflect.DeepEqual(expected, output) {
					t.Errorf("Test failed, got %v expected %v", output, expected)
				}
			},
		},
		{
			input: []byte{0x01, 0x01, 0x01, 0x01},
			expect: func(output []byte) {
				expected := []byte{0x01, 0x01}
				if !reflect.DeepEqual(expected, output) {
					t.Errorf("Test failed, got %v expected %v", output, expected)
				}
			},
		},
		{
			input: make([]byte, 100),
			expect: func(output []byte) {
				expected := []byte{0x61, 0x00}
				if !reflect.DeepEqual(expected, output) {
					t.Errorf("Test failed, got %v expected %v", output, expected)
				}
			},
		},
	}

	for _, tc := range testCases {
		var buf bytes.Buffer
		w := NewRunLengthByteWriter(&buf)
		for i := range tc.input {
			err := w.WriteByte(tc.input[i])
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

func TestRunLengthByteWriterSplitsAtMaxRunLength(t *testing.T) {
	var buf bytes.Buffer
	w := NewRunLengthByteWriter(&buf)
	for i := 0; i < MaxRunLength+5; i++ {
		if err := w.WriteByte(0x07); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	expected := []byte{0x7f, 0x07, 0x02, 0x07}
	if !reflect.DeepEqual(expected, buf.Bytes()) {
		t.Errorf("Test failed, got %v expected %v", buf.Bytes(), expected)
	}
}
