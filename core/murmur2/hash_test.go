package murmur2

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMurmur2CF_New(t *testing.T) {
	h := New()

	m, ok := h.(*Murmur2CF)
	if !ok {
		t.Fatalf("New() did not return a *Murmur2CF, got %T", h)
	}
	assert.Empty(t, m.buf)
}

func TestMurmur2CF_Write(t *testing.T) {
	m := New().(*Murmur2CF)

	n, err := m.Write([]byte("Hello, World!\t\n\r "))
	assert.NoError(t, err)
	// Every input byte counts as written even though whitespace never
	// reaches the buffer.
	assert.Equal(t, 17, n)
	assert.Equal(t, []byte("Hello,World!"), m.buf)

	_, err = m.Write([]byte(" More data"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("Hello,World!Moredata"), m.buf)
}

func TestMurmur2CF_Sum(t *testing.T) {
	m := New().(*Murmur2CF)
	m.Write([]byte("Hello, World!"))

	sum := m.Sum(nil)
	assert.Len(t, sum, 4)
	assert.Equal(t, uint32(1961219979), binary.BigEndian.Uint32(sum))

	// Sum appends to the slice it is given.
	sum = m.Sum([]byte{1, 2})
	assert.Equal(t, []byte{1, 2}, sum[:2])
	assert.Equal(t, uint32(1961219979), binary.BigEndian.Uint32(sum[2:]))
}

func TestMurmur2CF_Sum32(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  uint32
	}{
		{"Empty", "", 1540447798},
		{"No whitespace", "HelloWorld", 1756117720},
		{"With spaces", "Hello World", 1756117720},
		{"With tab", "Hello\tWorld", 1756117720},
		{"With newline", "Hello\nWorld", 1756117720},
		{"With carriage return", "Hello\rWorld", 1756117720},
		{"Mixed whitespace", "Hello \t\n\rWorld", 1756117720},
		{"Only whitespace", " \t\n\r", 1540447798},
		{"Punctuation kept", "Hello, World!", 1961219979},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New().(*Murmur2CF)
			_, err := m.Write([]byte(tt.input))
			assert.NoError(t, err)
			assert.Equal(t, tt.want, m.Sum32())
		})
	}
}

func TestMurmur2CF_Reset(t *testing.T) {
	m := New().(*Murmur2CF)
	m.Write([]byte("Hello, World!"))
	assert.NotEmpty(t, m.buf)

	m.Reset()
	assert.Empty(t, m.buf)
}

func TestMurmur2CF_Size(t *testing.T) {
	m := New().(*Murmur2CF)
	assert.Equal(t, 4, m.Size())
	assert.Equal(t, 4, m.BlockSize())
}
