package murmur2

import (
	"encoding/binary"
	"hash"

	"github.com/aviddiviner/go-murmur"
)

// Murmur2CF implements the MurmurHash2 variant CurseForge uses for file
// fingerprints: whitespace bytes (tab, LF, CR, space) are stripped from the
// input before hashing with seed 1.
type Murmur2CF struct {
	buf []byte
}

// New returns a hash.Hash computing the whitespace-normalized murmur2 digest.
func New() hash.Hash {
	return &Murmur2CF{}
}

func (m *Murmur2CF) Write(p []byte) (n int, err error) {
	for _, b := range p {
		switch b {
		case 9, 10, 13, 32:
		default:
			m.buf = append(m.buf, b)
		}
	}
	return len(p), nil
}

func (m *Murmur2CF) Sum(b []byte) []byte {
	sum := make([]byte, 4)
	binary.BigEndian.PutUint32(sum, m.Sum32())
	return append(b, sum...)
}

func (m *Murmur2CF) Sum32() uint32 {
	return murmur.MurmurHash2(m.buf, 1)
}

func (m *Murmur2CF) Reset() {
	m.buf = nil
}

func (m *Murmur2CF) Size() int {
	return 4
}

func (m *Murmur2CF) BlockSize() int {
	return 4
}
