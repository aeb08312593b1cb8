package chip8

import (
	"math/rand"
	"time"
)

// RandByter produces the random bytes consumed by the CXKK opcode. The VM
// installs a seeded math/rand source; tests inject a scripted sequence to
// make CXKK deterministic.
type RandByter interface {
	RandByte() byte
}

type mathRand struct {
	r *rand.Rand
}

func newMathRand() *mathRand {
	return &mathRand{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (m *mathRand) RandByte() byte {
	return byte(m.r.Intn(256))
}
