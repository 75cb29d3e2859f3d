package demo

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// Cities of the hover demo
var Cities = []string{"東京", "大阪", "京都", "横浜", "神戸"}

type Person struct {
	ID    string
	Name  string
	Age   int
	Email string
	City  string
}

type Member struct {
	ID   string
	Name string
	Age  int
}

// NewRand returns a random source for the demo data. A zero seed is replaced
// by the current time
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// randReader reads random bytes from a rand.Rand, so IDs follow the seed
type randReader struct {
	r *rand.Rand
}

func (rr randReader) Read(p []byte) (int, error) {
	var buf [8]byte
	for i := 0; i < len(p); i += 8 {
		binary.LittleEndian.PutUint64(buf[:], rr.r.Uint64())
		copy(p[i:], buf[:])
	}
	return len(p), nil
}

func newID(r *rand.Rand) string {
	id, err := uuid.NewRandomFromReader(randReader{r: r})
	if err != nil {
		// randReader never fails
		panic(err)
	}
	return id.String()
}

// People returns n people aged 20 to 69
func People(n int, r *rand.Rand) []Person {
	ps := make([]Person, 0, n)
	for i := 1; i <= n; i += 1 {
		ps = append(ps, Person{
			ID:    newID(r),
			Name:  fmt.Sprintf("Person %d", i),
			Age:   20 + r.IntN(50),
			Email: fmt.Sprintf("person%d@example.com", i),
			City:  Cities[r.IntN(len(Cities))],
		})
	}
	return ps
}

// Members returns n members aged 20 to 79
func Members(n int, r *rand.Rand) []Member {
	ms := make([]Member, 0, n)
	for i := 1; i <= n; i += 1 {
		ms = append(ms, Member{
			ID:   newID(r),
			Name: fmt.Sprintf("Person %d", i),
			Age:  20 + r.IntN(60),
		})
	}
	return ms
}
