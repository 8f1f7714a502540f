package employee

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

//go:generate mockgen -source=employee_id.go -destination=mock/employee_id_mock.go -package=mock
type IDGenerator interface {
	NewID() string
}

const shortIDLength = 8

// UUIDGenerator issues the first eight hex characters of a random v4 uuid.
// Short ids can collide; the Store rejects and retries duplicates.
type UUIDGenerator struct{}

func NewUUIDGenerator() UUIDGenerator {
	return UUIDGenerator{}
}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()[:shortIDLength]
}

// SequenceGenerator issues prefix + zero padded counter: e0000001, e0000002...
type SequenceGenerator struct {
	mu     sync.Mutex
	prefix string
	width  int
	next   int64
}

func NewSequenceGenerator(prefix string, width int, start int64) *SequenceGenerator {
	if start < 1 {
		start = 1
	}
	return &SequenceGenerator{prefix: prefix, width: width, next: start}
}

func (g *SequenceGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := fmt.Sprintf("%s%0*d", g.prefix, g.width, g.next)
	g.next++
	return id
}
