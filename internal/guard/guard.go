// Package guard serializes mutations per entity record so at most one
// request is outstanding for any (kind, id) at a time. The lock is held
// only for the duration of the network call and is released on success and
// failure alike; retry policy belongs to the caller.
package guard

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/talentlink/marketplace/internal/lifecycle"
)

// ErrBusy is returned by Acquire when a mutation for the same key is
// already in flight. Callers must not issue the mutation and should
// surface a "still processing" state instead of retrying.
var ErrBusy = errors.New("mutation already in flight")

type Key struct {
	Kind lifecycle.Kind
	ID   uuid.UUID
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s", k.Kind, k.ID)
}

// Token proves ownership of an acquired lock. Tokens are single-use:
// releasing a stale token is a no-op.
type Token struct {
	key Key
	seq uint64
}

type Guard struct {
	mu    sync.Mutex
	seq   uint64
	inUse map[Key]uint64
}

func New() *Guard {
	return &Guard{inUse: make(map[Key]uint64)}
}

// Acquire takes the per-record lock or reports ErrBusy.
func (g *Guard) Acquire(key Key) (Token, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, held := g.inUse[key]; held {
		return Token{}, ErrBusy
	}

	g.seq++
	g.inUse[key] = g.seq
	return Token{key: key, seq: g.seq}, nil
}

// Release returns the lock. Only the token handed out by the matching
// Acquire releases it; anything else is ignored.
func (g *Guard) Release(token Token) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if seq, held := g.inUse[token.key]; held && seq == token.seq {
		delete(g.inUse, token.key)
	}
}

// Busy reports whether a mutation for the key is currently outstanding.
func (g *Guard) Busy(key Key) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, held := g.inUse[key]
	return held
}
