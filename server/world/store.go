package world

import (
	"slices"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/terrastream/terra/server/block"
	"github.com/terrastream/terra/server/block/cube"
	"github.com/terrastream/terra/server/world/chunk"
)

// Store holds the resident chunks of a world along with the positions that are queued for, or undergoing,
// generation. A single mutex guards both, and it is only ever held for point operations: never while a
// chunk is generated or meshed.
type Store struct {
	mu      sync.Mutex
	chunks  map[ChunkPos]*chunk.Chunk
	pending map[ChunkPos]struct{}
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		chunks:  make(map[ChunkPos]*chunk.Chunk),
		pending: make(map[ChunkPos]struct{}),
	}
}

// Entry is a resident chunk together with its position.
type Entry struct {
	Pos   ChunkPos
	Chunk *chunk.Chunk
}

// Chunk returns the resident chunk at the position passed.
func (s *Store) Chunk(pos ChunkPos) (*chunk.Chunk, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.chunks[pos]
	return c, ok
}

// Resident reports if a chunk is currently stored at the position passed.
func (s *Store) Resident(pos ChunkPos) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.chunks[pos]
	return ok
}

// Pending reports if the position is queued for or undergoing generation.
func (s *Store) Pending(pos ChunkPos) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[pos]
	return ok
}

// Len returns the amount of resident chunks.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.chunks)
}

// PendingLen returns the amount of positions queued for or undergoing generation.
func (s *Store) PendingLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Positions returns the positions of all resident chunks, sorted by ChunkPos.Compare.
func (s *Store) Positions() []ChunkPos {
	s.mu.Lock()
	positions := make([]ChunkPos, 0, len(s.chunks))
	for pos := range s.chunks {
		positions = append(positions, pos)
	}
	s.mu.Unlock()

	slices.SortFunc(positions, ChunkPos.Compare)
	return positions
}

// Snapshot returns every resident chunk with its position, sorted by position. The chunks themselves are
// shared, not copied: committed chunks are never written to.
func (s *Store) Snapshot() []Entry {
	s.mu.Lock()
	entries := make([]Entry, 0, len(s.chunks))
	for pos, c := range s.chunks {
		entries = append(entries, Entry{Pos: pos, Chunk: c})
	}
	s.mu.Unlock()

	slices.SortFunc(entries, func(a, b Entry) int { return a.Pos.Compare(b.Pos) })
	return entries
}

// Insert stores a chunk at the position passed, replacing any chunk already there.
func (s *Store) Insert(pos ChunkPos, c *chunk.Chunk) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chunks[pos] = c
}

// Remove removes the chunk at the position passed and returns it.
func (s *Store) Remove(pos ChunkPos) (*chunk.Chunk, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.chunks[pos]
	if ok {
		delete(s.chunks, pos)
	}
	return c, ok
}

// markPending marks the position as pending unless it is already resident or pending. It returns true if
// the caller now owns the generation of the position.
func (s *Store) markPending(pos ChunkPos) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.chunks[pos]; ok {
		return false
	}
	if _, ok := s.pending[pos]; ok {
		return false
	}
	s.pending[pos] = struct{}{}
	return true
}

// clearPending removes the pending mark of the position without storing a chunk.
func (s *Store) clearPending(pos ChunkPos) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, pos)
}

// commit stores a freshly generated chunk and clears the pending mark of its position in one step.
func (s *Store) commit(pos ChunkPos, c *chunk.Chunk) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, pos)
	s.chunks[pos] = c
}

// Voxel returns the kind of the voxel at the world position passed. Voxels in chunks that are not resident
// read as air.
func (s *Store) Voxel(p cube.Pos) block.Kind {
	cp, local := chunkPosFromBlockPos(p)
	c, ok := s.Chunk(cp)
	if !ok {
		return block.Air
	}
	return c.Block(local[0], local[1], local[2])
}

// QueryVoxel returns the kind of the voxel containing the world space point passed.
func (s *Store) QueryVoxel(p mgl64.Vec3) block.Kind {
	return s.Voxel(cube.PosFromVec3(p))
}
