package tilemap

import (
	"cmp"
	"fmt"
	"io"
	"log"
	"runtime"
	"slices"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"
)

const (
	// VisibilityMargin is how many chunks are kept loaded past the edge of a
	// viewport on every side.
	VisibilityMargin = 4
	// DefaultCacheSize is the number of evicted grids kept for reuse.
	DefaultCacheSize = 256
)

// Viewport is what one camera sees.
type Viewport struct {
	// Center is the camera position in world units.
	Center mgl64.Vec2
	// Size is the projection extent in screen pixels.
	Size mgl64.Vec2
	// Scale is world units per screen pixel.
	Scale float64
}

// Rect returns the world rectangle covered by v.
func (v Viewport) Rect() Rect {
	scale := v.Scale
	if scale <= 0 {
		scale = 1
	}
	half := v.Size.Mul(scale / 2)
	return Rect{Min: v.Center.Sub(half), Max: v.Center.Add(half)}
}

// ViewportID distinguishes the viewports sharing one Manager.
type ViewportID int

// ChunkObserver is notified when chunks enter or leave the live set. Both
// calls happen on the goroutine driving the Manager.
type ChunkObserver interface {
	ChunkLoaded(c *Chunk)
	ChunkEvicted(c *Chunk)
}

type Config struct {
	Generate GenerateConf
	Refine   RefineConf
	// Margin overrides VisibilityMargin when positive.
	Margin int
	// MaxLoadsPerStep caps the chunks generated per step. Zero means no cap:
	// every visible chunk is loaded before the step returns.
	MaxLoadsPerStep int
	// CacheSize is the number of evicted grids kept for reuse. Zero selects
	// DefaultCacheSize, negative disables the cache.
	CacheSize int
	// Workers bounds parallel generation. Zero selects GOMAXPROCS.
	Workers  int
	Observer ChunkObserver
	Logger   *log.Logger
}

// StepStats describes one visibility update.
type StepStats struct {
	Visible int
	Loaded  int
	Reused  int
	Evicted int
	Pending int
	Elapsed time.Duration
}

func (s StepStats) String() string {
	return fmt.Sprintf("visible=%d loaded=%d reused=%d evicted=%d pending=%d in %s",
		s.Visible, s.Loaded, s.Reused, s.Evicted, s.Pending, s.Elapsed)
}

// chunkRange is an inclusive rectangle of chunk coordinates.
type chunkRange struct {
	Min, Max ChunkID
}

func (r chunkRange) center() mgl64.Vec2 {
	return mgl64.Vec2{float64(r.Min.X+r.Max.X) / 2, float64(r.Min.Y+r.Max.Y) / 2}
}

// Manager owns the live chunk set. It loads chunks that become visible from
// any viewport and evicts chunks no viewport can see. A Manager is not safe
// for concurrent use; drive it from the game loop.
type Manager struct {
	conf    Config
	field   *NoiseField
	chunks  map[ChunkID]*Chunk
	views   map[ViewportID]chunkRange
	pending map[ChunkID]struct{}
	cache   *lru.Cache[ChunkID, *Grid]
	log     *log.Logger
}

func NewManager(conf Config) (*Manager, error) {
	if conf.Margin <= 0 {
		conf.Margin = VisibilityMargin
	}
	if conf.Workers <= 0 {
		conf.Workers = runtime.GOMAXPROCS(0)
	}
	if conf.CacheSize == 0 {
		conf.CacheSize = DefaultCacheSize
	}

	m := &Manager{
		conf:    conf,
		field:   NewNoiseField(conf.Generate),
		chunks:  make(map[ChunkID]*Chunk, 256),
		views:   make(map[ViewportID]chunkRange),
		pending: make(map[ChunkID]struct{}),
		log:     conf.Logger,
	}
	if m.log == nil {
		m.log = log.New(io.Discard, "", 0)
	}
	if conf.CacheSize > 0 {
		cache, err := lru.New[ChunkID, *Grid](conf.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("chunk cache: %w", err)
		}
		m.cache = cache
	}
	return m, nil
}

// VisibleRange returns the inclusive chunk range that must be loaded for v,
// margin included.
func (m *Manager) VisibleRange(v Viewport) (lo, hi ChunkID) {
	r := visibleRange(v, m.conf.Margin)
	return r.Min, r.Max
}

func visibleRange(v Viewport, margin int) chunkRange {
	rect := v.Rect()
	lo := ChunkFromWorld(rect.Min)
	hi := ChunkFromWorld(rect.Max)
	return chunkRange{
		Min: ChunkID{X: lo.X - margin, Y: lo.Y - margin},
		Max: ChunkID{X: hi.X + margin, Y: hi.Y + margin},
	}
}

// UpdateVisibility records what viewport id sees and brings the live set in
// line with all viewports: missing chunks are generated, chunks no viewport
// covers are evicted.
func (m *Manager) UpdateVisibility(id ViewportID, v Viewport) StepStats {
	m.views[id] = visibleRange(v, m.conf.Margin)
	return m.reconcile()
}

// RemoveViewport forgets viewport id and evicts what only it could see.
func (m *Manager) RemoveViewport(id ViewportID) StepStats {
	delete(m.views, id)
	return m.reconcile()
}

// Reconfigure replaces the generation and refinement settings. Every live
// chunk is dropped and regenerated, and cached grids are discarded.
func (m *Manager) Reconfigure(gen GenerateConf, refine RefineConf) StepStats {
	m.conf.Generate = gen
	m.conf.Refine = refine
	m.field = NewNoiseField(gen)
	if m.cache != nil {
		m.cache.Purge()
	}
	for id, c := range m.chunks {
		m.evict(id, c, false)
	}
	m.log.Printf("tilemap: reconfigured seed=%#x scale=%.2f noise=%s refine=%d",
		gen.Seed, gen.ContinentScale, gen.Noise, refine.MaxPasses)
	return m.reconcile()
}

// GenerateConf returns the current generation settings.
func (m *Manager) GenerateConf() GenerateConf {
	return m.conf.Generate
}

func (m *Manager) RefineConf() RefineConf {
	return m.conf.Refine
}

func (m *Manager) reconcile() StepStats {
	start := time.Now()
	var stats StepStats

	want := make(map[ChunkID]struct{})
	for _, r := range m.views {
		for x := r.Min.X; x <= r.Max.X; x++ {
			for y := r.Min.Y; y <= r.Max.Y; y++ {
				want[ChunkID{X: x, Y: y}] = struct{}{}
			}
		}
	}
	stats.Visible = len(want)

	var missing []ChunkID
	for id := range want {
		if _, ok := m.chunks[id]; !ok {
			missing = append(missing, id)
		}
	}
	m.sortByDistance(missing)

	clear(m.pending)
	if limit := m.conf.MaxLoadsPerStep; limit > 0 && len(missing) > limit {
		for _, id := range missing[limit:] {
			m.pending[id] = struct{}{}
		}
		missing = missing[:limit]
	}
	stats.Pending = len(m.pending)

	loaded, reused := m.load(missing)
	for _, c := range loaded {
		m.chunks[c.ID] = c
		if m.conf.Observer != nil {
			m.conf.Observer.ChunkLoaded(c)
		}
	}
	stats.Loaded = len(loaded)
	stats.Reused = reused

	for id, c := range m.chunks {
		if _, ok := want[id]; ok {
			continue
		}
		m.evict(id, c, true)
		stats.Evicted++
	}

	stats.Elapsed = time.Since(start)
	if stats.Loaded > 0 || stats.Evicted > 0 {
		m.log.Printf("tilemap: %s", stats)
	}
	return stats
}

// sortByDistance orders ids nearest-first to any viewport center so a load
// budget fills the screen from the middle out.
func (m *Manager) sortByDistance(ids []ChunkID) {
	if len(m.views) == 0 {
		return
	}
	centers := make([]mgl64.Vec2, 0, len(m.views))
	for _, r := range m.views {
		centers = append(centers, r.center())
	}
	dist := func(id ChunkID) float64 {
		p := mgl64.Vec2{float64(id.X), float64(id.Y)}
		best := -1.0
		for _, c := range centers {
			d := p.Sub(c)
			if l := d.Dot(d); best < 0 || l < best {
				best = l
			}
		}
		return best
	}
	slices.SortFunc(ids, func(a, b ChunkID) int {
		if c := cmp.Compare(dist(a), dist(b)); c != 0 {
			return c
		}
		if c := cmp.Compare(a.X, b.X); c != 0 {
			return c
		}
		return cmp.Compare(a.Y, b.Y)
	})
}

// load builds chunks for ids, taking grids from the cache where possible
// and generating the rest in parallel. Each task only writes its own grid.
func (m *Manager) load(ids []ChunkID) ([]*Chunk, int) {
	chunks := make([]*Chunk, len(ids))
	reused := 0

	var g errgroup.Group
	g.SetLimit(m.conf.Workers)
	for i, id := range ids {
		c := newChunk(id)
		chunks[i] = c

		if m.cache != nil {
			if grid, ok := m.cache.Get(id); ok {
				m.cache.Remove(id)
				c.grid = grid
				reused++
				continue
			}
		}

		id := id // per-iteration copy; go.mod targets go 1.21 loop semantics
		field, gen, refine := m.field, m.conf.Generate, m.conf.Refine
		g.Go(func() error {
			GenerateInto(field, gen, id, c.grid)
			if refine.MaxPasses > 0 {
				Refine(c.grid, refine)
			}
			return nil
		})
	}
	_ = g.Wait()

	return chunks, reused
}

func (m *Manager) evict(id ChunkID, c *Chunk, keep bool) {
	delete(m.chunks, id)
	if m.conf.Observer != nil {
		m.conf.Observer.ChunkEvicted(c)
	}
	// Edits are not persisted: an edited chunk comes back as generated.
	if keep && !c.edited && m.cache != nil {
		m.cache.Add(id, c.grid)
	}
}

// Chunk returns the live chunk id.
func (m *Manager) Chunk(id ChunkID) (*Chunk, bool) {
	c, ok := m.chunks[id]
	return c, ok
}

// Len returns the number of live chunks.
func (m *Manager) Len() int {
	return len(m.chunks)
}

// Loaded returns the ids of all live chunks, sorted by x then y.
func (m *Manager) Loaded() []ChunkID {
	ids := make([]ChunkID, 0, len(m.chunks))
	for id := range m.chunks {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b ChunkID) int {
		if c := cmp.Compare(a.X, b.X); c != 0 {
			return c
		}
		return cmp.Compare(a.Y, b.Y)
	})
	return ids
}

// Pending returns how many visible chunks still wait for a load budget.
func (m *Manager) Pending() int {
	return len(m.pending)
}

// Each calls fn for every live chunk in no particular order.
func (m *Manager) Each(fn func(c *Chunk)) {
	for _, c := range m.chunks {
		fn(c)
	}
}

// TileAt returns the tile under world point p, if its chunk is loaded.
func (m *Manager) TileAt(p mgl64.Vec2) (Tile, bool) {
	id, pos := LocalFromWorld(p)
	c, ok := m.chunks[id]
	if !ok {
		return 0, false
	}
	return c.Get(pos)
}
