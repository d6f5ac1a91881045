package roids

import (
	"fmt"
	"hash/fnv"

	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot contains the complete simulation state for replay checks.
// Uses primitive types only for stable serialization; fixed-point values are
// stored raw.
type Snapshot struct {
	Frame     int       `msgpack:"frame"`
	Score     int       `msgpack:"score"`
	NextSpawn int       `msgpack:"nextSpawn"`
	RNGState  [4]uint32 `msgpack:"rng"`

	Ship       ShipState       `msgpack:"ship"`
	Projectile ProjectileState `msgpack:"projectile"`
	Obstacles  []ObstacleState `msgpack:"obstacles"`
	Debris     []DebrisState   `msgpack:"debris"`

	Stats Stats `msgpack:"stats"`
}

// ShipState is the serialized ship.
type ShipState struct {
	X         int32 `msgpack:"x"`
	Y         int32 `msgpack:"y"`
	VX        int32 `msgpack:"vx"`
	VY        int32 `msgpack:"vy"`
	Angle     int32 `msgpack:"angle"`
	Thrusting bool  `msgpack:"thrusting"`
}

// ProjectileState is the serialized projectile.
type ProjectileState struct {
	X     int32 `msgpack:"x"`
	Y     int32 `msgpack:"y"`
	VX    int32 `msgpack:"vx"`
	VY    int32 `msgpack:"vy"`
	Armed bool  `msgpack:"armed"`
}

// ObstacleState is one serialized obstacle with its pool slot.
type ObstacleState struct {
	Slot       int   `msgpack:"slot"`
	X          int32 `msgpack:"x"`
	Y          int32 `msgpack:"y"`
	VX         int32 `msgpack:"vx"`
	VY         int32 `msgpack:"vy"`
	Angle      int32 `msgpack:"angle"`
	AngularVel int32 `msgpack:"angularVel"`
	Variant    int   `msgpack:"variant"`
}

// DebrisState is one serialized debris cluster with its pool slot.
// Fragments are flattened as 5 ints each: X, Y, VX, VY, Variant.
type DebrisState struct {
	Slot         int     `msgpack:"slot"`
	Angle        int32   `msgpack:"angle"`
	AngularVel   int32   `msgpack:"angularVel"`
	TTL          int     `msgpack:"ttl"`
	FragmentData []int32 `msgpack:"fragments"`
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.ship
	p := g.projectile

	obstacles := make([]ObstacleState, 0, g.obstacles.Len())
	for i, o := range g.obstacles.All() {
		obstacles = append(obstacles, ObstacleState{
			Slot:       i,
			X:          o.Pos.X.Raw(),
			Y:          o.Pos.Y.Raw(),
			VX:         o.Vel.X.Raw(),
			VY:         o.Vel.Y.Raw(),
			Angle:      o.Angle.Raw(),
			AngularVel: o.AngularVel.Raw(),
			Variant:    o.Variant,
		})
	}

	debris := make([]DebrisState, 0, g.debris.Len())
	for i, c := range g.debris.All() {
		data := make([]int32, 0, FragmentCount*5)
		for _, f := range c.Fragments {
			data = append(data,
				f.Pos.X.Raw(), f.Pos.Y.Raw(),
				f.Vel.X.Raw(), f.Vel.Y.Raw(),
				int32(f.Variant)) //#nosec G115 -- variant is 0-3
		}
		debris = append(debris, DebrisState{
			Slot:         i,
			Angle:        c.Angle.Raw(),
			AngularVel:   c.AngularVel.Raw(),
			TTL:          c.TTL,
			FragmentData: data,
		})
	}

	return Snapshot{
		Frame:     g.frame,
		Score:     g.score,
		NextSpawn: g.nextSpawn,
		RNGState:  g.rng.State(),
		Ship: ShipState{
			X:         s.Pos.X.Raw(),
			Y:         s.Pos.Y.Raw(),
			VX:        s.Vel.X.Raw(),
			VY:        s.Vel.Y.Raw(),
			Angle:     s.Angle.Raw(),
			Thrusting: s.Thrusting,
		},
		Projectile: ProjectileState{
			X:     p.Pos.X.Raw(),
			Y:     p.Pos.Y.Raw(),
			VX:    p.Vel.X.Raw(),
			VY:    p.Vel.Y.Raw(),
			Armed: p.Armed,
		},
		Obstacles: obstacles,
		Debris:    debris,
		Stats:     g.stats,
	}
}

// Encode serializes the snapshot with msgpack.
func (snap *Snapshot) Encode() ([]byte, error) {
	data, err := msgpack.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a snapshot produced by Encode.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}

// Hash returns an FNV-1a hash of the encoded snapshot for determinism testing.
// A snapshot holds only primitive fields, so an encoding failure is a bug and
// panics.
func (snap *Snapshot) Hash() uint64 {
	data, err := snap.Encode()
	if err != nil {
		panic(fmt.Sprintf("roids: encode snapshot: %v", err))
	}
	h := fnv.New64a()
	_, _ = h.Write(data)
	return h.Sum64()
}
