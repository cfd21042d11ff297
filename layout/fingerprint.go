package layout

import (
	"encoding/binary"
	"math"

	"github.com/akmonengine/roomwalk/actor"
	"github.com/cespare/xxhash/v2"
)

// Fingerprint hashes the obstacles, in order. It identifies which layout a world
// was built from in logs.
func Fingerprint(obstacles []actor.Obstacle) uint64 {
	d := xxhash.New()
	var buf [8]byte

	for _, o := range obstacles {
		_, _ = d.WriteString(o.ID)
		// terminate the id so "ab"+"c" and "a"+"bc" differ
		_, _ = d.Write([]byte{0})

		for _, v := range [6]float64{
			o.Bounds.Min.X(), o.Bounds.Max.X(),
			o.Bounds.Min.Y(), o.Bounds.Max.Y(),
			o.Bounds.Min.Z(), o.Bounds.Max.Z(),
		} {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			_, _ = d.Write(buf[:])
		}

		if o.IsStatic {
			_, _ = d.Write([]byte{1})
		} else {
			_, _ = d.Write([]byte{0})
		}
	}

	return d.Sum64()
}
