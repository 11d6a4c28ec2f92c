package pathfinding

import (
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/dungeonascend/internal/world"
)

// ReasonNoRooms is reported when a dungeon has nothing to connect.
const ReasonNoRooms = "no rooms in dungeon"

// Validation summarises whether every room and resource can be reached
// from the start tile.
type Validation struct {
	Valid               bool
	Reason              string
	Start               world.Point
	ConnectedRooms      int
	TotalRooms          int
	AccessibleResources int
	TotalResources      int
	ReachableTiles      int
}

// Validate flood-fills from start, or from the first room's center when
// start is nil, and counts the rooms and resources reached.
func Validate(d *world.Dungeon, start *world.Point) Validation {
	v := Validation{
		TotalRooms:     len(d.Rooms),
		TotalResources: len(d.Resources),
	}
	if len(d.Rooms) == 0 {
		v.Reason = ReasonNoRooms
		return v
	}

	v.Start = d.Rooms[0].Center()
	if start != nil {
		v.Start = *start
	}

	reachable := Reachable(d, v.Start)
	v.fill(d, reachable)
	return v
}

// ValidateSet counts against a reachable set computed elsewhere.
func ValidateSet(d *world.Dungeon, start world.Point, reachable mapset.Set[world.Point]) Validation {
	v := Validation{
		Start:          start,
		TotalRooms:     len(d.Rooms),
		TotalResources: len(d.Resources),
	}
	if len(d.Rooms) == 0 {
		v.Reason = ReasonNoRooms
		return v
	}
	v.fill(d, reachable)
	return v
}

func (v *Validation) fill(d *world.Dungeon, reachable mapset.Set[world.Point]) {
	v.ReachableTiles = reachable.Size()

	for _, room := range d.Rooms {
		if reachable.Has(room.Center()) {
			v.ConnectedRooms++
		}
	}
	for _, pos := range d.Resources {
		if reachable.Has(pos) {
			v.AccessibleResources++
		}
	}

	v.Valid = v.ConnectedRooms == v.TotalRooms && v.AccessibleResources == v.TotalResources

	var problems []string
	if v.ConnectedRooms != v.TotalRooms {
		problems = append(problems, fmt.Sprintf("%d of %d rooms unreachable", v.TotalRooms-v.ConnectedRooms, v.TotalRooms))
	}
	if v.AccessibleResources != v.TotalResources {
		problems = append(problems, fmt.Sprintf("%d of %d resources unreachable",
			v.TotalResources-v.AccessibleResources, v.TotalResources))
	}
	v.Reason = strings.Join(problems, "; ")
}
