package ecs

import "strconv"

// Entity identifies a logical object inside one world state. Ids are only
// meaningful for the world state that issued them.
type Entity uint64

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e), 10)
}
