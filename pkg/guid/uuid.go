package guid

import (
	uuid "github.com/satori/go.uuid"
)

// UUID returns g in RFC 4122 byte order.
// The first three groups are byte-swapped, the last eight bytes are shared.
func (g GUID) UUID() (u uuid.UUID) {
	u[0], u[1], u[2], u[3] = g[3], g[2], g[1], g[0]
	u[4], u[5] = g[5], g[4]
	u[6], u[7] = g[7], g[6]
	copy(u[8:], g[8:])
	return u
}

// FromUUID converts an RFC 4122 UUID into ASF wire order
func FromUUID(u uuid.UUID) (g GUID) {
	g[0], g[1], g[2], g[3] = u[3], u[2], u[1], u[0]
	g[4], g[5] = u[5], u[4]
	g[6], g[7] = u[7], u[6]
	copy(g[8:], u[8:])
	return g
}
