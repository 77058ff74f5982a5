// Package cloudstore persists named point clouds in a sqlite database.
//
// Schema lives in embedded migrations and is applied on Open via
// golang-migrate. Clouds round-trip bit-exactly: coordinates are stored as
// IEEE doubles and reloaded in original point order.
package cloudstore
