package utils

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"
)

const shipmentIDCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateShipmentID builds an ID of the form SH-YYYYMMDD-XXX-RRRRRR where
// XXX is the first three characters of the owner's email upper-cased and
// RRRRRR is a random 6-character suffix. Uniqueness is not guaranteed by
// construction; the unique index on shipmentId catches collisions.
func GenerateShipmentID(ownerEmail string, now time.Time) string {
	prefix := ownerEmail
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	prefix = strings.ToUpper(prefix)

	buf := make([]byte, 6)
	rand.Read(buf)
	for i, b := range buf {
		buf[i] = shipmentIDCharset[int(b)%len(shipmentIDCharset)]
	}

	return fmt.Sprintf("SH-%s-%s-%s", now.Format("20060102"), prefix, string(buf))
}
