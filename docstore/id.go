package docstore

import "github.com/google/uuid"

// DeriveId maps a pair of strings to a stable UUIDv5. Re-recording the same
// pair lands on the same id, so storers upsert instead of duplicating.
func DeriveId(primary string, secondary string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(primary+":"+secondary)).String()
}
