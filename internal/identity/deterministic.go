package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

const blockKeyPrefix = "slackfmt:block:"

// UUID derives a deterministic UUID from a stable key using go-hashid. Blank
// keys yield uuid.Nil. Callers prefix keys by kind to avoid collisions.
func UUID(key string) uuid.UUID {
	if strings.TrimSpace(key) == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(key, hashid.WithHashAlgorithm(hashid.SHA256))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(key))
	}
	return uid
}

// BlockID derives the block_id of a layout block from its mrkdwn text.
// Blank text yields "" so the field is omitted.
func BlockID(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	return UUID(blockKeyPrefix + text).String()
}
