package services

import "github.com/google/uuid"

// canonicalID returns id in the lowercase hyphenated form ids are stored in.
// uuid.Parse also accepts urn:uuid:, braced and bare-hex spellings.
func canonicalID(id string) (string, bool) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return u.String(), true
}
