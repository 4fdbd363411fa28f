package storage

import (
	"bytes"
	"encoding/json"

	"github.com/LavaJover/shvark-requisites-service/internal/domain"
)

// DefaultSlot is the name under which local edits are persisted.
const DefaultSlot = "requisites_local"

// DecodeSlot parses a persisted slot. Anything that is not a JSON array of
// requisites decodes to an empty list.
func DecodeSlot(raw []byte) []domain.Requisite {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return []domain.Requisite{}
	}
	var list []domain.Requisite
	if err := json.Unmarshal(raw, &list); err != nil || list == nil {
		return []domain.Requisite{}
	}
	return list
}

func EncodeSlot(list []domain.Requisite) ([]byte, error) {
	if list == nil {
		list = []domain.Requisite{}
	}
	return json.Marshal(list)
}
