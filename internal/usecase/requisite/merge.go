package requisite

import "github.com/LavaJover/shvark-requisites-service/internal/domain"

// Merge overlays local edits on the seed catalog. A local record replaces the
// seed record with the same id as a whole; local records unknown to the seed
// are appended in store order.
func Merge(seed, local []domain.Requisite) []domain.Requisite {
	localByID := make(map[string]domain.Requisite, len(local))
	for _, r := range local {
		localByID[r.ID] = r
	}

	merged := make([]domain.Requisite, 0, len(seed)+len(local))
	seedIDs := make(map[string]struct{}, len(seed))
	for _, r := range seed {
		seedIDs[r.ID] = struct{}{}
		if l, ok := localByID[r.ID]; ok {
			merged = append(merged, l)
			continue
		}
		merged = append(merged, r)
	}

	for _, r := range local {
		if _, ok := seedIDs[r.ID]; ok {
			continue
		}
		merged = append(merged, r)
	}

	return merged
}
