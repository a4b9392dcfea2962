package catalog

import "github.com/community-support-hub/server/internal/hub/model"

// Merge returns base followed by every remote record whose name is not yet
// present. Base records are kept unchanged and in order; remote records keep
// their relative order. A name repeated inside remote is taken once.
func Merge(base, remote []model.Resource) []model.Resource {
	merged := make([]model.Resource, 0, len(base)+len(remote))
	merged = append(merged, base...)

	seen := make(map[string]struct{}, len(base)+len(remote))
	for _, r := range base {
		seen[r.Name] = struct{}{}
	}
	for _, r := range remote {
		if _, dup := seen[r.Name]; dup {
			continue
		}
		seen[r.Name] = struct{}{}
		merged = append(merged, r)
	}
	return merged
}
