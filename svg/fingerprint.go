package svg

import (
	"github.com/mitchellh/hashstructure/v2"
)

// Fingerprint hashes the segments of the path. Two paths drawing the
// same segments in the same order share a fingerprint whatever their ID.
func (p Path) Fingerprint() (uint64, error) {
	return hashstructure.Hash(p.Data, hashstructure.FormatV2, nil)
}

// Dedupe drops every path whose segments repeat an earlier path's.
func Dedupe(paths []Path) ([]Path, error) {
	seen := make(map[uint64]struct{}, len(paths))
	unique := make([]Path, 0, len(paths))

	for _, p := range paths {
		fingerprint, err := p.Fingerprint()
		if err != nil {
			return nil, PathError{ID: p.ID, Err: err}
		}
		if _, ok := seen[fingerprint]; ok {
			continue
		}

		seen[fingerprint] = struct{}{}
		unique = append(unique, p)
	}

	return unique, nil
}
