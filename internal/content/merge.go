package content

import (
	"dario.cat/mergo"

	"github.com/example/alhayat/internal/logger"
)

// Merge returns defaults with every non-zero field of remote written over it.
// Zero fields in remote stand for absent values and keep the default, so a
// stored false or empty string can never hide a default.
func Merge[T any](defaults T, remote *T) T {
	if remote == nil {
		return defaults
	}
	out := defaults
	if err := mergo.Merge(&out, *remote, mergo.WithOverride); err != nil {
		logger.Error(err, "Failed to merge content over defaults", nil)
		return defaults
	}
	return out
}
