package artifact

import "errors"

type Kind string

const (
	KindAudio Kind = "audio"
	KindVideo Kind = "video"
)

var ErrInvalidName = errors.New("invalid artifact name")

// Store names and locates per-session media files. Names are bare file names;
// paths are absolute or relative to the working directory.
type Store interface {
	AudioName(sessionID string) string
	VideoName(sessionID string) string
	AudioPath(sessionID string) string
	VideoPath(sessionID string) string
	// Resolve maps a client-supplied file name to a path inside the kind's
	// directory, rejecting anything that would escape it.
	Resolve(kind Kind, name string) (string, error)
	Exists(path string) bool
}
