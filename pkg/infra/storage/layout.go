package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/NeuralTrust/TutorGate/pkg/common"
	"github.com/NeuralTrust/TutorGate/pkg/config"
	"github.com/NeuralTrust/TutorGate/pkg/domain/artifact"
)

const tempPrefix = "temp_"

var _ artifact.Store = (*Layout)(nil)

type Layout struct {
	audioDir string
	videoDir string
	faceDir  string
}

func NewLayout(cfg config.StorageConfig) *Layout {
	return &Layout{
		audioDir: filepath.Clean(cfg.AudioDir),
		videoDir: filepath.Clean(cfg.VideoDir),
		faceDir:  filepath.Clean(cfg.FaceDir),
	}
}

// EnsureDirs creates the artifact directories if they are missing.
func (l *Layout) EnsureDirs() error {
	for _, dir := range []string{l.audioDir, l.videoDir, l.faceDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

func (l *Layout) AudioDir() string { return l.audioDir }
func (l *Layout) VideoDir() string { return l.videoDir }

func (l *Layout) AudioName(sessionID string) string {
	return common.AudioFilePrefix + sessionID + common.AudioExt
}

func (l *Layout) VideoName(sessionID string) string {
	return common.VideoFilePrefix + sessionID + common.VideoExt
}

func (l *Layout) AudioPath(sessionID string) string {
	return filepath.Join(l.audioDir, l.AudioName(sessionID))
}

func (l *Layout) VideoPath(sessionID string) string {
	return filepath.Join(l.videoDir, l.VideoName(sessionID))
}

// TempAudioPath returns the sibling scratch file used while normalizing path.
func TempAudioPath(path string) string {
	dir, base := filepath.Split(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, tempPrefix+stem+common.AudioExt)
}

// Resolve also refuses normalization scratch files, which may be half written.
func (l *Layout) Resolve(kind artifact.Kind, name string) (string, error) {
	var dir string
	switch kind {
	case artifact.KindAudio:
		dir = l.audioDir
	case artifact.KindVideo:
		dir = l.videoDir
	default:
		return "", fmt.Errorf("%w: unknown kind %q", artifact.ErrInvalidName, kind)
	}

	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) ||
		filepath.Base(name) != name || strings.HasPrefix(name, tempPrefix) {
		return "", fmt.Errorf("%w: %q", artifact.ErrInvalidName, name)
	}

	path := filepath.Join(dir, name)
	rel, err := filepath.Rel(dir, path)
	if err != nil || rel != name {
		return "", fmt.Errorf("%w: %q", artifact.ErrInvalidName, name)
	}
	return path, nil
}

func (l *Layout) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
