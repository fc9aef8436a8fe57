package app

import (
	"os"
	"path/filepath"
	"time"
)

// session is one generation run's output location. The folder name carries a
// second-granularity timestamp; collisions across runs within the same second
// are accepted.
type session struct {
	id      string
	dir     string
	baseDir string
}

func newSession(baseDir string) *session {
	return &session{
		id:      time.Now().Format("2006-01-02_15-04-05"),
		baseDir: baseDir,
	}
}

func (s *session) create() error {
	s.dir = filepath.Join(s.baseDir, "generation_"+s.id)
	return os.MkdirAll(s.dir, 0755)
}
