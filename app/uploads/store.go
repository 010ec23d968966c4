package uploads

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// Store keeps uploaded spreadsheets on disk until the import batch that owns
// them completes.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// Save copies the uploaded file into the store under a fresh name and hands
// back the artifact handle that owns it.
func (s *Store) Save(file *multipart.FileHeader) (*Artifact, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	path := filepath.Join(s.dir, uuid.New().String()+filepath.Ext(file.Filename))
	dst, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return nil, err
	}
	return &Artifact{path: path}, nil
}

// Artifact is one temporary upload. Only the first Release call removes the
// backing file; later calls are no-ops.
type Artifact struct {
	path string
	once sync.Once
}

func (a *Artifact) Path() string {
	return a.path
}

func (a *Artifact) Release() error {
	var err error
	a.once.Do(func() {
		err = os.Remove(a.path)
	})
	return err
}
