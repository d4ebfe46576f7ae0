package data

import (
	"context"
	"fmt"
	"os"

	"github.com/jimlawless/whereami"
	"github.com/scroller-tech/go-backend/pkg/e"
)

// BlobSource абстрагирует чтение файлов данных (каталог, таблица эмбеддингов)
// из конкретного хранилища: локального диска или объектного бакета.
type BlobSource interface {
	// Fetch возвращает содержимое объекта целиком.
	Fetch(ctx context.Context, key string) ([]byte, error)
	// Version возвращает идентификатор версии объекта (mtime, ETag).
	// Меняется при любом обновлении содержимого.
	Version(ctx context.Context, key string) (string, error)
}

// FileSource читает файлы данных с локального диска. Ключ — путь к файлу.
type FileSource struct{}

func NewFileSource() *FileSource {
	return &FileSource{}
}

func (s *FileSource) Fetch(_ context.Context, key string) ([]byte, error) {
	raw, err := os.ReadFile(key)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), fmt.Errorf("%w: %s", e.ErrDataUnavailable, err))
	}

	return raw, nil
}

func (s *FileSource) Version(_ context.Context, key string) (string, error) {
	info, err := os.Stat(key)
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), fmt.Errorf("%w: %s", e.ErrDataUnavailable, err))
	}

	return fmt.Sprintf("%d:%d", info.ModTime().UnixNano(), info.Size()), nil
}
