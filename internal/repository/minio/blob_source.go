package minio

import (
	"context"
	"fmt"
	"io"

	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
	"github.com/scroller-tech/go-backend/internal/cfg"
	"github.com/scroller-tech/go-backend/pkg/e"
)

// BlobSource читает файлы данных (каталог, таблицу эмбеддингов) из MinIO.
// Ключ — имя объекта в бакете.
type BlobSource struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
}

func NewBlobSource(mc *minio.Client, cfg *cfg.MinIOCfg) *BlobSource {
	return &BlobSource{
		mc:  mc,
		cfg: cfg,
	}
}

// Fetch скачивает объект целиком.
func (s *BlobSource) Fetch(ctx context.Context, key string) ([]byte, error) {
	obj, err := s.mc.GetObject(ctx, s.cfg.BucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), fmt.Errorf("%w: %s", e.ErrDataUnavailable, err))
	}
	defer obj.Close()

	raw, err := io.ReadAll(obj)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), fmt.Errorf("%w: %s", e.ErrDataUnavailable, err))
	}

	return raw, nil
}

// Version возвращает ETag объекта как идентификатор версии.
func (s *BlobSource) Version(ctx context.Context, key string) (string, error) {
	info, err := s.mc.StatObject(ctx, s.cfg.BucketName, key, minio.StatObjectOptions{})
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), fmt.Errorf("%w: %s", e.ErrDataUnavailable, err))
	}

	return info.ETag, nil
}
