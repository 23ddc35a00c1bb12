package services

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/minio/minio-go/v7"

	"natureza_back_end/internal/database"
)

func bucketName() string {
	if b := os.Getenv("MINIO_BUCKET"); b != "" {
		return b
	}
	return "natureza-images"
}

// ImageCacheKey deriva a chave de objeto a partir da URL de origem
func ImageCacheKey(sourceURL string) string {
	sum := sha1.Sum([]byte(sourceURL))
	return "proxy/" + hex.EncodeToString(sum[:])
}

// CacheImage grava a imagem baixada no bucket para servir das próximas vezes
func CacheImage(ctx context.Context, key string, data []byte, contentType string) error {
	if database.MinIO == nil {
		return fmt.Errorf("MinIO não inicializado")
	}

	_, err := database.MinIO.PutObject(ctx, bucketName(), key,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	return err
}

// GetCachedImage busca a imagem no bucket. Retorna os bytes e o content-type,
// ou erro quando o objeto não existe.
func GetCachedImage(ctx context.Context, key string) ([]byte, string, error) {
	if database.MinIO == nil {
		return nil, "", fmt.Errorf("MinIO não inicializado")
	}

	obj, err := database.MinIO.GetObject(ctx, bucketName(), key, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", err
	}
	defer obj.Close()

	// Stat falha se o objeto não existe; GetObject é preguiçoso
	info, err := obj.Stat()
	if err != nil {
		return nil, "", err
	}

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, "", err
	}

	return data, info.ContentType, nil
}

