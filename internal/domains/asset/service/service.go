package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"

	"adscape/infras/otel"
	"adscape/infras/s3"
	"adscape/internal/domains/asset/model"
	"adscape/shared/constant"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var errNoCreative = errors.New("no creative attached")

// Storage moves creative bytes in and out of the blob sink. Only the URL is kept in the database.
type Storage interface {
	Upload(ctx context.Context, file multipart.File, header *multipart.FileHeader) (url string, err error)
	// Discard deletes the blob behind url. URLs the sink did not issue are ignored.
	Discard(ctx context.Context, url string) error
}

type storageImpl struct {
	bucket s3.Bucket
	otel   otel.Otel
}

func New(bucket s3.Bucket, otel otel.Otel) Storage {
	return &storageImpl{
		bucket: bucket,
		otel:   otel,
	}
}

// ObjectKey names an upload under the creatives directory. The client's file name only
// contributes its extension.
func ObjectKey(filename string) string {
	return path.Join(model.Directory, uuid.NewString()+strings.ToLower(filepath.Ext(filename)))
}

func (s *storageImpl) Upload(ctx context.Context, file multipart.File, header *multipart.FileHeader) (url string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".asset.Upload")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if file == nil || header == nil {
		return constant.Empty, errNoCreative
	}

	key := ObjectKey(header.Filename)
	contentType := header.Header.Get(constant.RequestHeaderContentType)

	url, err = s.bucket.Put(ctx, key, contentType, file, header.Size)
	if err != nil {
		log.Error().Err(err).Str("filename", header.Filename).Msg("failed to upload creative")

		return constant.Empty, fmt.Errorf("failed to upload creative: %w", err)
	}

	return url, nil
}

func (s *storageImpl) Discard(ctx context.Context, url string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".asset.Discard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	key := s.bucket.KeyFromURL(url)
	if key == constant.Empty {
		log.Debug().Str("url", url).Msg("creative is not stored in the bucket, nothing to discard")

		return nil
	}

	if err = s.bucket.Remove(ctx, key); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to discard creative")

		return fmt.Errorf("failed to discard creative: %w", err)
	}

	return nil
}
