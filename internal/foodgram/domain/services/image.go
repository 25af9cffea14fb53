package services

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"foodgram/internal/foodgram/domain/entities"
)

// MaxImageSize ограничивает размер декодированного изображения рецепта.
const MaxImageSize = 5 << 20

// NormalizeImage декодирует data URI вида data:image/png;base64,..., проверяет
// по содержимому, что это изображение, и возвращает data URI с определенным MIME-типом.
func NormalizeImage(dataURI string) (string, error) {
	header, payload, ok := strings.Cut(dataURI, ",")
	if !ok || !strings.HasPrefix(header, "data:") || !strings.HasSuffix(header, ";base64") {
		return "", fmt.Errorf("%w: expected base64 data URI", entities.ErrInvalidImage)
	}

	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
	if err != nil {
		return "", fmt.Errorf("%w: %w", entities.ErrInvalidImage, err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty image", entities.ErrInvalidImage)
	}
	if len(data) > MaxImageSize {
		return "", fmt.Errorf("%w: image exceeds %d bytes", entities.ErrInvalidImage, MaxImageSize)
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", fmt.Errorf("%w: unsupported content type %s", entities.ErrInvalidImage, mtype.String())
	}

	return "data:" + mtype.String() + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
