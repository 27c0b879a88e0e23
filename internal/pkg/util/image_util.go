package util

import (
	"Inkstone/internal/api/config"
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
)

var ErrNotAnImage = errors.New("file is not a decodable image")

// uploadStamp is fixed at process start; every thumbnail saved by this
// process shares the same timestamp suffix.
var uploadStamp = time.Now().UTC().Format("01-02-2006_15:04:05")

// SaveThumbnail decodes the uploaded file, scales it down to the configured
// thumbnail box and writes it under the upload directory. The stored name
// combines the owner's email, the process start stamp and the source format.
func SaveThumbnail(r io.Reader, email string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", ErrNotAnImage
	}

	cfg := config.Cfg.Upload
	thumb := imaging.Fit(src, cfg.ThumbnailWidth, cfg.ThumbnailHeight, imaging.Lanczos)

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return "", err
	}

	filename := filepath.Join(cfg.Dir, fmt.Sprintf("%s_%s.%s", email, uploadStamp, format))
	if err := imaging.Save(thumb, filename); err != nil {
		return "", err
	}

	return filename, nil
}
