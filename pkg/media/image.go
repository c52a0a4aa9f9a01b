package media

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path"
	"recipe/pkg/serrors"
	"slices"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// RecipeImageDir is the directory recipe images are stored under.
const RecipeImageDir = "uploads/recipe"

// sniffLen is the number of leading bytes used to detect the content type.
const sniffLen = 3072

var imageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// imageExtensions lists the file extensions accepted for each image type.
var imageExtensions = map[string][]string{
	"image/jpeg": {".jpg", ".jpeg"},
	"image/png":  {".png"},
	"image/gif":  {".gif"},
	"image/webp": {".webp"},
}

// ErrUnsupportedImage is returned by DetectImage for content that is not an
// image of an accepted type.
var ErrUnsupportedImage = serrors.With(serrors.ErrBadRequest,
	"upload a valid image. the file you uploaded was either not an image or a corrupted image")

// DetectImage sniffs the content type of r. It returns the detected type and
// a reader yielding the full content, including the sniffed bytes.
func DetectImage(r io.Reader) (*mimetype.MIME, io.Reader, error) {
	header := make([]byte, sniffLen)
	n, err := io.ReadFull(r, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, nil, fmt.Errorf("could not read image: %w", err)
	}
	header = header[:n]

	mtype := mimetype.Detect(header)
	if n == 0 || !slices.ContainsFunc(imageTypes, mtype.Is) {
		return nil, nil, ErrUnsupportedImage
	}

	return mtype, io.MultiReader(bytes.NewReader(header), r), nil
}

// RecipeImagePath returns the media path of a recipe image named id. The
// extension of the uploaded filename is kept only when it is an image
// extension matching the detected type; otherwise the extension of the
// detected type is used. Without a detected type, only image extensions are
// kept.
func RecipeImagePath(id uuid.UUID, filename string, mtype *mimetype.MIME) string {
	ext := strings.ToLower(path.Ext(path.Base(strings.ReplaceAll(filename, "\\", "/"))))
	if !isImageExtension(ext, mtype) {
		ext = ""
		if mtype != nil {
			ext = mtype.Extension()
		}
	}

	return path.Join(RecipeImageDir, id.String()+ext)
}

func isImageExtension(ext string, mtype *mimetype.MIME) bool {
	for typ, exts := range imageExtensions {
		if mtype != nil && !mtype.Is(typ) {
			continue
		}
		if slices.Contains(exts, ext) {
			return true
		}
	}

	return false
}

// NewRecipeImagePath is RecipeImagePath with a random id.
func NewRecipeImagePath(filename string, mtype *mimetype.MIME) string {
	return RecipeImagePath(uuid.New(), filename, mtype)
}
