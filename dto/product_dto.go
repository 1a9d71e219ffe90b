package dto

import (
	"io"
	"math"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ProductForm holds the add/edit product form exactly as the user typed it.
// Price stays a string so an invalid entry can be shown back unchanged.
type ProductForm struct {
	Name        string  `form:"name" validate:"notblank"`
	Description string  `form:"description"`
	Price       string  `form:"price" validate:"notblank"`
	Category    string  `form:"category" validate:"notblank"`
	Type        string  `form:"type"`
	ImageURL    string  `form:"image_url"`
	Image       *Upload `form:"-"`

	// CurrentImage is the image the item already has; it is accepted as is.
	CurrentImage string `form:"current_image"`
}

// PriceValue parses the price field. ok is false for anything that is not a finite number.
func (f ProductForm) PriceValue() (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(f.Price), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Upload is an image attached to a product form, from a multipart request or a local file.
type Upload struct {
	Filename string
	Size     int64
	Open     func() (io.ReadCloser, error)
}

func UploadFromHeader(fh *multipart.FileHeader) *Upload {
	if fh == nil {
		return nil
	}
	return &Upload{
		Filename: fh.Filename,
		Size:     fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}

func UploadFromPath(path string) (*Upload, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	return &Upload{
		Filename: filepath.Base(path),
		Size:     info.Size(),
		Open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}, nil
}
