package utils

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/princinho/menufront/dto"
)

const DefaultMaxUploadSizeMB = 5

type FileValidator struct {
	allowedPrefix string
	maxSize       int64
}

// NewImageValidator accepts any image/* upload up to MAX_UPLOAD_SIZE_MB (default 5).
func NewImageValidator() *FileValidator {
	sizeMB := ParseIntDefault(os.Getenv("MAX_UPLOAD_SIZE_MB"), DefaultMaxUploadSizeMB)
	if sizeMB <= 0 {
		sizeMB = DefaultMaxUploadSizeMB
	}
	return &FileValidator{
		allowedPrefix: "image/",
		maxSize:       int64(sizeMB) << 20,
	}
}

func (v *FileValidator) MaxSizeMB() int64 {
	return v.maxSize >> 20
}

// ValidateUpload sniffs the upload content and returns its detected mime type.
func (v *FileValidator) ValidateUpload(u *dto.Upload) (string, error) {
	if u.Size > v.maxSize {
		return "", fmt.Errorf("file too large (max %d MB)", v.MaxSizeMB())
	}

	file, err := u.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file")
	}
	defer file.Close()

	detected, err := mimetype.DetectReader(io.LimitReader(file, 3072))
	if err != nil {
		return "", fmt.Errorf("failed to read file header")
	}
	if !strings.HasPrefix(detected.String(), v.allowedPrefix) {
		return "", fmt.Errorf("invalid file type %s, choose an image", detected.String())
	}

	return detected.String(), nil
}

// SplitList turns a comma separated setting into its trimmed, non-empty parts.
func SplitList(v string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func ParseIntDefault(v string, def int) int {
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
