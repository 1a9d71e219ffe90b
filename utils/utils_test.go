package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, SplitList(" https://a.example, ,https://b.example "))
	assert.Empty(t, SplitList(""))
}

func TestNewImageValidatorSize(t *testing.T) {
	t.Setenv("MAX_UPLOAD_SIZE_MB", "")
	assert.Equal(t, int64(DefaultMaxUploadSizeMB), NewImageValidator().MaxSizeMB())

	t.Setenv("MAX_UPLOAD_SIZE_MB", "2")
	assert.Equal(t, int64(2), NewImageValidator().MaxSizeMB())

	t.Setenv("MAX_UPLOAD_SIZE_MB", "-1")
	assert.Equal(t, int64(DefaultMaxUploadSizeMB), NewImageValidator().MaxSizeMB())

	t.Setenv("MAX_UPLOAD_SIZE_MB", "lots")
	assert.Equal(t, int64(DefaultMaxUploadSizeMB), NewImageValidator().MaxSizeMB())
}
