package utils

import (
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"greenstech/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskPathRoundTrip(t *testing.T) {
	config.AppConfig = &config.Config{UploadDir: "/srv/uploads"}

	got := DiskPath("/uploads/courses/20250101120000-000000001.png")
	assert.Equal(t, filepath.Join("/srv/uploads", "courses", "20250101120000-000000001.png"), got)
}

func TestDiskPathNestedCategory(t *testing.T) {
	config.AppConfig = &config.Config{UploadDir: "/srv/uploads"}

	got := DiskPath("/uploads/domains/thumbnails/a.jpg")
	assert.Equal(t, filepath.Join("/srv/uploads", "domains", "thumbnails", "a.jpg"), got)
}

func TestDiskPathRejectsOutsidePrefix(t *testing.T) {
	config.AppConfig = &config.Config{UploadDir: "/srv/uploads"}

	assert.Empty(t, DiskPath("/etc/passwd"))
	assert.Empty(t, DiskPath("/uploads/"))
	assert.Empty(t, DiskPath("/uploads/../etc/passwd"))
	assert.Empty(t, DiskPath(""))
}

func TestDeleteUploadedFileRemovesFile(t *testing.T) {
	dir := t.TempDir()
	config.AppConfig = &config.Config{UploadDir: dir}

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "courses"), 0755))
	target := filepath.Join(dir, "courses", "x.png")
	require.NoError(t, os.WriteFile(target, []byte("img"), 0644))

	DeleteUploadedFile("/uploads/courses/x.png")

	_, err := os.Stat(target)
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteUploadedFileIgnoresMissingFile(t *testing.T) {
	config.AppConfig = &config.Config{UploadDir: t.TempDir()}

	// Must not panic or create anything.
	DeleteUploadedFile("/uploads/courses/never-existed.png")
}

func TestValidImageUpload(t *testing.T) {
	valid := []string{"a.jpg", "b.JPEG", "c.png", "d.webp"}
	for _, name := range valid {
		assert.True(t, ValidImageUpload(&multipart.FileHeader{Filename: name}), name)
	}

	invalid := []string{"a.gif", "b.svg", "c.pdf", "d.png.exe", "noext"}
	for _, name := range invalid {
		assert.False(t, ValidImageUpload(&multipart.FileHeader{Filename: name}), name)
	}
}
