package utils

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"greenstech/config"
)

// Upload categories, one subdirectory per resource type
const (
	UploadHeroes           = "heroes"
	UploadAbout            = "about"
	UploadTrainerAbout     = "trainer-about"
	UploadCertificates     = "certificates"
	UploadDomainThumbnails = "domains/thumbnails"
	UploadCourses          = "courses"
	UploadEnrollCards      = "enroll-cards"
	UploadTestimonials     = "testimonials"
	UploadStudentSuccess   = "student-success"
	UploadStudyMaterials   = "study-materials"
	UploadTechStack        = "tech-stack"
	UploadProjects         = "projects"
	UploadVideoThumbnails  = "video-thumbnails"
	UploadShortsThumbnails = "youtube-shorts-thumbnails"
	UploadMailAttachments  = "mail-attachments"
)

// SaveUploadedFile stores a multipart file under uploads/<category>/ with a
// unique filename and returns its public /uploads/ path.
func SaveUploadedFile(file *multipart.FileHeader, category string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	destDir := filepath.Join(config.AppConfig.UploadDir, filepath.FromSlash(category))
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	newFilename := fmt.Sprintf("%s-%09d%s", time.Now().Format("20060102150405"), rand.Intn(1e9), ext)
	filePath := filepath.Join(destDir, newFilename)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(filePath)
		return "", err
	}

	return "/uploads/" + category + "/" + newFilename, nil
}

// DiskPath maps a public /uploads/ path back to the file on disk.
// Returns "" for anything outside the uploads prefix.
func DiskPath(publicPath string) string {
	rel, ok := strings.CutPrefix(publicPath, "/uploads/")
	if !ok || rel == "" || strings.Contains(rel, "..") {
		return ""
	}
	return filepath.Join(config.AppConfig.UploadDir, filepath.FromSlash(rel))
}

// DeleteUploadedFile removes the file behind a public /uploads/ path.
// Removal is best-effort: the row is already updated or gone, so a failure
// here only leaves an orphaned file, which is logged for the sweep to pick up.
func DeleteUploadedFile(publicPath string) {
	diskPath := DiskPath(publicPath)
	if diskPath == "" {
		return
	}
	if err := os.Remove(diskPath); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to delete uploaded file %s: %v", diskPath, err)
	}
}

// ValidImageUpload reports whether the file looks like a web image by extension.
func ValidImageUpload(file *multipart.FileHeader) bool {
	switch strings.ToLower(filepath.Ext(file.Filename)) {
	case ".jpg", ".jpeg", ".png", ".webp":
		return true
	}
	return false
}

// RegisterUploadTypes teaches the platform MIME table the document, video and
// ebook extensions served from /uploads. Extensions not listed here fall back
// to the platform's default mapping.
func RegisterUploadTypes() {
	types := map[string]string{
		".mp4":  "video/mp4",
		".webm": "video/webm",
		".mov":  "video/quicktime",
		".avi":  "video/x-msvideo",
		".pdf":  "application/pdf",
		".doc":  "application/msword",
		".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		".ppt":  "application/vnd.ms-powerpoint",
		".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
		".epub": "application/epub+zip",
		".mobi": "application/x-mobipocket-ebook",
		".jpg":  "image/jpeg",
		".jpeg": "image/jpeg",
		".png":  "image/png",
		".webp": "image/webp",
	}
	for ext, typ := range types {
		if err := mime.AddExtensionType(ext, typ); err != nil {
			log.Printf("Failed to register MIME type for %s: %v", ext, err)
		}
	}
}
