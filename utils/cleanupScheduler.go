package utils

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"greenstech/config"
	"greenstech/database"
	"greenstech/models"

	"github.com/robfig/cron/v3"
)

// StartCleanupScheduler runs a nightly sweep that deletes upload files no row
// references anymore. File writes and deletes are not transactional with the
// database, so a crash mid-request can leave orphans; the sweep reconciles.
func StartCleanupScheduler() {
	c := cron.New()

	// Every day at 03:30
	_, err := c.AddFunc("30 3 * * *", func() {
		SweepOrphanedUploads(24 * time.Hour)
	})
	if err != nil {
		log.Printf("Failed to schedule upload sweep: %v", err)
		return
	}

	c.Start()
	log.Println("Upload sweep scheduler started.")
}

// SweepOrphanedUploads removes files under the upload root that are not
// referenced by any row and are older than minAge. Fresh files are kept so an
// in-flight request is never raced.
func SweepOrphanedUploads(minAge time.Duration) {
	referenced, err := referencedUploadPaths()
	if err != nil {
		log.Printf("Upload sweep aborted, could not collect references: %v", err)
		return
	}

	root := config.AppConfig.UploadDir
	cutoff := time.Now().Add(-minAge)
	removed := 0

	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		publicPath := "/uploads/" + filepath.ToSlash(rel)
		if referenced[publicPath] || info.ModTime().After(cutoff) {
			return nil
		}
		if rmErr := os.Remove(path); rmErr != nil {
			log.Printf("Upload sweep: failed to remove %s: %v", path, rmErr)
			return nil
		}
		removed++
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Upload sweep walk error: %v", err)
	}
	if removed > 0 {
		log.Printf("Upload sweep removed %d orphaned file(s).", removed)
	}
}

// referencedUploadPaths loads every asset path stored on any row
func referencedUploadPaths() (map[string]bool, error) {
	db := database.Database.Db
	refs := make(map[string]bool)

	add := func(paths ...string) {
		for _, p := range paths {
			if strings.HasPrefix(p, "/uploads/") {
				refs[p] = true
			}
		}
	}

	var heroes []models.Hero
	if err := db.Find(&heroes).Error; err != nil {
		return nil, err
	}
	for _, h := range heroes {
		add(h.Images...)
	}

	var abouts []models.About
	if err := db.Find(&abouts).Error; err != nil {
		return nil, err
	}
	for _, a := range abouts {
		add(a.MainImages...)
	}

	var trainers []models.TrainerAbout
	if err := db.Find(&trainers).Error; err != nil {
		return nil, err
	}
	for _, t := range trainers {
		add(t.MainImage)
	}

	var certs []models.Certificate
	if err := db.Find(&certs).Error; err != nil {
		return nil, err
	}
	for _, c := range certs {
		add(c.CertificateImage)
	}

	var domains []models.Domain
	if err := db.Find(&domains).Error; err != nil {
		return nil, err
	}
	for _, d := range domains {
		add(d.ThumbnailURL)
	}

	var courses []models.Course
	if err := db.Find(&courses).Error; err != nil {
		return nil, err
	}
	for _, c := range courses {
		add(c.Image)
	}

	var cards []models.EnrollCard
	if err := db.Find(&cards).Error; err != nil {
		return nil, err
	}
	for _, c := range cards {
		add(c.Image)
	}

	var testimonials []models.Testimonial
	if err := db.Find(&testimonials).Error; err != nil {
		return nil, err
	}
	for _, t := range testimonials {
		add(t.Image)
	}

	var successes []models.StudentSuccess
	if err := db.Find(&successes).Error; err != nil {
		return nil, err
	}
	for _, s := range successes {
		add(s.Image)
	}

	var materials []models.StudyMaterial
	if err := db.Find(&materials).Error; err != nil {
		return nil, err
	}
	for _, m := range materials {
		add(m.FilePath, m.ImageURL)
	}

	var techs []models.TechStack
	if err := db.Find(&techs).Error; err != nil {
		return nil, err
	}
	for _, t := range techs {
		add(t.IconURL)
	}

	var projects []models.Project
	if err := db.Find(&projects).Error; err != nil {
		return nil, err
	}
	for _, p := range projects {
		add(p.ImageURL)
	}

	var videos []models.VideoTestimonial
	if err := db.Find(&videos).Error; err != nil {
		return nil, err
	}
	for _, v := range videos {
		add(v.ImageURL)
	}

	var shorts []models.YouTubeShort
	if err := db.Find(&shorts).Error; err != nil {
		return nil, err
	}
	for _, s := range shorts {
		add(s.ImageURL)
	}

	return refs, nil
}
