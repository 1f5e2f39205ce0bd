package database

import (
	"sort"
	"testing"

	"greenstech/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDb(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Hero{}, &models.TechStack{}, &models.StudyMaterial{}))
	return db
}

func seedHero(t *testing.T, db *gorm.DB, domainID, courseID uint, title string, active bool) models.Hero {
	t.Helper()
	hero := models.Hero{DomainID: domainID, CourseID: courseID, Title: title, IsActive: active}
	require.NoError(t, db.Create(&hero).Error)
	return hero
}

func TestResolveScopedExactMatchWins(t *testing.T) {
	db := testDb(t)
	seedHero(t, db, 0, 0, "landing", true)
	seedHero(t, db, 3, 0, "domain", true)
	seedHero(t, db, 3, 7, "course", true)

	hero, err := ResolveScoped[models.Hero](db, 3, 7)
	require.NoError(t, err)
	assert.Equal(t, "course", hero.Title)
}

func TestResolveScopedFallsBackToDomain(t *testing.T) {
	db := testDb(t)
	seedHero(t, db, 0, 0, "landing", true)
	seedHero(t, db, 3, 0, "domain", true)

	hero, err := ResolveScoped[models.Hero](db, 3, 7)
	require.NoError(t, err)
	assert.Equal(t, "domain", hero.Title)
}

func TestResolveScopedFallsBackToGlobal(t *testing.T) {
	db := testDb(t)
	seedHero(t, db, 0, 0, "landing", true)

	hero, err := ResolveScoped[models.Hero](db, 3, 7)
	require.NoError(t, err)
	assert.Equal(t, "landing", hero.Title)
}

func TestResolveScopedSkipsInactiveRows(t *testing.T) {
	db := testDb(t)
	seedHero(t, db, 3, 7, "hidden", false)
	seedHero(t, db, 3, 0, "domain", true)

	hero, err := ResolveScoped[models.Hero](db, 3, 7)
	require.NoError(t, err)
	assert.Equal(t, "domain", hero.Title)
}

func TestResolveScopedNotFound(t *testing.T) {
	db := testDb(t)

	_, err := ResolveScoped[models.Hero](db, 3, 7)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestResolveScopedNoReverseFallback(t *testing.T) {
	db := testDb(t)
	// A course-specific row must not satisfy a domain-level request.
	seedHero(t, db, 3, 7, "course", true)

	_, err := ResolveScoped[models.Hero](db, 3, 0)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestResolveScopedMostRecentWinsWithinTier(t *testing.T) {
	db := testDb(t)
	seedHero(t, db, 3, 0, "older", true)
	newer := seedHero(t, db, 3, 0, "newer", true)

	hero, err := ResolveScoped[models.Hero](db, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, newer.ID, hero.ID)
	assert.Equal(t, "newer", hero.Title)
}

func seedTech(t *testing.T, db *gorm.DB, domainID, courseID uint, name string, order int) {
	t.Helper()
	require.NoError(t, db.Create(&models.TechStack{
		DomainID: domainID, CourseID: courseID, Name: name, SortOrder: order, IsActive: true,
	}).Error)
}

func TestResolveScopedListFirstNonEmptyTier(t *testing.T) {
	db := testDb(t)
	seedTech(t, db, 0, 0, "landing-a", 1)
	seedTech(t, db, 3, 0, "domain-a", 1)
	seedTech(t, db, 3, 0, "domain-b", 2)

	items, err := ResolveScopedList[models.TechStack](db, 3, 7, ListOptions{OrderBy: "sort_order ASC, id ASC"})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "domain-a", items[0].Name)
	assert.Equal(t, "domain-b", items[1].Name)
}

func TestResolveScopedListNeverMixesTiers(t *testing.T) {
	db := testDb(t)
	seedTech(t, db, 3, 7, "course-a", 1)
	seedTech(t, db, 3, 0, "domain-a", 1)

	items, err := ResolveScopedList[models.TechStack](db, 3, 7, ListOptions{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "course-a", items[0].Name)
}

func TestResolveScopedListEmptyIsNotAnError(t *testing.T) {
	db := testDb(t)

	items, err := ResolveScopedList[models.TechStack](db, 3, 7, ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestResolveScopedListSkipGlobal(t *testing.T) {
	db := testDb(t)
	seedTech(t, db, 0, 0, "landing-a", 1)

	items, err := ResolveScopedList[models.TechStack](db, 3, 7, ListOptions{SkipGlobal: true})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestResolveScopedListShuffleGlobalIsPermutation(t *testing.T) {
	db := testDb(t)
	names := []string{"a", "b", "c", "d", "e", "f"}
	for _, n := range names {
		require.NoError(t, db.Create(&models.StudyMaterial{
			DomainID: 0, CourseID: 0, FileName: n, FileType: models.MaterialTypePDF,
			FilePath: "/uploads/study-materials/" + n + ".pdf", IsActive: true,
		}).Error)
	}

	items, err := ResolveScopedList[models.StudyMaterial](db, 5, 0, ListOptions{ShuffleGlobal: true})
	require.NoError(t, err)
	require.Len(t, items, len(names))

	got := make([]string, 0, len(items))
	for _, it := range items {
		got = append(got, it.FileName)
	}
	sort.Strings(got)
	assert.Equal(t, names, got)
}

func TestResolveScopedListShuffleOnlyAppliesAtGlobalTier(t *testing.T) {
	db := testDb(t)
	seedTech(t, db, 3, 7, "b", 2)
	seedTech(t, db, 3, 7, "a", 1)

	items, err := ResolveScopedList[models.TechStack](db, 3, 7, ListOptions{
		OrderBy: "sort_order ASC, id ASC", ShuffleGlobal: true,
	})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].Name)
	assert.Equal(t, "b", items[1].Name)
}
