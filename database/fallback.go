package database

import (
	"errors"
	"math/rand"
	"time"

	"gorm.io/gorm"
)

// scopeTier is one (domainId, courseId) pair in the fallback cascade.
// Zero means "not specific at this level": (d, 0) is the domain default,
// (0, 0) the landing/global default.
type scopeTier struct {
	domainID uint
	courseID uint
}

func (t scopeTier) global() bool {
	return t.domainID == 0 && t.courseID == 0
}

// singleTiers builds the cascade for singleton resources: exact match first,
// the domain default when both ids are set, then the landing default. The
// cascade only ever widens scope; (d, 0) never tries a (d, c>0) tier.
func singleTiers(domainID, courseID uint) []scopeTier {
	tiers := []scopeTier{{domainID, courseID}}
	if domainID > 0 && courseID > 0 {
		tiers = append(tiers, scopeTier{domainID, 0})
	}
	if domainID != 0 || courseID != 0 {
		tiers = append(tiers, scopeTier{0, 0})
	}
	return tiers
}

// listTiers builds the cascade for list resources. The domain tier is only
// tried when a course was requested; the global tier is resource-dependent.
func listTiers(domainID, courseID uint, skipGlobal bool) []scopeTier {
	tiers := []scopeTier{{domainID, courseID}}
	if courseID > 0 {
		tiers = append(tiers, scopeTier{domainID, 0})
	}
	if !skipGlobal && (domainID != 0 || courseID != 0) {
		tiers = append(tiers, scopeTier{0, 0})
	}
	return tiers
}

// ResolveScoped returns the most specific active row for (domainID, courseID),
// walking the cascade until a tier matches. Nothing at the schema level stops
// a tier from holding several active rows; when that happens the most recently
// created row wins. An exhausted cascade returns gorm.ErrRecordNotFound.
func ResolveScoped[T any](db *gorm.DB, domainID, courseID uint) (*T, error) {
	q := db.Session(&gorm.Session{})
	for _, tier := range singleTiers(domainID, courseID) {
		var row T
		err := q.
			Where("domain_id = ? AND course_id = ? AND is_active = ?", tier.domainID, tier.courseID, true).
			Order("id DESC").
			First(&row).Error
		if err == nil {
			return &row, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ListOptions controls tier selection and ordering for ResolveScopedList.
type ListOptions struct {
	// OrderBy is the SQL order clause applied within every tier,
	// e.g. "sort_order ASC, id ASC". Empty defaults to "id ASC".
	OrderBy string
	// SkipGlobal stops the cascade after the (domainId, 0) tier.
	SkipGlobal bool
	// ShuffleGlobal returns the (0, 0) tier in per-request uniform random
	// order, used to rotate featured content on the landing page.
	ShuffleGlobal bool
}

// ResolveScopedList returns every active row at the first non-empty tier of
// the cascade. An empty result set is a valid outcome, not an error.
func ResolveScopedList[T any](db *gorm.DB, domainID, courseID uint, opts ListOptions) ([]T, error) {
	orderBy := opts.OrderBy
	if orderBy == "" {
		orderBy = "id ASC"
	}

	q := db.Session(&gorm.Session{})
	for _, tier := range listTiers(domainID, courseID, opts.SkipGlobal) {
		var rows []T
		err := q.
			Where("domain_id = ? AND course_id = ? AND is_active = ?", tier.domainID, tier.courseID, true).
			Order(orderBy).
			Find(&rows).Error
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			continue
		}
		if tier.global() && opts.ShuffleGlobal {
			shuffle(rows)
		}
		return rows, nil
	}
	return []T{}, nil
}

func shuffle[T any](rows []T) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	rng.Shuffle(len(rows), func(i, j int) {
		rows[i], rows[j] = rows[j], rows[i]
	})
}
