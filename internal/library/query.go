package library

import (
	"sort"
	"strconv"
	"strings"

	"github.com/vkorhonen/alexandria/internal/errors"
)

// Recognized sort criteria. Each field sorts ascending by default; the
// -desc variant reverses it.
const (
	SortTitle      = "title"
	SortTitleDesc  = "title-desc"
	SortAuthor     = "author"
	SortAuthorDesc = "author-desc"
	SortYear       = "year"
	SortYearDesc   = "year-desc"
	SortGenre      = "genre"
	SortGenreDesc  = "genre-desc"
)

// SortCriteria lists every recognized criterion, in display order.
func SortCriteria() []string {
	return []string{
		SortTitle, SortTitleDesc,
		SortAuthor, SortAuthorDesc,
		SortYear, SortYearDesc,
		SortGenre, SortGenreDesc,
	}
}

// Search returns the books whose title or author contains keyword,
// case-insensitively. An empty keyword returns the input unchanged.
func Search(books []Book, keyword string) []Book {
	if keyword == "" {
		return books
	}

	keyword = strings.ToLower(keyword)
	result := make([]Book, 0, len(books))
	for _, b := range books {
		if strings.Contains(strings.ToLower(b.Title), keyword) ||
			strings.Contains(strings.ToLower(b.Author), keyword) {
			result = append(result, b)
		}
	}
	return result
}

// SortBooks returns a new slice sorted by the given criterion. The sort is
// stable: ties keep their original relative order. An unrecognized criterion
// is a validation error, not a no-op.
func SortBooks(books []Book, criterion string) ([]Book, error) {
	field, descending := strings.CutSuffix(criterion, "-desc")

	var key func(Book) string
	switch field {
	case SortTitle:
		key = func(b Book) string { return strings.ToLower(b.Title) }
	case SortAuthor:
		key = func(b Book) string { return strings.ToLower(b.Author) }
	case SortGenre:
		key = func(b Book) string { return strings.ToLower(b.Genre) }
	case SortYear:
		// handled below, years compare numerically
	default:
		return nil, errors.NewValidationError("unknown sort criterion: " + criterion)
	}

	sorted := make([]Book, len(books))
	copy(sorted, books)

	if field == SortYear {
		sort.SliceStable(sorted, func(i, j int) bool {
			yi, yj := yearValue(sorted[i].Year), yearValue(sorted[j].Year)
			if descending {
				return yj < yi
			}
			return yi < yj
		})
		return sorted, nil
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if descending {
			return key(sorted[j]) < key(sorted[i])
		}
		return key(sorted[i]) < key(sorted[j])
	})
	return sorted, nil
}

// yearValue maps a year field to its numeric value. Non-numeric years sort
// before every real year, matching how the catalog has always treated them.
func yearValue(year string) int {
	n, err := strconv.Atoi(year)
	if err != nil {
		return 0
	}
	return n
}

// FilterByTag returns the books whose tag set contains tag (exact,
// case-sensitive match). An empty tag returns the input unchanged.
func FilterByTag(books []Book, tag string) []Book {
	if tag == "" {
		return books
	}

	result := make([]Book, 0, len(books))
	for _, b := range books {
		if b.HasTag(tag) {
			result = append(result, b)
		}
	}
	return result
}

// AllTags returns the sorted union of every record's tags.
func AllTags(books []Book) []string {
	seen := make(map[string]bool)
	for _, b := range books {
		for _, t := range b.Tags {
			seen[t] = true
		}
	}

	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// FindByKey returns the book with the given key, or false when absent.
func FindByKey(books []Book, key string) (Book, bool) {
	for _, b := range books {
		if b.Key == key {
			return b, true
		}
	}
	return Book{}, false
}
