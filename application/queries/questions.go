// Package queries holds the pure derived-query layer: filtered and sorted
// question views and tag aggregates computed from a snapshot. Nothing here
// mutates store state.
package queries

import (
	"sort"
	"strings"

	"github.com/Japan1907/StackIt/domain/core/entities"
	"github.com/Japan1907/StackIt/domain/core/valueobjects"
)

// FilterQuestions returns the questions matching the search term and tag
// filter, sorted by the given order.
//
// The term matches case-insensitively against title and description; an
// empty term matches everything. A non-empty tag list keeps questions whose
// tag set intersects it (OR). Sorting is stable: equal keys keep their prior
// relative order.
func FilterQuestions(questions []entities.Question, term string, tags []string, sortBy valueobjects.SortOrder) []entities.Question {
	filtered := make([]entities.Question, 0, len(questions))

	term = strings.ToLower(strings.TrimSpace(term))
	for _, q := range questions {
		if term != "" &&
			!strings.Contains(strings.ToLower(q.Title), term) &&
			!strings.Contains(strings.ToLower(q.Description), term) {
			continue
		}
		if len(tags) > 0 && !hasAnyTag(q, tags) {
			continue
		}
		filtered = append(filtered, q)
	}

	switch sortBy {
	case valueobjects.SortVotes:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Votes > filtered[j].Votes
		})
	case valueobjects.SortAnswers:
		sort.SliceStable(filtered, func(i, j int) bool {
			return len(filtered[i].Answers) > len(filtered[j].Answers)
		})
	case valueobjects.SortNewest:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
		})
	}

	return filtered
}

// TagCount pairs a tag with the number of questions carrying it.
type TagCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// AllTags aggregates tag frequency across all questions, ordered by count
// descending. Ties keep first-encounter order.
func AllTags(questions []entities.Question) []TagCount {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, q := range questions {
		for _, tag := range q.Tags {
			if counts[tag] == 0 {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	tags := make([]TagCount, 0, len(order))
	for _, name := range order {
		tags = append(tags, TagCount{Name: name, Count: counts[name]})
	}

	sort.SliceStable(tags, func(i, j int) bool {
		return tags[i].Count > tags[j].Count
	})

	return tags
}

func hasAnyTag(q entities.Question, tags []string) bool {
	for _, tag := range tags {
		if q.HasTag(tag) {
			return true
		}
	}
	return false
}
