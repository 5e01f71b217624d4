package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"local-jobs-backend/internal/domain"
)

// ColumnMap names the CSV columns that feed each JobSeeker field.
// Header matching is case-insensitive and ignores surrounding
// whitespace, because the legacy export has headers like "Location ".
type ColumnMap struct {
	Identifier string
	Name       string
	Age        string
	JobType    string
	Skills     string
	Education  string
	Location   string
	Contact    string
	Experience string
	Email      string
}

// DefaultColumns matches the headers of the legacy job-seeker export.
// Deployments whose export uses different column names (the oldest one
// labeled the skills column after a job title) override the map.
func DefaultColumns() ColumnMap {
	return ColumnMap{
		Identifier: "aadhaar",
		Name:       "name",
		Age:        "age",
		JobType:    "job type",
		Skills:     "skills",
		Education:  "education",
		Location:   "location",
		Contact:    "contact",
		Experience: "experience",
		Email:      "gmail",
	}
}

// LoadSeekers streams the bulk CSV once and returns cleaned records.
// Individual malformed rows are cleaned best-effort and kept; only a
// missing or unopenable source fails, with domain.ErrSourceUnavailable,
// and the caller is expected to continue with an empty bulk set.
func LoadSeekers(path string, cols ColumnMap) ([]domain.JobSeeker, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrSourceUnavailable, path, err)
	}
	defer f.Close()

	return readSeekers(f, cols)
}

func readSeekers(r io.Reader, cols ColumnMap) ([]domain.JobSeeker, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", domain.ErrSourceUnavailable, err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}

	var seekers []domain.JobSeeker
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// A row the reader cannot tokenize must not abort the rest
			// of the stream.
			continue
		}

		field := func(name string) string {
			i, ok := index[strings.ToLower(strings.TrimSpace(name))]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		seekers = append(seekers, domain.JobSeeker{
			Identifier: domain.NormalizeIdentifier(field(cols.Identifier)),
			Name:       field(cols.Name),
			Age:        parseAge(field(cols.Age)),
			JobType:    field(cols.JobType),
			Skills:     field(cols.Skills),
			Education:  field(cols.Education),
			Location:   field(cols.Location),
			Contact:    field(cols.Contact),
			Experience: field(cols.Experience),
			Email:      field(cols.Email),
			Source:     domain.SourceBulk,
		})
	}
	return seekers, nil
}

// parseAge returns nil, not zero, when the value is absent or not a
// number.
func parseAge(s string) *int {
	age, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &age
}
