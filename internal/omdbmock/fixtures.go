package omdbmock

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/lepinkainen/moviefav/internal/movie"
)

//go:embed fixtures/default.json
var defaultFixtures []byte

// SampleID is the identifier of the record every default fixture set contains.
const SampleID = "tt3896198"

// Fixtures is the data a mock server answers from. Records are served by
// `?i=`; searches match record titles case-insensitively.
type Fixtures struct {
	Records []movie.RawRecord `json:"records"`
}

// DefaultFixtures returns the embedded fixture set.
func DefaultFixtures() Fixtures {
	fx, err := decodeFixtures(defaultFixtures)
	if err != nil {
		panic(fmt.Sprintf("omdbmock: embedded fixtures are invalid: %v", err))
	}
	return fx
}

// LoadFixtures reads a fixture file from disk.
func LoadFixtures(path string) (Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixtures{}, fmt.Errorf("failed to read fixtures: %w", err)
	}
	fx, err := decodeFixtures(data)
	if err != nil {
		return Fixtures{}, fmt.Errorf("failed to parse fixtures %s: %w", path, err)
	}
	return fx, nil
}

// SampleRecord returns the raw wire record for SampleID.
func SampleRecord() movie.RawRecord {
	rec, _ := DefaultFixtures().Lookup(SampleID)
	return rec
}

// Lookup finds a record by imdbID.
func (f Fixtures) Lookup(id string) (movie.RawRecord, bool) {
	for _, rec := range f.Records {
		if strings.EqualFold(rec.ImdbID, id) {
			return rec, true
		}
	}
	return movie.RawRecord{}, false
}

// Search returns the records whose title contains query.
func (f Fixtures) Search(query string) []movie.RawSearchItem {
	query = strings.ToLower(strings.TrimSpace(query))
	var items []movie.RawSearchItem
	for _, rec := range f.Records {
		if !strings.Contains(strings.ToLower(rec.Title), query) {
			continue
		}
		items = append(items, movie.RawSearchItem{
			Title:  rec.Title,
			Year:   rec.Year,
			ImdbID: rec.ImdbID,
			Type:   rec.Type,
			Poster: rec.Poster,
		})
	}
	return items
}

func decodeFixtures(data []byte) (Fixtures, error) {
	var fx Fixtures
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fx); err != nil {
		return Fixtures{}, err
	}
	return fx, nil
}
