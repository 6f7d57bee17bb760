package expect

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/epubforge/epubforge/config"
	"github.com/epubforge/epubforge/console"
	"github.com/epubforge/epubforge/fixture"
)

// Builder derives expectation records for the whole catalog.
type Builder struct {
	Config  *config.Config
	Console *console.Console
}

// Summary counts one builder run.
type Summary struct {
	Created int
	Skipped int
}

// Run writes one record per catalog fixture, in name order. Valid
// fixtures and overrides need no reference report; invalid fixtures
// whose reference report has not been captured yet are skipped so a
// partial reference set still yields a usable expected/ tree.
func (b *Builder) Run() (Summary, error) {
	fixtures := fixture.Catalog()
	sort.Slice(fixtures, func(i, j int) bool { return fixtures[i].Name < fixtures[j].Name })

	var sum Summary
	for _, fx := range fixtures {
		rec, err := b.record(fx)
		if err != nil {
			return sum, err
		}
		if rec == nil {
			b.Console.Skipf("%s (no reference)", fx.Name)
			sum.Skipped++
			continue
		}

		if err := writeRecord(b.Config.ExpectedPath(fx.Category, fx.Name), rec); err != nil {
			return sum, err
		}
		b.Console.Okf("Created", "%s/%s.json  [%s]", fx.Category, fx.Name, recordStatus(rec))
		sum.Created++
	}

	b.Console.Infof("Done: %d created, %d skipped", sum.Created, sum.Skipped)
	return sum, nil
}

// record builds the expectation for one fixture. A nil record with nil
// error means the fixture's reference report is missing.
func (b *Builder) record(fx fixture.Fixture) (*Record, error) {
	if fx.Category == fixture.CategoryValid {
		return cleanRecord(fx.Category, fx.Name, ""), nil
	}

	check, ok := Checks[fx.Name]
	if !ok {
		return nil, fmt.Errorf("fixture %s has no curated check", fx.Name)
	}
	if check.ValidOverride {
		return cleanRecord(fx.Category, fx.Name, check.Note), nil
	}

	counts, err := readReference(b.Config.ReferencePath(fx.Category, fx.Name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	rec := &Record{
		Fixture: fx.Category + "/" + fx.Name,
		Valid:   counts.fatal == 0 && counts.errors == 0,
		Messages: []Message{{
			Severity:       check.Severity,
			CheckID:        check.CheckID,
			EpubcheckID:    check.EpubcheckID,
			MessagePattern: check.MessagePattern,
			Note:           check.Note,
		}},
		FatalCount:   counts.fatal,
		ErrorCount:   counts.errors,
		WarningCount: counts.warnings,
	}

	// A single defect that cascades produces a checker-dependent error
	// total; pin only the lower bound then.
	if counts.errors > 1 && check.Severity == SeverityError {
		one := 1
		rec.ErrorCountMin = &one
	}

	return rec, nil
}

// cleanRecord is the all-clear expectation used for valid fixtures and
// for overrides the reference checker does not flag.
func cleanRecord(category, name, note string) *Record {
	return &Record{
		Fixture:  category + "/" + name,
		Valid:    true,
		Messages: []Message{},
		Note:     note,
	}
}

// severityCounts tallies one reference report.
type severityCounts struct {
	fatal    int
	errors   int
	warnings int
}

// referenceReport is the part of a captured checker run the builder
// reads; everything else in the report is ignored.
type referenceReport struct {
	Messages []struct {
		Severity string `json:"severity"`
	} `json:"messages"`
}

func readReference(path string) (severityCounts, error) {
	var counts severityCounts

	data, err := os.ReadFile(path)
	if err != nil {
		return counts, err
	}

	var ref referenceReport
	if err := json.Unmarshal(data, &ref); err != nil {
		return counts, fmt.Errorf("parse reference %s: %w", path, err)
	}

	for _, m := range ref.Messages {
		switch m.Severity {
		case SeverityFatal:
			counts.fatal++
		case SeverityError:
			counts.errors++
		case SeverityWarning:
			counts.warnings++
		}
	}
	return counts, nil
}

func writeRecord(path string, rec *Record) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encode record %s: %w", path, err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return nil
}

func recordStatus(rec *Record) string {
	if rec.Valid && len(rec.Messages) == 0 {
		if rec.Note != "" {
			return "valid=true (note)"
		}
		return "valid=true"
	}
	return fmt.Sprintf("F=%d E=%d W=%d", rec.FatalCount, rec.ErrorCount, rec.WarningCount)
}
