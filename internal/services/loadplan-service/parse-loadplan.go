package loadplanService

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/moonkaicuzui/hwk-loadplan/internal/utils"
)

// Loadplan sheets start their data on row 5; everything above is the title
// block.
const LoadplanSkipRows = 4

// Logged row failures are capped so one bad sheet cannot flood the log.
const maxLoggedRowErrors = 5

// ErrNoRecords means a whole batch produced nothing usable.
var ErrNoRecords = errors.New("no records parsed from any factory")

// ParseFactoryRows normalizes every raw row of one factory sheet. Row-level
// problems are isolated: expected skips and unexpected failures are counted
// and the rest of the sheet still parses.
func ParseFactoryRows(factory string, rows [][]string) (FactoryResult, error) {
	cols, err := SchemaFor(factory)
	if err != nil {
		return FactoryResult{}, err
	}

	result := FactoryResult{Factory: factory, Records: []Order{}}

	for idx, row := range rows {
		order, skip, err := NormalizeRow(factory, row, cols, &result.Quality)
		if err != nil {
			result.Errors++
			if result.Errors <= maxLoggedRowErrors {
				log.Printf("factory %s row %d: %v", factory, idx+LoadplanSkipRows+1, err)
			}
			continue
		}
		if skip != SkipNone {
			result.Skipped++
			continue
		}
		result.Records = append(result.Records, *order)
	}

	return result, nil
}

// ParseFactoryFile reads one factory's loadplan workbook and normalizes it.
func ParseFactoryFile(factory, path string) (FactoryResult, error) {
	rows, err := utils.ReadSheetRows(path, "", LoadplanSkipRows)
	if err != nil {
		return FactoryResult{}, fmt.Errorf("read loadplan %s: %w", path, err)
	}

	result, err := ParseFactoryRows(factory, rows)
	if err != nil {
		return FactoryResult{}, err
	}

	log.Printf("factory %s: %d records parsed, %d rows skipped, %d errors",
		factory, len(result.Records), result.Skipped, result.Errors)
	if result.Quality.AutoCorrected > 0 || result.Quality.InvalidDates > 0 {
		log.Printf("factory %s quality: %d empty destinations fixed, %d invalid dates filtered",
			factory, result.Quality.EmptyDestinations, result.Quality.InvalidDates)
	}

	return result, nil
}

// ParseAll runs the batch across every factory file. A missing file or a
// factory-level failure contributes zero records and the batch continues;
// only a batch with no records at all fails.
func ParseAll(files map[string]string) (BatchResult, error) {
	batch := BatchResult{
		Records:      []Order{},
		FactoryCount: map[string]int{},
	}

	for _, factory := range FactoryIDs {
		path, ok := files[factory]
		if !ok {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			log.Printf("factory %s: file not found: %s", factory, path)
			continue
		}

		result, err := ParseFactoryFile(factory, path)
		if err != nil {
			log.Printf("factory %s: %v", factory, err)
			continue
		}

		batch.Records = append(batch.Records, result.Records...)
		batch.FactoryCount[factory] = len(result.Records)
		batch.Skipped += result.Skipped
		batch.Errors += result.Errors
		batch.Quality.Merge(result.Quality)
	}

	if len(batch.Records) == 0 {
		return batch, ErrNoRecords
	}

	return batch, nil
}
