package loadplanService

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawRow(t *testing.T, factory string, values map[string]string) []string {
	t.Helper()
	return buildRow(t, factory, values)
}

func TestParseFactoryRowsUnknownFactory(t *testing.T) {
	_, err := ParseFactoryRows("E", [][]string{})
	assert.ErrorIs(t, err, ErrSchemaNotFound)
}

func TestParseFactoryRowsMixedSheet(t *testing.T) {
	rows := [][]string{
		// repeated header block
		rawRow(t, "A", map[string]string{"quantity": "Q.ty", "model": "Model"}),
		// real order
		rawRow(t, "A", map[string]string{
			"unit": "U1", "model": "MODEL-X", "destination": "US",
			"quantity": "120", "crd": "2025.12.20",
		}),
		// subtotal
		rawRow(t, "A", map[string]string{"quantity": "120"}),
		// placeholder quantity
		rawRow(t, "A", map[string]string{"unit": "U1", "model": "MODEL-Y", "quantity": "TBD"}),
		// second real order, destination missing
		rawRow(t, "A", map[string]string{
			"unit": "U2", "model": "MODEL-Z", "quantity": "80",
		}),
	}

	result, err := ParseFactoryRows("A", rows)
	require.NoError(t, err)

	assert.Equal(t, "A", result.Factory)
	require.Len(t, result.Records, 2)
	assert.Equal(t, 3, result.Skipped)
	assert.Equal(t, 0, result.Errors)

	assert.Equal(t, "MODEL-X", result.Records[0].Model)
	assert.Equal(t, "Unknown", result.Records[1].Destination)
	assert.Equal(t, 1, result.Quality.EmptyDestinations)
}

func TestParseFactoryRowsEmptySheet(t *testing.T) {
	result, err := ParseFactoryRows("B", [][]string{})
	require.NoError(t, err)

	assert.Empty(t, result.Records)
	assert.Equal(t, 0, result.Skipped)
}

// Same raw rows in, same records out. Nothing in the pipeline may depend on
// wall clock or call order.
func TestParseFactoryRowsIdempotent(t *testing.T) {
	rows := [][]string{
		rawRow(t, "C", map[string]string{
			"unit": "U1", "model": "MODEL-X", "destination": "EU",
			"quantity": "300", "crd": "12/20", "sdd_current": "12/22",
			"sew_bal": "45", "wh_out_bal": "300",
		}),
	}

	first, err := ParseFactoryRows("C", rows)
	require.NoError(t, err)
	second, err := ParseFactoryRows("C", rows)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestParseAllMissingFiles(t *testing.T) {
	dir := t.TempDir()

	batch, err := ParseAll(map[string]string{
		"A": filepath.Join(dir, "Factory_A.xlsx"),
		"B": filepath.Join(dir, "Factory_B.xlsx"),
	})

	assert.ErrorIs(t, err, ErrNoRecords)
	assert.Empty(t, batch.Records)
	assert.Empty(t, batch.FactoryCount)
}

func TestParseAllNoFiles(t *testing.T) {
	_, err := ParseAll(map[string]string{})
	assert.ErrorIs(t, err, ErrNoRecords)
}
