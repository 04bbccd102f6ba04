package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itinera/internal/models/request_models"
	"itinera/internal/models/response_models"
	"itinera/pkg/utils"
)

func writeFixture(t *testing.T, dir, name, destination string, days int) string {
	t.Helper()
	it := &response_models.Itinerary{
		BudgetBreakdown: response_models.BudgetBreakdown{Accommodation: 500, Food: 300, Total: 800},
		Tips:            []string{"Validate your ticket before boarding."},
	}
	for d := 1; d <= days; d++ {
		it.Days = append(it.Days, response_models.DayPlan{
			Day:        d,
			Activities: []response_models.Activity{{Name: fmt.Sprintf("Sight %d", d), Time: "10:00", Cost: 20}},
		})
	}

	path := filepath.Join(dir, name)
	require.NoError(t, writeTripFile(path, &tripFile{
		Request:   request_models.TripRequest{Destination: destination, Duration: days, PeopleCount: 1, Budget: 800, Currency: "usd"},
		Itinerary: it,
	}))
	return path
}

func TestRenderAll(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	at := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	var jobs []renderJob
	for i, dest := range []string{"Rome", "Oslo", "Lima", "Cairo", "Hanoi"} {
		path := writeFixture(t, in, fmt.Sprintf("trip-%d.json", i), dest, 2+i)
		jobs = append(jobs, renderJob{input: path, outDir: out, at: at})
	}

	results, err := renderAll(jobs, 2)
	require.NoError(t, err)
	require.Len(t, results, len(jobs))

	sort.Slice(results, func(i, j int) bool { return results[i].input < results[j].input })
	for i, r := range results {
		assert.Equal(t, filepath.Join(out, fmt.Sprintf("trip-%d.pdf", i)), r.output)
		assert.GreaterOrEqual(t, r.pages, 1)
		data, err := os.ReadFile(r.output)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-", string(data[:5]))
	}
}

func TestRenderAllCollectsFailures(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()

	good := writeFixture(t, in, "good.json", "Rome", 2)
	bad := writeFixture(t, in, "bad.json", "42", 2)
	missing := filepath.Join(in, "missing.json")

	results, err := renderAll([]renderJob{
		{input: good, outDir: out},
		{input: bad, outDir: out},
		{input: missing, outDir: out},
	}, 3)

	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrRender)
	assert.ErrorIs(t, err, os.ErrNotExist)
	require.Len(t, results, 1)
	assert.Equal(t, good, results[0].input)
}

func TestReadTripFileNormalizes(t *testing.T) {
	path := writeFixture(t, t.TempDir(), "trip.json", "  Rome ", 1)

	tf, err := readTripFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Rome", tf.Request.Destination)
	assert.Equal(t, "USD", tf.Request.Currency)

	empty := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte(`{"request": {}}`), 0o600))
	_, err = readTripFile(empty)
	assert.Error(t, err)
}
