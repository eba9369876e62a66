package report

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thecorner/backend/internal/models"
)

func testReport(id string) *models.Report {
	return &models.Report{
		ID:               id,
		ReporterID:       "alice",
		PartnerID:        "bob",
		RoomID:           "room-1",
		ReporterNickname: "Alice",
		PartnerNickname:  "Bob",
		Reason:           "spam",
		Timestamp:        time.Now().UTC(),
	}
}

func TestFileSinkAppendsJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "reports.log")
	sink := NewFileSink(path)

	require.NoError(t, sink.Save(context.Background(), testReport("r1")))
	require.NoError(t, sink.Save(context.Background(), testReport("r2")))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var ids []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rep models.Report
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rep))
		ids = append(ids, rep.ID)
		assert.Equal(t, "alice", rep.ReporterID)
		assert.Equal(t, "spam", rep.Reason)
	}
	require.NoError(t, scanner.Err())
	assert.Equal(t, []string{"r1", "r2"}, ids)
}

type failingSink struct{ calls int }

func (s *failingSink) Save(context.Context, *models.Report) error {
	s.calls++
	return errors.New("sink down")
}

func TestServiceSwallowsSinkErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports.log")
	file := NewFileSink(path)
	broken := &failingSink{}
	svc := NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), broken, file)

	svc.Submit(context.Background(), testReport("r1"))

	// The failing sink was tried and the healthy one still got the record.
	assert.Equal(t, 1, broken.calls)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"reportId":"r1"`)
}

func TestServiceWithNoSinks(t *testing.T) {
	svc := NewService(slog.New(slog.NewTextHandler(io.Discard, nil)))
	svc.Submit(context.Background(), testReport("r1")) // must not panic
}
