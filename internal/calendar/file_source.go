package calendar

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/username/daymark/internal/marking"
	"github.com/username/daymark/pkg/dateutil"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// markedDatesFile is the on-disk layout of a marked-dates file
type markedDatesFile struct {
	MarkedDates map[string]marking.Descriptor `yaml:"marked_dates"`
}

// FileSource implements Source using a local YAML file
type FileSource struct {
	filePath string
	logger   *zap.Logger
	data     map[string]map[string]marking.Descriptor // key: "YYYY-MM"
}

// NewFileSource creates a new FileSource instance
func NewFileSource(filePath string, logger *zap.Logger) *FileSource {
	return &FileSource{
		filePath: filePath,
		logger:   logger,
		data:     make(map[string]map[string]marking.Descriptor),
	}
}

// Load loads marked dates from file
func (fs *FileSource) Load() error {
	raw, err := os.ReadFile(fs.filePath)
	if err != nil {
		return fmt.Errorf("failed to read marked dates file: %w", err)
	}

	var file markedDatesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("failed to parse marked dates file: %w", err)
	}

	data := make(map[string]map[string]marking.Descriptor)
	loaded := 0
	for key, d := range file.MarkedDates {
		date, err := time.Parse(dateutil.MarkingFormat, key)
		if err != nil {
			fs.logger.Warn("Skipping marked date with invalid key",
				zap.String("date", key),
				zap.Error(err))
			continue
		}

		mk := monthKey(date.Year(), date.Month())
		if data[mk] == nil {
			data[mk] = make(map[string]marking.Descriptor)
		}
		data[mk][key] = d
		loaded++
	}

	fs.data = data
	fs.logger.Info("Marked dates file loaded",
		zap.String("file", fs.filePath),
		zap.Int("dates", loaded),
		zap.Int("months", len(data)))

	return nil
}

// MonthMarkings returns the marked dates of the month. Months without
// markings yield an empty map.
func (fs *FileSource) MonthMarkings(_ context.Context, year int, month time.Month) (map[string]marking.Descriptor, error) {
	out := make(map[string]marking.Descriptor)
	for key, d := range fs.data[monthKey(year, month)] {
		out[key] = d
	}
	return out, nil
}

// Dates returns every loaded date key in ascending order
func (fs *FileSource) Dates() []string {
	var dates []string
	for _, month := range fs.data {
		for key := range month {
			dates = append(dates, key)
		}
	}
	sort.Strings(dates)
	return dates
}
