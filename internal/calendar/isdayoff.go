package calendar

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/username/daymark/internal/marking"
	"github.com/username/daymark/pkg/dateutil"
	"go.uber.org/zap"
)

const (
	isdayoffBaseURL    = "https://isdayoff.ru"
	defaultHTTPTimeout = 10 * time.Second
	defaultCacheTTL    = 24 * time.Hour
)

// IsDayOffSource implements Source using the isdayoff.ru production
// calendar. Non-working weekdays are marked as rest days.
type IsDayOffSource struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	cache      map[string]*cachedMonth
	cacheMu    sync.RWMutex
	cacheTTL   time.Duration
}

type cachedMonth struct {
	days      []DayInfo
	fetchedAt time.Time
}

// NewIsDayOffSource creates a new IsDayOffSource. An empty baseURL uses
// the public isdayoff.ru endpoint.
func NewIsDayOffSource(baseURL string, cacheTTL time.Duration, logger *zap.Logger) *IsDayOffSource {
	if baseURL == "" {
		baseURL = isdayoffBaseURL
	}
	if cacheTTL == 0 {
		cacheTTL = defaultCacheTTL
	}

	return &IsDayOffSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultHTTPTimeout,
		},
		logger:   logger,
		cache:    make(map[string]*cachedMonth),
		cacheTTL: cacheTTL,
	}
}

// MonthMarkings returns rest-day markings for the holidays of the month
func (s *IsDayOffSource) MonthMarkings(ctx context.Context, year int, month time.Month) (map[string]marking.Descriptor, error) {
	days, err := s.MonthDays(ctx, year, month)
	if err != nil {
		return nil, err
	}

	out := make(map[string]marking.Descriptor)
	for _, day := range days {
		if day.Type == DayTypeHoliday {
			out[dateutil.ToMarkingFormat(day.Date)] = marking.Descriptor{Rest: true}
		}
	}
	return out, nil
}

// MonthDays returns the classified days of the month, from cache when fresh
func (s *IsDayOffSource) MonthDays(ctx context.Context, year int, month time.Month) ([]DayInfo, error) {
	key := monthKey(year, month)

	s.cacheMu.RLock()
	if cached, ok := s.cache[key]; ok {
		if time.Since(cached.fetchedAt) < s.cacheTTL {
			s.cacheMu.RUnlock()
			s.logger.Debug("Using cached month", zap.String("month", key))
			return cached.days, nil
		}
	}
	s.cacheMu.RUnlock()

	days, err := s.fetchMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}

	s.cacheMu.Lock()
	s.cache[key] = &cachedMonth{
		days:      days,
		fetchedAt: time.Now(),
	}
	s.cacheMu.Unlock()

	return days, nil
}

// fetchMonth fetches entire month from isdayoff.ru bulk API
func (s *IsDayOffSource) fetchMonth(ctx context.Context, year int, month time.Month) ([]DayInfo, error) {
	// Build URL: https://isdayoff.ru/api/getdata?year=2025&month=11&pre=1
	url := fmt.Sprintf("%s/api/getdata?year=%d&month=%d&pre=1", s.baseURL, year, int(month))

	s.logger.Debug("Fetching month from isdayoff",
		zap.String("url", url),
		zap.Int("year", year),
		zap.Int("month", int(month)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch calendar data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	days, err := parseBulkResponse(year, month, strings.TrimSpace(string(body)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse bulk response: %w", err)
	}

	s.logger.Info("Month fetched from isdayoff",
		zap.Int("year", year),
		zap.Int("month", int(month)),
		zap.Int("days", len(days)))

	return days, nil
}

// parseBulkResponse parses isdayoff.ru bulk response string
// Format: "211100011000001100000110000011" where:
// 0 = working day (8 hours)
// 1 = non-working day (holiday/weekend)
// 2 = shortened day (7 hours)
func parseBulkResponse(year int, month time.Month, data string) ([]DayInfo, error) {
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	if len(data) != daysInMonth {
		return nil, fmt.Errorf("bulk data length mismatch: expected %d, got %d", daysInMonth, len(data))
	}

	days := make([]DayInfo, 0, daysInMonth)
	for i, code := range data {
		date := time.Date(year, month, i+1, 0, 0, 0, 0, time.UTC)
		info := DayInfo{Date: date}

		switch code {
		case '0':
			info.Type = DayTypeWorkday
			info.IsWorkday = true
		case '1':
			if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
				info.Type = DayTypeWeekend
			} else {
				info.Type = DayTypeHoliday
			}
		case '2':
			info.Type = DayTypeShortened
			info.IsWorkday = true
		default:
			return nil, fmt.Errorf("unknown code '%c' at position %d", code, i)
		}

		days = append(days, info)
	}

	return days, nil
}

// ClearCache clears the cache
func (s *IsDayOffSource) ClearCache() {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()

	s.cache = make(map[string]*cachedMonth)
	s.logger.Info("Calendar cache cleared")
}
