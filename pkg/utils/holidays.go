package util

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// HolidayAPIData is one entry of the public-holiday feed.
type HolidayAPIData struct {
	Date              string `json:"holiday_date"`
	Name              string `json:"holiday_name"`
	IsNationalHoliday bool   `json:"is_national_holiday"`
}

// HolidayClient reads national holidays from an external feed of the form
// <baseURL>?year=YYYY. A client with an empty base URL knows no holidays.
type HolidayClient struct {
	baseURL string
	http    *http.Client
}

func NewHolidayClient(baseURL string) *HolidayClient {
	return &HolidayClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

// HolidayMap returns the national holidays of year keyed by YYYY-MM-DD.
func (c *HolidayClient) HolidayMap(ctx context.Context, year int) (map[string]bool, error) {
	holidayMap := make(map[string]bool)
	if c == nil || c.baseURL == "" {
		return holidayMap, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?year="+strconv.Itoa(year), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch holidays: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("holiday feed returned %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var rawHolidays []HolidayAPIData
	if err := json.Unmarshal(body, &rawHolidays); err != nil {
		return nil, fmt.Errorf("failed to decode holidays: %w", err)
	}

	for _, rawHoliday := range rawHolidays {
		if !rawHoliday.IsNationalHoliday {
			continue
		}
		// the feed does not zero-pad dates ("2025-1-1")
		if d, err := time.Parse("2006-1-2", rawHoliday.Date); err == nil {
			holidayMap[d.Format("2006-01-02")] = true
		}
	}
	return holidayMap, nil
}
