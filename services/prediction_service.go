package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/Anky1388/SFIRN/config"
	"github.com/Anky1388/SFIRN/models"
)

// PredictionService talks to the external ML forecast service (Flask)
// that estimates next-day surplus per meal slot from attendance and
// seasonality features.
type PredictionService struct {
	baseURL string
	client  *http.Client
}

func NewPredictionService() *PredictionService {
	base := os.Getenv("ML_SERVICE_URL")
	if base == "" {
		base = "http://localhost:5001"
	}
	return &PredictionService{
		baseURL: base,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type trainingRow struct {
	Attendance      int     `json:"attendance"`
	DayOfWeek       int     `json:"day_of_week"`
	MealTypeEncoded int     `json:"meal_type_encoded"`
	IsHoliday       int     `json:"is_holiday"`
	WeekOfMonth     int     `json:"week_of_month"`
	AvgSurplus7d    float64 `json:"avg_surplus_7d"`
	Season          int     `json:"season"`
	TargetSurplusKg float64 `json:"target_surplus_kg"`
}

type predictFeatures struct {
	Attendance      int     `json:"attendance"`
	DayOfWeek       int     `json:"day_of_week"`
	MealTypeEncoded int     `json:"meal_type_encoded"`
	IsHoliday       int     `json:"is_holiday"`
	WeekOfMonth     int     `json:"week_of_month"`
	AvgSurplus7d    float64 `json:"avg_surplus_7d"`
	Season          int     `json:"season"`
}

var mealTypeEncoding = map[string]int{
	models.MealBreakfast: 0,
	models.MealLunch:     1,
	models.MealDinner:    2,
}

// Train ships the full meal-log history to the forecast service and
// returns its reported fit quality.
func (s *PredictionService) Train() (float64, error) {
	var logs []models.MealLog
	if err := config.DB.Order("date ASC").Find(&logs).Error; err != nil {
		return 0, err
	}
	if len(logs) == 0 {
		return 0, errors.New("no meal logs to train on")
	}

	rows := make([]trainingRow, 0, len(logs))
	for i, l := range logs {
		rows = append(rows, trainingRow{
			Attendance:      l.AttendanceCount,
			DayOfWeek:       int(l.Date.Weekday()),
			MealTypeEncoded: mealTypeEncoding[l.MealType],
			WeekOfMonth:     (l.Date.Day()-1)/7 + 1,
			AvgSurplus7d:    trailingAvgSurplus(logs, i),
			Season:          seasonOf(l.Date),
			TargetSurplusKg: l.SurplusKg,
		})
	}

	payload, err := json.Marshal(map[string]any{"data": rows})
	if err != nil {
		return 0, fmt.Errorf("failed to marshal training payload: %w", err)
	}

	resp, err := s.client.Post(s.baseURL+"/train", "application/json", bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("failed to call forecast service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read train response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("forecast service train error %d: %s", resp.StatusCode, string(body))
	}

	var out struct {
		R2Score float64 `json:"r2_score"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return 0, fmt.Errorf("failed to parse train JSON: %w", err)
	}
	return out.R2Score, nil
}

// PredictForDate asks the forecast service for each slot of targetDate,
// persists the prediction row, and returns it. An existing prediction for
// the date is replaced.
func (s *PredictionService) PredictForDate(targetDate time.Time, attendance int) (*models.Prediction, error) {
	var logs []models.MealLog
	if err := config.DB.Order("date ASC").Find(&logs).Error; err != nil {
		return nil, err
	}

	pred := &models.Prediction{
		TargetDate: dayStart(targetDate),
		Confidence: 0.75, // reported by the service per training run; static floor until then
	}

	for mealType, encoded := range mealTypeEncoding {
		feats := predictFeatures{
			Attendance:      attendance,
			DayOfWeek:       int(targetDate.Weekday()),
			MealTypeEncoded: encoded,
			WeekOfMonth:     (targetDate.Day()-1)/7 + 1,
			AvgSurplus7d:    trailingAvgSurplus(logs, len(logs)),
			Season:          seasonOf(targetDate),
		}
		kg, err := s.predictOne(feats)
		if err != nil {
			return nil, err
		}
		switch mealType {
		case models.MealBreakfast:
			pred.BreakfastSurplusKg = kg
		case models.MealLunch:
			pred.LunchSurplusKg = kg
		case models.MealDinner:
			pred.DinnerSurplusKg = kg
		}
	}

	_ = config.DB.Where("target_date = ?", pred.TargetDate).Delete(&models.Prediction{}).Error
	if err := config.DB.Create(pred).Error; err != nil {
		return nil, err
	}
	return pred, nil
}

func (s *PredictionService) predictOne(feats predictFeatures) (float64, error) {
	payload, err := json.Marshal(feats)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal predict payload: %w", err)
	}

	resp, err := s.client.Post(s.baseURL+"/predict", "application/json", bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("failed to call forecast service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read predict response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("forecast service predict error %d: %s", resp.StatusCode, string(body))
	}

	var out struct {
		PredictedSurplusKg float64 `json:"predicted_surplus_kg"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return 0, fmt.Errorf("failed to parse predict JSON: %w", err)
	}
	return out.PredictedSurplusKg, nil
}

func (s *PredictionService) GetForDate(targetDate time.Time) (*models.Prediction, error) {
	var pred models.Prediction
	if err := config.DB.Where("target_date = ?", dayStart(targetDate)).First(&pred).Error; err != nil {
		return nil, err
	}
	return &pred, nil
}

// trailingAvgSurplus averages surplus over the up-to-7 logs preceding
// index i (i may equal len(logs) to mean "after the last log").
func trailingAvgSurplus(logs []models.MealLog, i int) float64 {
	lo := i - 7
	if lo < 0 {
		lo = 0
	}
	if i <= lo {
		return 0
	}
	var sum float64
	for _, l := range logs[lo:i] {
		sum += l.SurplusKg
	}
	return sum / float64(i-lo)
}

func seasonOf(t time.Time) int {
	switch t.Month() {
	case time.December, time.January, time.February:
		return 0
	case time.March, time.April, time.May:
		return 1
	case time.June, time.July, time.August:
		return 2
	default:
		return 3
	}
}
