package domain

import (
	"fmt"
	"strings"
)

type PortionSize string

const (
	PortionVerySmall PortionSize = "Very Small"
	PortionSmall     PortionSize = "Small"
	PortionMedium    PortionSize = "Medium"
	PortionLarge     PortionSize = "Large"
	PortionVeryLarge PortionSize = "Very Large"
)

var PortionSizes = []PortionSize{PortionVerySmall, PortionSmall, PortionMedium, PortionLarge, PortionVeryLarge}

type WaterIntake string

const (
	WaterUnder1L WaterIntake = "<1 L"
	Water1To2L   WaterIntake = "1-2 L"
	Water2To3L   WaterIntake = "2-3 L"
	WaterOver3L  WaterIntake = ">3 L"
)

var WaterIntakes = []WaterIntake{WaterUnder1L, Water1To2L, Water2To3L, WaterOver3L}

// BeverageLevel counts sugary or caffeinated drinks for the day.
type BeverageLevel string

const (
	BeveragesNone  BeverageLevel = "None"
	Beverages1To2  BeverageLevel = "1-2 cups"
	Beverages3To4  BeverageLevel = "3-4 cups"
	Beverages5Plus BeverageLevel = "5+ cups"
)

var BeverageLevels = []BeverageLevel{BeveragesNone, Beverages1To2, Beverages3To4, Beverages5Plus}

func ParsePortionSize(s string) (PortionSize, error) {
	return parseChoice(s, PortionSizes, "portion size")
}

func ParseWaterIntake(s string) (WaterIntake, error) {
	return parseChoice(s, WaterIntakes, "water intake")
}

func ParseBeverageLevel(s string) (BeverageLevel, error) {
	return parseChoice(s, BeverageLevels, "beverages")
}

// parseChoice matches s case-insensitively against the allowed values.
func parseChoice[T ~string](s string, allowed []T, what string) (T, error) {
	s = strings.TrimSpace(s)
	for _, v := range allowed {
		if strings.EqualFold(s, string(v)) {
			return v, nil
		}
	}
	names := make([]string, len(allowed))
	for i, v := range allowed {
		names[i] = fmt.Sprintf("%q", string(v))
	}
	return "", fmt.Errorf("%w: %s %q, expected one of %s", ErrInvalidChoice, what, s, strings.Join(names, ", "))
}

type MealEntry struct {
	Food        string      `json:"food"`
	PortionSize PortionSize `json:"portion_size"`
	Vegetables  bool        `json:"has_vegetables"`
	Protein     bool        `json:"has_protein"`
	Fried       bool        `json:"is_fried"`
}

type DinnerEntry struct {
	MealEntry
	Dessert  bool `json:"had_dessert"`
	After9PM bool `json:"after_9pm"`
}

type SnackEntry struct {
	HadSnacks bool          `json:"had_snacks"`
	Food      string        `json:"food,omitempty"`
	Beverages BeverageLevel `json:"beverages"`
}

type DailyLog struct {
	LogID       string      `json:"log_id,omitempty"`
	UserID      string      `json:"user_id"`
	LogDate     string      `json:"log_date"` // YYYY-MM-DD
	Breakfast   MealEntry   `json:"breakfast"`
	Lunch       MealEntry   `json:"lunch"`
	Dinner      DinnerEntry `json:"dinner"`
	Snacks      SnackEntry  `json:"snacks"`
	WaterIntake WaterIntake `json:"water_intake"`
	CreatedAt   string      `json:"created_at,omitempty"`
}

const LogDateLayout = "2006-01-02"
