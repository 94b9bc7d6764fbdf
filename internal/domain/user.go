package domain

import "math"

type User struct {
	UserID    string   `json:"user_id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Age       int      `json:"age"`
	Gender    string   `json:"gender"`
	Height    float64  `json:"height"`           // centimeters
	Weight    *float64 `json:"weight,omitempty"` // kilograms
	CreatedAt string   `json:"created_at,omitempty"`
}

// NewUser is the registration payload sent to the backend.
type NewUser struct {
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Age    int      `json:"age"`
	Gender string   `json:"gender"`
	Height float64  `json:"height"`
	Weight *float64 `json:"weight,omitempty"`
}

// BMI returns weight / (height in meters)^2 rounded to one decimal.
// ok is false unless both height and weight are known and positive.
func (u User) BMI() (bmi float64, ok bool) {
	if u.Weight == nil || *u.Weight <= 0 || u.Height <= 0 {
		return 0, false
	}
	h := u.Height / 100.0
	return math.Round(*u.Weight/(h*h)*10) / 10, true
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}
