package player

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const centimetersPerInch = 2.54

// Record is one roster player as published by the stats provider.
type Record struct {
	PlayerID     int64
	FirstName    string
	LastName     string
	Position     string
	Height       int // inches
	Weight       int // pounds
	BirthDate    string
	BirthCountry string
	College      string
	Salary       *int64
}

func (r Record) Validate() error {
	if r.PlayerID <= 0 {
		return fmt.Errorf("player id must be greater than zero")
	}
	if strings.TrimSpace(r.FirstName) == "" && strings.TrimSpace(r.LastName) == "" {
		return fmt.Errorf("player name is required")
	}
	if r.Height < 0 || r.Weight < 0 {
		return fmt.Errorf("player height and weight must not be negative")
	}

	return nil
}

func (r Record) Name() string {
	return strings.TrimSpace(r.FirstName + " " + r.LastName)
}

// HeightCentimeters converts the height to centimetres rounded to one decimal.
func (r Record) HeightCentimeters() float64 {
	return math.Round(float64(r.Height)*centimetersPerInch*10) / 10
}

func (r Record) HeightLabel() string {
	return strconv.FormatFloat(r.HeightCentimeters(), 'f', 1, 64) + " cm"
}

// BirthDay trims the provider timestamp down to YYYY-MM-DD.
func (r Record) BirthDay() string {
	value := strings.TrimSpace(r.BirthDate)
	if len(value) > 10 {
		return value[:10]
	}
	return value
}

func (r Record) SalaryLabel() string {
	if r.Salary == nil {
		return "-"
	}
	return strconv.FormatInt(*r.Salary, 10)
}
