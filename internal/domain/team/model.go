package team

import (
	"fmt"
	"strings"
)

// Record is one row of the league team directory.
type Record struct {
	TeamID         int64
	Key            string
	City           string
	Name           string
	PrimaryColor   string
	SecondaryColor string
	Active         bool
}

func (r Record) Validate() error {
	if strings.TrimSpace(r.Key) == "" {
		return fmt.Errorf("team key is required")
	}
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("team %s: name is required", r.Key)
	}

	return nil
}

func (r Record) Identity() Identity {
	return Identity{
		Key:            strings.ToUpper(strings.TrimSpace(r.Key)),
		Name:           strings.TrimSpace(strings.TrimSpace(r.City) + " " + strings.TrimSpace(r.Name)),
		PrimaryColor:   hexColor(r.PrimaryColor),
		SecondaryColor: hexColor(r.SecondaryColor),
	}
}

// Identity is the resolved team a report is generated for.
type Identity struct {
	Key            string
	Name           string
	PrimaryColor   string
	SecondaryColor string
}

// FamilyName is the last word of the canonical name, e.g. "Celtics".
func (i Identity) FamilyName() string {
	fields := strings.Fields(i.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// FileSlug replaces spaces so the name can be used in file names.
func (i Identity) FileSlug() string {
	return Slug(i.Name)
}

func Slug(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
}

func hexColor(value string) string {
	value = strings.TrimSpace(value)
	if value == "" || strings.HasPrefix(value, "#") {
		return value
	}
	return "#" + value
}
