package routefile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/UnknownOlympus/compass/internal/models"
)

// document mirrors models.Input with the values kept raw, so that a mistyped
// value reaches the calculator as a missing or non-numeric field instead of
// failing the whole file. The shape itself (objects and arrays) is still strict.
type document struct {
	NumberOfPeople json.RawMessage `json:"number_of_people"`
	Routes         []route         `json:"routes"`
}

type route struct {
	Location   json.RawMessage `json:"location"`
	Directions []direction     `json:"directions"`
}

type direction struct {
	Start json.RawMessage `json:"start"`
	Turn  json.RawMessage `json:"turn"`
	Walk  json.RawMessage `json:"walk"`
}

// Load reads the calculation input from a JSON file at path.
func Load(path string) (models.Input, error) {
	file, err := os.Open(path)
	if err != nil {
		return models.Input{}, fmt.Errorf("failed to open route file: %w", err)
	}
	defer file.Close()

	return Decode(file)
}

// Decode reads the calculation input from a JSON document. Unknown keys are rejected.
// Numbers may also be given as numeric strings.
//
// Example:
//
//	{"number_of_people": 1, "routes": [{"location": [0, 0], "directions": [{"start": 90, "walk": 5}]}]}
func Decode(r io.Reader) (models.Input, error) {
	var doc document

	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&doc); err != nil {
		return models.Input{}, fmt.Errorf("failed to decode route file: %w", err)
	}

	input := models.Input{NumberOfPeople: count(doc.NumberOfPeople)}
	if doc.Routes == nil {
		return input, nil
	}

	input.Routes = make([]models.Route, 0, len(doc.Routes))
	for _, raw := range doc.Routes {
		input.Routes = append(input.Routes, models.Route{
			Location:   location(raw.Location),
			Directions: directions(raw.Directions),
		})
	}

	return input, nil
}

// location returns nil unless raw is an array. Items that are not numbers become NaN.
func location(raw json.RawMessage) []float64 {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return nil
	}

	coords := make([]float64, 0, len(items))
	for _, item := range items {
		if v := number(item); v != nil {
			coords = append(coords, *v)
		} else {
			coords = append(coords, math.NaN())
		}
	}
	return coords
}

func directions(items []direction) []models.Direction {
	if items == nil {
		return nil
	}

	result := make([]models.Direction, 0, len(items))
	for _, item := range items {
		result = append(result, models.Direction{
			Start: number(item.Start),
			Turn:  number(item.Turn),
			Walk:  number(item.Walk),
		})
	}
	return result
}

// number reads a JSON number or a numeric string. Anything else, null included, is absent.
func number(raw json.RawMessage) *float64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	var text string
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return nil
		}
	} else {
		text = string(raw)
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return nil
	}
	return &v
}

// count reads the number of people, truncating fractions. Anything else counts as 0.
func count(raw json.RawMessage) int {
	v := number(raw)
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0
	}
	return int(*v)
}
