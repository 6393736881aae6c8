// Package seed содержит набор данных для первичного наполнения БД
package seed

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

//go:embed data.json
var defaultData []byte

var (
	// ErrDecode возвращается, когда набор данных не удалось разобрать
	ErrDecode = errors.New("seed: failed to decode dataset")

	// ErrEmpty возвращается, когда в наборе нет дней недели или времени
	ErrEmpty = errors.New("seed: dataset has no weekdays or times")
)

// Weekday день недели в наборе (порядок в списке задает порядок отображения)
type Weekday struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Goal цель занятий
type Goal struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Sign  string `json:"sign"`
}

// Tutor преподаватель с целями и сеткой свободного времени
type Tutor struct {
	ID      int64                      `json:"id"`
	Name    string                     `json:"name"`
	About   string                     `json:"about"`
	Rating  float64                    `json:"rating"`
	Picture string                     `json:"picture"`
	Price   int                        `json:"price"`
	Goals   []string                   `json:"goals"`
	Free    map[string]map[string]bool `json:"free"` // день -> время -> свободно
}

// Dataset набор данных для наполнения БД
type Dataset struct {
	Weekdays []Weekday `json:"weekdays"`
	Times    []string  `json:"times"`
	Goals    []Goal    `json:"goals"`
	Tutors   []Tutor   `json:"tutors"`
}

// Default встроенный набор данных
func Default() (*Dataset, error) {
	return Decode(defaultData)
}

// Load читает набор данных из файла
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seed: open %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("seed: read %s: %w", path, err)
	}

	return Decode(data)
}

// Decode разбирает набор данных из JSON
func Decode(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	if len(ds.Weekdays) == 0 || len(ds.Times) == 0 {
		return nil, ErrEmpty
	}

	return &ds, nil
}
