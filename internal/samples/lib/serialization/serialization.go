// Package serialization shows the encoding packages: JSON, base64, hex and CSV.
package serialization

import (
	"encoding/base64"
	"encoding/csv"
	"encoding/hex"
	"encoding/json"
	"strings"
)

type track struct {
	Title    string   `json:"title"`
	Seconds  int      `json:"seconds"`
	Featured []string `json:"featured,omitempty"`
}

// category: json

// Marshal encodes a struct using its field tags.
func Marshal() string {
	data, err := json.Marshal(track{Title: "So What", Seconds: 562})
	if err != nil {
		return err.Error()
	}
	return string(data)
}

// MarshalMap encodes map keys in sorted order.
func MarshalMap() string {
	data, _ := json.Marshal(map[string]int{"tenor": 2, "alto": 1})
	return string(data)
}

// Unmarshal decodes into a struct, ignoring unknown fields.
func Unmarshal() string {
	var t track
	err := json.Unmarshal([]byte(`{"title":"Blue in Green","seconds":337,"label":"Columbia"}`), &t)
	if err != nil {
		return err.Error()
	}
	return t.Title
}

// UnmarshalAny decodes into generic values, numbers become float64.
func UnmarshalAny() interface{} {
	var v interface{}
	_ = json.Unmarshal([]byte(`{"bpm": 120}`), &v)
	return v.(map[string]interface{})["bpm"]
}

// category: binary to text

// Base64 encodes bytes with the standard alphabet.
func Base64() string {
	return base64.StdEncoding.EncodeToString([]byte("groove"))
}

// Hex encodes each byte as two hex digits.
func Hex() string {
	return hex.EncodeToString([]byte("go"))
}

// category: csv

// ReadCSV parses records, handling quoted fields.
func ReadCSV() [][]string {
	r := csv.NewReader(strings.NewReader("name,year\n\"Kind of Blue\",1959\n"))
	records, err := r.ReadAll()
	if err != nil {
		return nil
	}
	return records
}
