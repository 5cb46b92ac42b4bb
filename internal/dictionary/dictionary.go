// Package dictionary reads word lists stored as JSON and normalizes them
// into ordered entries.
package dictionary

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/spf13/afero"
)

const (
	UnknownWord = "<unknown>"

	wordsKey       = "words"
	nameKey        = "name"
	descriptionKey = "description"
	wordKey        = "word"
)

var (
	ErrUnrecognizedStructure = errors.New("unrecognized dictionary structure")
	ErrInvalidEncoding       = errors.New("dictionary is not valid UTF-8")
	ErrTrailingData          = errors.New("unexpected data after dictionary")
)

type Entry struct {
	Word        string `json:"word"`
	Description string `json:"description"`
}

type Dictionary struct {
	Name        string  `json:"name,omitempty"`
	Description string  `json:"description,omitempty"`
	Entries     []Entry `json:"words"`
}

// Load reads and parses the dictionary file at path.
func Load(fs afero.Fs, path string) (Dictionary, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Dictionary{}, fmt.Errorf("read dictionary: %w", err)
	}
	d, err := Parse(data)
	if err != nil {
		return Dictionary{}, fmt.Errorf("parse dictionary %s: %w", path, err)
	}
	return d, nil
}

// LoadEntries is Load for callers that only want the words. A file that
// cannot be read or parsed yields an empty list.
func LoadEntries(fs afero.Fs, path string) []Entry {
	d, err := Load(fs, path)
	if err != nil {
		return []Entry{}
	}
	return d.Entries
}

// Parse accepts either a bare JSON list of entries or an object holding
// them under "words", with optional "name" and "description" metadata.
func Parse(data []byte) (Dictionary, error) {
	if !utf8.Valid(data) {
		return Dictionary{}, ErrInvalidEncoding
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return Dictionary{}, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return Dictionary{}, ErrTrailingData
	}

	var (
		d     Dictionary
		items []interface{}
	)
	switch v := raw.(type) {
	case map[string]interface{}:
		d.Name = metadata(v, nameKey)
		d.Description = metadata(v, descriptionKey)
		if list, ok := v[wordsKey].([]interface{}); ok {
			items = list
		}
	case []interface{}:
		items = v
	default:
		return Dictionary{}, ErrUnrecognizedStructure
	}

	d.Entries = make([]Entry, 0, len(items))
	for _, item := range items {
		d.Entries = append(d.Entries, normalize(item))
	}
	return d, nil
}

func normalize(item interface{}) Entry {
	obj, ok := item.(map[string]interface{})
	if !ok {
		return Entry{Word: stringify(item)}
	}

	e := Entry{Word: UnknownWord}
	if w, ok := obj[wordKey]; ok {
		e.Word = stringify(w)
	}
	if desc, ok := obj[descriptionKey]; ok {
		e.Description = stringify(desc)
	}
	return e
}

// metadata treats missing values and blank ones (null, false, zero, empty
// string, list or object) alike.
func metadata(obj map[string]interface{}, key string) string {
	v, ok := obj[key]
	if !ok || blank(v) {
		return ""
	}
	return stringify(v)
}

func blank(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case string:
		return t == ""
	case json.Number:
		f, err := t.Float64()
		return err == nil && f == 0
	case []interface{}:
		return len(t) == 0
	case map[string]interface{}:
		return len(t) == 0
	}
	return false
}

func stringify(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		if t {
			return "true"
		}
		return "false"
	case nil:
		return "null"
	}

	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
