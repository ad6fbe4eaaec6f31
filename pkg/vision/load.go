package vision

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Decode reads an AnalysisResult from JSON.
func Decode(r io.Reader) (*AnalysisResult, error) {
	var result AnalysisResult
	dec := json.NewDecoder(r)
	if err := dec.Decode(&result); err != nil {
		return nil, fmt.Errorf("parsing analysis JSON: %w", err)
	}
	return &result, nil
}

// Load reads an AnalysisResult from a JSON file.
func Load(path string) (*AnalysisResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading analysis file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}
