// Package report stores BLER results and turns them into CSV files and charts.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/nathanhack/radioae/benchmarking"
)

// Series is the BLER curve of one scheme.
type Series struct {
	Scheme     string               `json:"scheme"`
	BlockSize  int                  `json:"block_size"`
	ChannelUse int                  `json:"channel_use"`
	Points     []benchmarking.Point `json:"points"`
}

// BLER returns the BLER measured at snr.
func (s Series) BLER(snr float64) (float64, bool) {
	for _, p := range s.Points {
		if p.SNR == snr {
			return p.BLER, true
		}
	}
	return 0, false
}

// Results is everything one experiment produced.
type Results struct {
	Title  string   `json:"title"`
	Seed   int64    `json:"seed"`
	Series []Series `json:"series"`
}

// SNRs returns the sorted union of the SNRs of every series in results.
func SNRs(results ...*Results) []float64 {
	seen := make(map[float64]bool)
	for _, r := range results {
		for _, s := range r.Series {
			for _, p := range s.Points {
				seen[p.SNR] = true
			}
		}
	}
	snrs := make([]float64, 0, len(seen))
	for snr := range seen {
		snrs = append(snrs, snr)
	}
	sort.Float64s(snrs)
	return snrs
}

func LoadResults(filepath string) (*Results, error) {
	bs, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error while reading file %v: %v", filepath, err)
	}

	var results Results
	err = json.Unmarshal(bs, &results)
	if err != nil {
		return nil, fmt.Errorf("error while unmarshalling file %v: %v", filepath, err)
	}
	return &results, nil
}

// LoadAll loads every results file in order.
func LoadAll(filepaths ...string) ([]*Results, error) {
	results := make([]*Results, len(filepaths))
	for i, f := range filepaths {
		r, err := LoadResults(f)
		if err != nil {
			return nil, err
		}
		results[i] = r
	}
	return results, nil
}

func SaveResults(filepath string, results *Results) error {
	bs, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("error serializing results: %v", err)
	}

	err = os.WriteFile(filepath, bs, 0644)
	if err != nil {
		return fmt.Errorf("error while saving results to %v: %v", filepath, err)
	}
	return nil
}
