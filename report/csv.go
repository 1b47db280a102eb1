package report

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV writes one row per series with the BLER of every SNR found in results as
// columns. A series without a measurement at some SNR leaves that cell empty.
func WriteCSV(out io.Writer, results ...*Results) error {
	w := csv.NewWriter(out)

	snrs := SNRs(results...)
	header := []string{"Results", "Scheme"}
	for _, snr := range snrs {
		header = append(header, fmt.Sprintf("%v", snr))
	}

	err := w.Write(header)
	if err != nil {
		return err
	}

	for _, r := range results {
		for _, s := range r.Series {
			record := make([]string, len(header))
			record[0] = r.Title
			record[1] = s.Scheme
			for i, snr := range snrs {
				if v, has := s.BLER(snr); has {
					record[i+2] = fmt.Sprintf("%v", v)
				}
			}

			err = w.Write(record)
			if err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}
