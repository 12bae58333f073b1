package experiments

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// writeResults dumps the matchup tallies under a timestamped subfolder.
func writeResults(results []MatchupResult) error {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("experiments", "selfplay", timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return fmt.Errorf("failed to create results directory: %w", err)
	}

	path := filepath.Join(baseDir, "results.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create results file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"black", "white", "games", "black_wins", "white_wins", "draws", "black_discs", "white_discs"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write results header: %w", err)
	}

	for _, r := range results {
		row := []string{
			r.Black.String(),
			r.White.String(),
			strconv.Itoa(r.Games),
			strconv.Itoa(r.BlackWins),
			strconv.Itoa(r.WhiteWins),
			strconv.Itoa(r.Draws),
			strconv.Itoa(r.BlackDiscs),
			strconv.Itoa(r.WhiteDiscs),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write results row: %w", err)
		}
	}
	return nil
}
