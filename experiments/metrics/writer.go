package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type RunConfig struct {
	Games      int
	Seed       uint64
	Circles    int
	Pieces     int
	MaxTurns   int
	EdgeLength float64
}

type GameRecord struct {
	ID    string // uuid of the game
	Seed  uint64 // board seed
	Nodes int
	Edges int
	GameMetric
}

type MoveRecord struct {
	Game string // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped folder for one run under root/name.
func NewWriter(root, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteRunConfig(config RunConfig) error {
	header := []string{"games", "seed", "circles", "pieces", "max_turns", "max_edge_distance"}
	rows := [][]string{{
		strconv.Itoa(config.Games),
		strconv.FormatUint(config.Seed, 10),
		strconv.Itoa(config.Circles),
		strconv.Itoa(config.Pieces),
		strconv.Itoa(config.MaxTurns),
		strconv.FormatFloat(config.EdgeLength, 'f', -1, 64),
	}}
	return w.write("run_config.csv", "run config", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{
		"id", "seed", "nodes", "edges", "starting_player", "winner", "points1", "points2",
		"moves", "captures", "passes", "start_time", "end_time", "duration",
	}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.ID,
			strconv.FormatUint(record.Seed, 10),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Edges),
			strconv.Itoa(record.StartingPlayer),
			record.Winner,
			strconv.Itoa(record.Points1),
			strconv.Itoa(record.Points2),
			strconv.Itoa(record.TotalMoves),
			strconv.Itoa(record.Captures),
			strconv.Itoa(record.Passes),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.write("game_records.csv", "game records", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{
		"game", "step", "player", "piece", "from", "to", "captured", "scored", "passed",
		"pip_count1", "pip_count2",
	}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Game,
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Player),
			strconv.Itoa(record.Piece),
			strconv.Itoa(record.From),
			strconv.Itoa(record.To),
			strconv.FormatBool(record.Captured),
			strconv.FormatBool(record.Scored),
			strconv.FormatBool(record.Passed),
			strconv.Itoa(record.PipCount1),
			strconv.Itoa(record.PipCount2),
		})
	}
	return w.write("move_records.csv", "move records", header, rows)
}

func (w *Writer) write(file, what string, header []string, rows [][]string) error {
	// Create a file
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s file: %w", what, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	// Write header
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", what, err)
	}

	// Write each row
	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", what, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", what, err)
	}
	return nil
}
