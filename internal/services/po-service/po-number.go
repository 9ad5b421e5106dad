package poService

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// defaultPoNo is the 10-digit SAP-style base. The first run ever issues
// defaultPoNo + 1.
const defaultPoNo = 4500000000

// GetPoNumber returns the PO number for the given date, advancing the
// persisted counter at most once per distinct date. A re-run for an already
// processed date reuses the stored number and leaves the state untouched.
func GetPoNumber(today string, stateFile string) (int64, error) {
	state, err := readSequenceState(stateFile)
	if err != nil {
		return 0, err
	}

	if state.LastDate == today {
		return state.LastPoNo, nil
	}

	state.LastPoNo++
	state.LastDate = today

	if err := writeSequenceState(stateFile, state); err != nil {
		return 0, err
	}

	return state.LastPoNo, nil
}

func readSequenceState(stateFile string) (SequenceState, error) {
	state := SequenceState{LastDate: "", LastPoNo: defaultPoNo}

	data, err := os.ReadFile(stateFile)
	if os.IsNotExist(err) {
		return state, nil
	}
	if err != nil {
		return state, fmt.Errorf("failed to read po number state: %w", err)
	}

	if err := json.Unmarshal(data, &state); err != nil {
		return state, fmt.Errorf("failed to parse po number state: %w", err)
	}

	return state, nil
}

// writeSequenceState persists the counter with a write-then-rename so a crash
// mid-write never leaves a truncated state file.
func writeSequenceState(stateFile string, state SequenceState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal po number state: %w", err)
	}

	tmpFile := stateFile + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write po number state: %w", err)
	}

	if err := os.Rename(tmpFile, stateFile); err != nil {
		return fmt.Errorf("failed to replace po number state: %w", err)
	}

	return nil
}

func StateFilePath() string {
	stateFile := os.Getenv("po_state_file")
	if stateFile == "" {
		stateFile = filepath.Join(".", "po_number_state.json")
	}

	return stateFile
}
