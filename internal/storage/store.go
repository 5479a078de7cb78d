// Package storage records headless runs on disk: a metadata.json per run
// plus a samples.csv of per-step diagnostics. Records are exports, not
// resumable simulation state.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/orbitlab/internal/engine"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string             `json:"id"`
	Scenario    string             `json:"scenario"`
	Timestamp   time.Time          `json:"timestamp"`
	Dt          float64            `json:"dt"`
	Duration    float64            `json:"duration"`
	Steps       int                `json:"steps"`
	FinalBodies int                `json:"final_bodies"`
	EnergyDrift float64            `json:"energy_drift"`
	Metrics     map[string]float64 `json:"metrics"`
}

var sampleHeader = []string{"time", "bodies", "energy", "px", "py", "angular_momentum"}

// Save writes one run record and returns its ID.
func (s *Store) Save(scenarioName string, dt, duration float64, result *engine.RunResult, metricVals map[string]float64) (string, error) {
	runID := fmt.Sprintf("%s_%d", scenarioName, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	finalBodies := 0
	if n := len(result.Samples); n > 0 {
		finalBodies = result.Samples[n-1].BodyCount
	}

	meta := RunMetadata{
		ID:          runID,
		Scenario:    scenarioName,
		Timestamp:   time.Now(),
		Dt:          dt,
		Duration:    duration,
		Steps:       result.StepsTaken,
		FinalBodies: finalBodies,
		EnergyDrift: result.EnergyDrift,
		Metrics:     metricVals,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "samples.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(sampleHeader); err != nil {
		return "", err
	}
	for _, sm := range result.Samples {
		row := []string{
			strconv.FormatFloat(sm.Time, 'f', 6, 64),
			strconv.Itoa(sm.BodyCount),
			strconv.FormatFloat(sm.Energy, 'f', 6, 64),
			strconv.FormatFloat(sm.Px, 'f', 6, 64),
			strconv.FormatFloat(sm.Py, 'f', 6, 64),
			strconv.FormatFloat(sm.AngularL, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadSamples reads a run's diagnostic series back.
func (s *Store) LoadSamples(runID string) ([]engine.Sample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "samples.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []engine.Sample{}, nil
	}

	samples := make([]engine.Sample, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) != len(sampleHeader) {
			continue
		}
		var sm engine.Sample
		var bad bool
		for i, parse := range []*float64{&sm.Time, nil, &sm.Energy, &sm.Px, &sm.Py, &sm.AngularL} {
			if parse == nil {
				n, err := strconv.Atoi(rec[i])
				if err != nil {
					bad = true
					break
				}
				sm.BodyCount = n
				continue
			}
			v, err := strconv.ParseFloat(rec[i], 64)
			if err != nil {
				bad = true
				break
			}
			*parse = v
		}
		if !bad {
			samples = append(samples, sm)
		}
	}
	return samples, nil
}
