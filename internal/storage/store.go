package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/odelab/internal/analysis"
	"github.com/san-kum/odelab/internal/dynamo"
	"github.com/san-kum/odelab/internal/experiment"
)

const (
	metadataFile  = "metadata.json"
	runsFile      = "runs.csv"
	referenceFile = "reference.csv"
	sweepFile     = "sweep.csv"
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

type MethodInfo struct {
	Name  string `json:"name"`
	Order int    `json:"order"`
}

type RunMetadata struct {
	ID        string                `json:"id"`
	Timestamp time.Time             `json:"timestamp"`
	Problem   dynamo.Problem        `json:"problem"`
	Methods   []MethodInfo          `json:"methods"`
	HasSweep  bool                  `json:"has_sweep"`
	Faults    []*dynamo.DomainError `json:"faults,omitempty"`
	Metrics   map[string]float64    `json:"metrics"`
}

// Save writes the report under a new run directory and returns its id.
func (s *Store) Save(report *experiment.Report) (string, error) {
	runID := fmt.Sprintf("run_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: report.Timestamp,
		Problem:   report.Problem,
		HasSweep:  report.Sweep != nil,
		Faults:    report.Faults,
		Metrics:   report.Metrics(),
	}
	for _, run := range report.Runs {
		meta.Methods = append(meta.Methods, MethodInfo{Name: run.Method, Order: run.Order})
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writeCSV(filepath.Join(runDir, runsFile), RunsTable(report.Runs)); err != nil {
		return "", err
	}
	ref := [][]string{{"x", "exact"}}
	for i, x := range report.Reference.Grid {
		ref = append(ref, []string{formatFloat(x), formatFloat(report.Reference.Exact[i])})
	}
	if err := writeCSV(filepath.Join(runDir, referenceFile), ref); err != nil {
		return "", err
	}
	if report.Sweep != nil {
		if err := writeCSV(filepath.Join(runDir, sweepFile), sweepTable(report.Sweep)); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// List returns the metadata of every stored run, oldest first.
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
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	return &meta, nil
}

// LoadRuns reads the per-method grids, trajectories and error series.
func (s *Store) LoadRuns(runID string) ([]analysis.Run, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}
	cols, err := readColumns(filepath.Join(s.baseDir, runID, runsFile))
	if err != nil {
		return nil, err
	}

	grid := dynamo.Grid(cols["x"])
	runs := make([]analysis.Run, 0, len(meta.Methods))
	for _, m := range meta.Methods {
		runs = append(runs, analysis.Run{
			Method: m.Name,
			Order:  m.Order,
			Grid:   grid,
			Approx: cols[m.Name],
			LTE:    cols[m.Name+"_lte"],
			GTE:    cols[m.Name+"_gte"],
		})
	}
	return runs, nil
}

func (s *Store) LoadReference(runID string) (experiment.Reference, error) {
	cols, err := readColumns(filepath.Join(s.baseDir, runID, referenceFile))
	if err != nil {
		return experiment.Reference{}, err
	}
	return experiment.Reference{Grid: dynamo.Grid(cols["x"]), Exact: cols["exact"]}, nil
}

func (s *Store) LoadSweep(runID string) (*analysis.SweepResult, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}
	if !meta.HasSweep {
		return nil, nil
	}
	cols, err := readColumns(filepath.Join(s.baseDir, runID, sweepFile))
	if err != nil {
		return nil, err
	}

	res := &analysis.SweepResult{Worst: make(map[string]dynamo.Series)}
	for _, n := range cols["n"] {
		res.Steps = append(res.Steps, int(n))
	}
	for _, m := range meta.Methods {
		res.Methods = append(res.Methods, m.Name)
		res.Worst[m.Name] = cols[m.Name]
	}
	return res, nil
}

// LoadReport reassembles a stored report.
func (s *Store) LoadReport(runID string) (*experiment.Report, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}
	runs, err := s.LoadRuns(runID)
	if err != nil {
		return nil, err
	}
	ref, err := s.LoadReference(runID)
	if err != nil {
		return nil, err
	}
	sweep, err := s.LoadSweep(runID)
	if err != nil {
		return nil, err
	}
	return &experiment.Report{
		Problem:   meta.Problem,
		Timestamp: meta.Timestamp,
		Reference: ref,
		Runs:      runs,
		Sweep:     sweep,
		Faults:    meta.Faults,
	}, nil
}

// RunsTable lays out runs as CSV rows: x, then approx, lte and gte per method.
func RunsTable(runs []analysis.Run) [][]string {
	if len(runs) == 0 {
		return [][]string{{"x"}}
	}
	header := []string{"x"}
	for _, run := range runs {
		header = append(header, run.Method, run.Method+"_lte", run.Method+"_gte")
	}
	rows := [][]string{header}
	for i, x := range runs[0].Grid {
		row := []string{formatFloat(x)}
		for _, run := range runs {
			row = append(row, formatFloat(run.Approx[i]), formatFloat(run.LTE[i]), formatFloat(run.GTE[i]))
		}
		rows = append(rows, row)
	}
	return rows
}

func sweepTable(res *analysis.SweepResult) [][]string {
	rows := [][]string{append([]string{"n"}, res.Methods...)}
	for i, n := range res.Steps {
		row := []string{strconv.Itoa(n)}
		for _, m := range res.Methods {
			row = append(row, formatFloat(res.Worst[m][i]))
		}
		rows = append(rows, row)
	}
	return rows
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func writeJSON(path string, v any) error {
	return writeFile(path, func(f *os.File) error {
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	})
}

func writeCSV(path string, rows [][]string) error {
	return writeFile(path, func(f *os.File) error {
		return csv.NewWriter(f).WriteAll(rows)
	})
}

// writeFile creates path, fills it with write and syncs it. A failed write
// removes the partial file so List never sees it.
func writeFile(path string, write func(f *os.File) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	if err := write(f); err != nil {
		return err
	}
	return f.Sync()
}

// readColumns parses a CSV file with a header row into named columns.
func readColumns(path string) (map[string]dynamo.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	if len(records) == 0 {
		return nil, errors.New(filepath.Base(path) + ": missing header")
	}

	header := records[0]
	cols := make(map[string]dynamo.Series, len(header))
	for _, name := range header {
		cols[name] = make(dynamo.Series, 0, len(records)-1)
	}
	for line, record := range records[1:] {
		for j, raw := range record {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("%s line %d: %w", filepath.Base(path), line+2, err)
			}
			cols[header[j]] = append(cols[header[j]], v)
		}
	}
	return cols, nil
}
