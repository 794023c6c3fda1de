package store

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/percwalk/sim"
	"github.com/katalvlaran/percwalk/tensor"
)

// ErrNilArtifact indicates an attempt to persist a nil tensor.
var ErrNilArtifact = errors.New("store: artifact must not be nil")

// Artifact file suffixes, matching the original CTRW dump convention.
const (
	SuffixCluster = ".cluster"
	SuffixWalks   = ".walks"
	SuffixData    = ".data"
)

// Artifacts lists the files written for one run.
type Artifacts struct {
	Cluster string // 3×N coordinate table
	Walks   string // 2×walkLength×nWalks tensor, empty if no walks
	Data    string // (walkLength-1)×(nWalks+3) table, empty if no analysis
}

// writeFloats streams vals as little-endian float64 to path.
func writeFloats(path string, vals []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("store: create %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	if err := binary.Write(w, binary.LittleEndian, vals); err != nil {
		_ = f.Close()
		return fmt.Errorf("store: write %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("store: flush %s: %w", path, err)
	}
	return f.Close()
}

// readFloats reads exactly n little-endian float64 values from path.
func readFloats(path string, n int) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	defer f.Close()
	vals := make([]float64, n)
	if err := binary.Read(bufio.NewReader(f), binary.LittleEndian, vals); err != nil {
		return nil, fmt.Errorf("store: read %s: %w", path, err)
	}
	return vals, nil
}

// WriteDense dumps m to path as a headerless little-endian float64
// stream in row-major order.
func WriteDense(path string, m *tensor.Dense) error {
	if m == nil {
		return ErrNilArtifact
	}
	return writeFloats(path, m.Data())
}

// ReadDense reads a rows×cols Dense previously written with WriteDense.
// The caller supplies the shape; the file carries no header.
func ReadDense(path string, rows, cols int) (*tensor.Dense, error) {
	m, err := tensor.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	vals, err := readFloats(path, rows*cols)
	if err != nil {
		return nil, err
	}
	copy(m.Data(), vals)
	return m, nil
}

// WriteCube dumps q to path as a headerless little-endian float64
// stream, slice-major then row-major.
func WriteCube(path string, q *tensor.Cube) error {
	if q == nil {
		return ErrNilArtifact
	}
	return writeFloats(path, q.Data())
}

// ReadCube reads a rows×cols×slices Cube previously written with
// WriteCube.
func ReadCube(path string, rows, cols, slices int) (*tensor.Cube, error) {
	q, err := tensor.NewCube(rows, cols, slices)
	if err != nil {
		return nil, err
	}
	vals, err := readFloats(path, rows*cols*slices)
	if err != nil {
		return nil, err
	}
	copy(q.Data(), vals)
	return q, nil
}

// SaveResult writes the artifacts of res under the given path prefix:
// prefix.cluster always, prefix.walks and prefix.data when present.
func SaveResult(prefix string, res *sim.Result) (Artifacts, error) {
	if res == nil || res.Coords == nil {
		return Artifacts{}, ErrNilArtifact
	}
	arts := Artifacts{Cluster: prefix + SuffixCluster}
	if err := WriteDense(arts.Cluster, res.Coords); err != nil {
		return Artifacts{}, err
	}
	if res.Walks != nil && res.Walks.Coords != nil {
		arts.Walks = prefix + SuffixWalks
		if err := WriteCube(arts.Walks, res.Walks.Coords); err != nil {
			return Artifacts{}, err
		}
	}
	if res.Analysis != nil {
		arts.Data = prefix + SuffixData
		if err := WriteDense(arts.Data, res.Analysis.Table()); err != nil {
			return Artifacts{}, err
		}
	}
	return arts, nil
}
