package features

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

var ErrEmptyFeatures = errors.New("opensmile returned empty features")

// OpenSmile shells out to the SMILExtract CLI with an eGeMAPS functionals config.
type OpenSmile struct {
	bin    string
	config string
}

// NewOpenSmile resolves the binary on PATH. It fails when openSMILE is not
// installed, which callers use to pick the hash detector instead.
func NewOpenSmile(bin, config string) (*OpenSmile, error) {
	if bin == "" {
		bin = "SMILExtract"
	}
	path, err := exec.LookPath(bin)
	if err != nil {
		return nil, fmt.Errorf("opensmile not available: %w", err)
	}
	return &OpenSmile{bin: path, config: config}, nil
}

func (o *OpenSmile) Name() string { return "opensmile" }

func (o *OpenSmile) Extract(ctx context.Context, audio []byte, filename string) (Vector, error) {
	if len(audio) == 0 {
		return nil, errors.New("audio is empty")
	}

	dir, err := os.MkdirTemp("", "smile-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	suffix := strings.ToLower(filepath.Ext(filename))
	if suffix == "" {
		suffix = ".wav"
	}
	in := filepath.Join(dir, "input"+suffix)
	out := filepath.Join(dir, "features.csv")
	if err := os.WriteFile(in, audio, 0o600); err != nil {
		return nil, fmt.Errorf("write temp audio: %w", err)
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, o.bin,
		"-C", o.config,
		"-I", in,
		"-csvoutput", out,
		"-instname", "input",
		"-loglevel", "1",
	)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("SMILExtract: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	f, err := os.Open(out)
	if err != nil {
		return nil, fmt.Errorf("open features: %w", err)
	}
	defer f.Close()

	return ParseCSV(f)
}

// ParseCSV reads openSMILE's ';'-separated functionals output: a header row of
// feature names followed by one row per instance. Only the first row is used;
// non-numeric columns (name, frameTime) are skipped.
func ParseCSV(r io.Reader) (Vector, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyFeatures
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	row, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyFeatures
	}
	if err != nil {
		return nil, fmt.Errorf("read row: %w", err)
	}

	v := Vector{}
	for i, name := range header {
		if i >= len(row) {
			break
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
		if err != nil {
			continue
		}
		v[strings.Trim(strings.TrimSpace(name), "'")] = f
	}
	if len(v) == 0 {
		return nil, ErrEmptyFeatures
	}
	return v, nil
}
