package perigee

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"gonum.org/v1/gonum/spatial/r3"
)

const catalogVersion = "1.0"

// Catalog lists the exported traces of a scene.
type Catalog struct {
	Version string         `json:"version"`
	Name    string         `json:"name"`
	Center  string         `json:"center"`
	Radius  float64        `json:"radius"`
	Tick    float64        `json:"tick"`
	Items   []*CatalogItem `json:"items"`
	Info    []string       `json:"info,omitempty"`
}

func (c *Catalog) String() string {
	return c.Name + "(" + c.Version + ")"
}

// CatalogItem definition.
type CatalogItem struct {
	Class   string           `json:"class"`
	Name    string           `json:"name,omitempty"`
	Color   string           `json:"color,omitempty"`
	Source  string           `json:"source"`
	Points  int              `json:"points"`
	Markers []*CatalogMarker `json:"markers,omitempty"`
}

// CatalogMarker definition.
type CatalogMarker struct {
	Kind     string    `json:"kind"`
	Label    string    `json:"label"`
	Position []float64 `json:"position"`
	Δi       float64   `json:"deltaInclination,omitempty"`
}

// Validate validates a catalog item.
func (i *CatalogItem) Validate() error {
	if !strings.HasSuffix(i.Source, ".xyz") {
		return fmt.Errorf("%s: only .xyz point files are supported", i.Source)
	}
	if i.Points == 0 {
		return fmt.Errorf("%s: no points", i.Source)
	}
	return nil
}

// ParsePoints reads the records of an .xyz file. Comments start with '#'.
func ParsePoints(r io.Reader) ([]r3.Vec, error) {
	var points []r3.Vec
	reader := csv.NewReader(r)
	reader.Comma = ' '
	reader.Comment = '#'
	reader.FieldsPerRecord = 3
	for {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		var xyz [3]float64
		for k, field := range record {
			if xyz[k], err = strconv.ParseFloat(field, 64); err != nil {
				line, _ := reader.FieldPos(k)
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		}
		points = append(points, r3.Vec{X: xyz[0], Y: xyz[1], Z: xyz[2]})
	}
	return points, nil
}

// Exporter writes scenes to the output directory of its configuration.
type Exporter struct {
	conf   Config
	logger log.Logger
}

// NewExporter returns a new Exporter. A nil logger disables logging.
func NewExporter(conf Config, logger log.Logger) (*Exporter, error) {
	if conf.OutputDir == "" {
		return nil, &ValidationError{"output.dir", "no output directory to export to"}
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Exporter{conf, log.With(logger, "component", "export")}, nil
}

// Export writes every trace of the scene, and the body wireframe, to its own .xyz file and lists
// them in a JSON catalog. It returns the path of the catalog.
// Only the last element of name is used, so that every file stays in the output directory.
func (e *Exporter) Export(name string, scene *Scene) (string, error) {
	name = filepath.Base(name)
	if name == "." || name == string(filepath.Separator) {
		return "", &ValidationError{"export name", "must name a file"}
	}
	if err := os.MkdirAll(e.conf.OutputDir, 0o755); err != nil {
		return "", err
	}
	c := Catalog{
		Version: catalogVersion,
		Name:    name,
		Center:  scene.Body.Name,
		Radius:  scene.Body.Radius,
		Tick:    e.conf.TickValue,
		Info:    scene.Info,
	}

	var wireframe []r3.Vec
	for _, meridian := range scene.Wireframe {
		wireframe = append(wireframe, meridian...)
	}
	body := &CatalogItem{Class: "body", Name: scene.Body.Name, Color: scene.Body.Color, Source: name + "-body.xyz", Points: len(wireframe)}
	if err := e.writePoints(body.Source, scene.Body.Name+" wireframe", wireframe); err != nil {
		return "", err
	}
	c.Items = append(c.Items, body)

	for k, trace := range scene.Traces {
		item := &CatalogItem{Class: "trace", Name: trace.Label, Color: trace.Color, Source: fmt.Sprintf("%s-%d.xyz", name, k), Points: len(trace.Points)}
		for _, m := range trace.Markers {
			item.Markers = append(item.Markers, &CatalogMarker{m.Kind.String(), m.Label, []float64{m.Point.X, m.Point.Y, m.Point.Z}, m.Δi})
		}
		if err := item.Validate(); err != nil {
			return "", err
		}
		if err := e.writePoints(item.Source, trace.Label, trace.Points); err != nil {
			return "", err
		}
		c.Items = append(c.Items, item)
	}

	marsh, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", err
	}
	path := filepath.Join(e.conf.OutputDir, "catalog-"+name+".json")
	if err := os.WriteFile(path, marsh, 0o644); err != nil {
		return "", err
	}
	level.Info(e.logger).Log("msg", "scene exported", "catalog", path, "items", len(c.Items))
	return path, nil
}

func (e *Exporter) writePoints(filename, label string, points []r3.Vec) (err error) {
	f, err := os.Create(filepath.Join(e.conf.OutputDir, filename))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	w := bufio.NewWriter(f)
	// Header
	fmt.Fprintf(w, `# Creation date (UTC): %s
# Trace: %s
# Records are <x> <y> <z>
#   Position in units of %g km
`, time.Now().UTC(), label, e.conf.TickValue)
	for _, p := range points {
		fmt.Fprintf(w, "%f %f %f\n", p.X, p.Y, p.Z)
	}
	if err = w.Flush(); err != nil {
		return err
	}
	level.Debug(e.logger).Log("file", f.Name(), "points", len(points))
	return nil
}
