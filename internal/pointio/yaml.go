package pointio

import (
	"io"

	"github.com/osuushi/hull/internal"
	"gopkg.in/yaml.v3"
)

// Serialized form of a trace, for handing to whatever plays it back.
type TraceDocument struct {
	Algorithm  string         `yaml:"algorithm"`
	Points     [][]float64    `yaml:"points,flow"`
	TotalSteps int            `yaml:"total_steps"`
	Steps      []StepDocument `yaml:"steps"`
}

type StepDocument struct {
	Step         int         `yaml:"step"`
	Phase        string      `yaml:"phase"`
	Description  string      `yaml:"description,omitempty"`
	Hull         [][]float64 `yaml:"hull,flow"`
	Active       [][]float64 `yaml:"active,flow"`
	DividingLine [][]float64 `yaml:"dividing_line,flow,omitempty"`
	TestPoints   [][]float64 `yaml:"test_points,flow,omitempty"`
}

func NewTraceDocument(algorithm string, points []Point, steps []internal.Step) TraceDocument {
	doc := TraceDocument{
		Algorithm:  algorithm,
		Points:     pairs(points),
		TotalSteps: len(steps),
		Steps:      make([]StepDocument, 0, len(steps)),
	}
	for _, step := range steps {
		stepDoc := StepDocument{
			Step:        step.Index,
			Phase:       step.Phase.String(),
			Description: step.Note,
			Hull:        pairs(step.Hull),
			Active:      pairs(step.Active),
			TestPoints:  pairs(step.Candidates),
		}
		if step.Line != nil {
			stepDoc.DividingLine = pairs([]Point{step.Line.Start, step.Line.End})
		}
		doc.Steps = append(doc.Steps, stepDoc)
	}
	return doc
}

func WriteTraceYAML(w io.Writer, doc TraceDocument) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return err
	}
	return encoder.Close()
}

func ReadTraceYAML(r io.Reader) (TraceDocument, error) {
	var doc TraceDocument
	err := yaml.NewDecoder(r).Decode(&doc)
	return doc, err
}

func pairs(points []Point) [][]float64 {
	if points == nil {
		return nil
	}
	result := make([][]float64, len(points))
	for i, p := range points {
		result[i] = []float64{p.X, p.Y}
	}
	return result
}

// Serialized form of a collision search between two hulls.
type CollisionDocument struct {
	Algorithm  string                  `yaml:"algorithm"`
	HullA      [][]float64             `yaml:"hull_a,flow"`
	HullB      [][]float64             `yaml:"hull_b,flow"`
	Colliding  bool                    `yaml:"colliding"`
	Iterations []CollisionStepDocument `yaml:"iterations"`
}

type CollisionStepDocument struct {
	Iteration int         `yaml:"iteration"`
	Direction []float64   `yaml:"direction,flow"`
	Support   []float64   `yaml:"support_point,flow"`
	Simplex   [][]float64 `yaml:"simplex,flow"`
	Outcome   string      `yaml:"outcome"`
	Reason    string      `yaml:"reason"`
}

func NewCollisionDocument(algorithm string, hullA, hullB []Point, colliding bool, steps []internal.CollisionStep) CollisionDocument {
	doc := CollisionDocument{
		Algorithm:  algorithm,
		HullA:      pairs(hullA),
		HullB:      pairs(hullB),
		Colliding:  colliding,
		Iterations: make([]CollisionStepDocument, 0, len(steps)),
	}
	for _, step := range steps {
		doc.Iterations = append(doc.Iterations, CollisionStepDocument{
			Iteration: step.Iteration,
			Direction: []float64{step.Direction.X, step.Direction.Y},
			Support:   []float64{step.Support.X, step.Support.Y},
			Simplex:   pairs(step.Simplex),
			Outcome:   step.Outcome.String(),
			Reason:    step.Note,
		})
	}
	return doc
}

func WriteCollisionYAML(w io.Writer, doc CollisionDocument) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return err
	}
	return encoder.Close()
}

func ReadCollisionYAML(r io.Reader) (CollisionDocument, error) {
	var doc CollisionDocument
	err := yaml.NewDecoder(r).Decode(&doc)
	return doc, err
}
