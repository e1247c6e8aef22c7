package embedded

import (
	_ "embed"
)

// Embed all knowledge-base data files
//
//go:embed data/knowledge/concepts.yaml
var ConceptsYAML []byte

//go:embed data/knowledge/progressions.yaml
var ProgressionsYAML []byte

//go:embed data/knowledge/exercises.yaml
var ExercisesYAML []byte

//go:embed data/knowledge/pedagogy.yaml
var PedagogyYAML []byte
