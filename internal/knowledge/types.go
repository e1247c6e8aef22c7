package knowledge

// Concept is a theory topic with its book reference
type Concept struct {
	Name            string   `yaml:"name" json:"name"`
	Title           string   `yaml:"title" json:"title"`
	Volume          int      `yaml:"volume" json:"volume"`
	PageReference   string   `yaml:"page_reference" json:"page_reference"`
	Explanation     string   `yaml:"explanation" json:"explanation"`
	Examples        []string `yaml:"examples" json:"examples"`
	RelatedConcepts []string `yaml:"related_concepts" json:"related_concepts"`
}

// Progression is a canned progression with its analysis
type Progression struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Example     string   `yaml:"example" json:"example"`
	Analysis    string   `yaml:"analysis" json:"analysis"`
	Variations  []string `yaml:"variations" json:"variations"`
	Style       string   `yaml:"style" json:"style"`
}

// ExerciseTemplate is a practice exercise with its expected answer
type ExerciseTemplate struct {
	Level          int      `yaml:"level" json:"level"`
	Category       string   `yaml:"category" json:"category"`
	Description    string   `yaml:"description" json:"description"`
	Example        string   `yaml:"example" json:"example"`
	Solution       string   `yaml:"solution" json:"solution"`
	FeedbackPoints []string `yaml:"feedback_points" json:"feedback_points"`
}

// QualityNotes are the teaching notes for one chord quality
type QualityNotes struct {
	VolumeReference string   `yaml:"volume_reference" json:"volume_reference"`
	Approach        string   `yaml:"approach" json:"approach"`
	CommonMistakes  []string `yaml:"common_mistakes" json:"common_mistakes"`
	MusicalExamples []string `yaml:"musical_examples" json:"musical_examples"`
	TensionTips     []string `yaml:"tension_tips" json:"tension_tips"`
	RelatedConcepts []string `yaml:"related_concepts" json:"related_concepts"`
}

type conceptsFile struct {
	Concepts            []Concept `yaml:"concepts"`
	PedagogicalSequence []string  `yaml:"pedagogical_sequence"`
}

type progressionsFile struct {
	Progressions []Progression `yaml:"progressions"`
}

type exercisesFile struct {
	Exercises []ExerciseTemplate `yaml:"exercises"`
}

type pedagogyFile struct {
	Qualities                 map[string]QualityNotes `yaml:"qualities"`
	DefaultQuality            QualityNotes            `yaml:"default_quality"`
	SubstituteVolumeReference string                  `yaml:"substitute_volume_reference"`
	Tensions                  map[string]string       `yaml:"tensions"`
	Functions                 map[string]string       `yaml:"functions"`
	DefaultFunctionApproach   string                  `yaml:"default_function_approach"`
	ContextNotes              map[string]string       `yaml:"context_notes"`
}
