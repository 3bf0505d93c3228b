package config

// Config is the top-level YAML structure for the wordladder CLI.
type Config struct {
	Log     LogConf     `yaml:"log"`
	Graph   GraphConf   `yaml:"graph"`
	Search  SearchConf  `yaml:"search"`
	Metrics MetricsConf `yaml:"metrics"`
}

// LogConf selects the slog handler and level.
type LogConf struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// GraphConf tunes the adjacency build.
type GraphConf struct {
	// Alphabet lists the candidate letters; empty means a–z, "auto" derives
	// the set from the vocabulary itself.
	Alphabet string `yaml:"alphabet"`
	Workers  int    `yaml:"workers"`
}

// SearchConf tunes pair solving.
type SearchConf struct {
	Algorithm         string `yaml:"algorithm"` // astar | bfs
	Workers           int    `yaml:"workers"`
	ComponentPrecheck bool   `yaml:"component_precheck"`
}

// MetricsConf controls the Prometheus textfile export.
type MetricsConf struct {
	Textfile string `yaml:"textfile"` // empty disables the export
}

// AlphabetAuto is the Alphabet value that derives letters from the vocabulary.
const AlphabetAuto = "auto"
