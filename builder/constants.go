// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

// Method tags used to prefix errors with the constructor name.
const (
	MethodBuildGraph        = "BuildGraph"
	MethodFieldGraph        = "FieldGraph"
	MethodCycle             = "Cycle"
	MethodPath              = "Path"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodDisjoint          = "Disjoint"
)

// Minimum sizes.
const (
	MinCycleNodes     = 3
	MinPathNodes      = 2
	MinCompleteNodes  = 1
	MinPartitionSize  = 1
	MinDisjointCopies = 1
)

// Bipartite partition prefixes.
const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)
