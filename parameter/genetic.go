package parameter

// Genetic Algorithm - Engine Configuration
const (
	// GAPopulationSize is the number of organisms in each generation
	GAPopulationSize = 100

	// GAEliteCount is preserved best performers per generation
	GAEliteCount = 2

	// GAMutationRate is the per-bit flip probability (0.0-1.0)
	GAMutationRate = 0.1

	// GAGenerationLimit caps the number of generational steps in a run
	GAGenerationLimit = 1000

	// GAParallelism for batch evaluation, 1 keeps evaluation on the caller goroutine
	GAParallelism = 1
)

// Genetic Algorithm - Genome Encoding
const (
	// GAGenomeLength is the bit count of a genome, split evenly between x and y
	GAGenomeLength = 32

	// GADomainMin and GADomainMax bound both decoded axes
	GADomainMin = -5.0
	GADomainMax = 5.0
)

// Genetic Algorithm - Reporting
const (
	// GAReportCount is the number of evenly spaced checkpoints over a run
	GAReportCount = 100

	// GAReportLabelWidth aligns report labels in text and screen output
	GAReportLabelWidth = 9
)
