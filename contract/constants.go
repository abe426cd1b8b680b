package contract

// -----------------------------------------------------------------------------
// Fee Math
// -----------------------------------------------------------------------------

// BpsBase is the basis-point denominator, 10000 bp == 100%.
const BpsBase = 10000

// -----------------------------------------------------------------------------
// Schema
// -----------------------------------------------------------------------------

// SchemaVersion is the storage layout this build reads and writes.
const SchemaVersion = 1

// -----------------------------------------------------------------------------
// Singleton Keys
// -----------------------------------------------------------------------------

const (
	// ContractConfigKey holds the encoded GlobalConfig.
	ContractConfigKey = "cfg"
	// SchemaKey holds the decimal storage version.
	SchemaKey = "schema"
)

// -----------------------------------------------------------------------------
// Counter Keys
// -----------------------------------------------------------------------------

const (
	// ProjectsCount holds the next project id.
	ProjectsCount = "count:proj"
	// TokensCount holds the next token id, shared by all projects.
	TokensCount = "count:tok"
)

// -----------------------------------------------------------------------------
// Storage Key Prefixes
// -----------------------------------------------------------------------------

const (
	// kProjectMeta stores the immutable part of a project.
	kProjectMeta byte = 0x01
	// kProjectStatus stores minted count and pause flag, the only mutable project bits.
	kProjectStatus byte = 0x02
	// kToken stores encoded Token records.
	kToken byte = 0x03
	// kOwnerBalance counts tokens held per owner.
	kOwnerBalance byte = 0x04
)

// -----------------------------------------------------------------------------
// Index Prefixes
// -----------------------------------------------------------------------------

const (
	// maxChunkSize caps ids per index chunk so single values stay small.
	maxChunkSize = 512
	// idxAuthorProjects + author hex lists the projects of an author.
	idxAuthorProjects = "idx:author:"
	// idxOwnerTokens + owner hex lists tokens minted to an owner.
	idxOwnerTokens = "idx:owner:"
)
