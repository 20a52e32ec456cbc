package configs

// Storage configures where the campaign document lives on disk. The
// parent directory is created on demand by the repository, so Path may
// point into a directory that does not exist yet.
type Storage struct {
	// Path is the location of the serialized campaign collection.
	Path string `env:"PATH" envDefault:"data/campaigns.json"`
}
