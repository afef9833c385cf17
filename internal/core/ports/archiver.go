package ports

// Archiver compresses a staging root into a single archive whose internal
// paths are rooted at the staging root's own name.
//
//go:generate mockgen -source=archiver.go -destination=mocks/mock_archiver.go -package=mocks
type Archiver interface {
	Archive(stagingRoot, outPath string) error
}
