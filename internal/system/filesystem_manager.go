package system

// PathChecker defines the filesystem queries the command layer depends on.
// This allows for mocking the file system in tests.
type PathChecker interface {
	PathExists(path string) (bool, error)
	DirectoryExists(path string) (bool, error)
	Abs(path string) (string, error)
}
