package filestorage

type FileStorage interface {
	Prepare() error
	Path(string) string
	Exists(string) bool
}
