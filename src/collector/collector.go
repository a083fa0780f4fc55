package collector

type Collector interface {
	Collect(string) (map[string]struct{}, error)
}
