package analyzer

type Analyzer interface {
	Analyze(string) []string
}
