package collector

// Fetcher defines the interface for fetching a current market price.
type Fetcher interface {
	FetchQuote(ticker string) (float64, error)
	Name() string
}
