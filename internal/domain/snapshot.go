package domain

// CollectionSeed names a collection and the titles it holds, in order.
type CollectionSeed struct {
	Name   string   `json:"name"`
	Titles []string `json:"titles"`
}

// Snapshot is the portable form of a catalog used by seed sources.
type Snapshot struct {
	Movies      []Movie          `json:"movies"`
	Collections []CollectionSeed `json:"collections,omitempty"`
}
