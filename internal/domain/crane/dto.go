package crane

// ListFilter narrows crane fleet queries.
type ListFilter struct {
	OwnerOrgID  *string
	Status      *CraneStatus
	ModelName   *string
	MinCapacity *int
}
